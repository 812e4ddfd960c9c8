package pipeline_test

import (
	"errors"
	"sort"
	"testing"

	"subjectid/internal/pipeline"
)

func TestAssignHashVectors(t *testing.T) {
	tests := []struct {
		method pipeline.Method
		want   string
	}{
		{pipeline.MethodMD5, "9dd4e461268c8034f5c8564e155c67a6"},
		{pipeline.MethodSHA1, "11f6ad8ec52a2984abaafd7c3b516503785c2072"},
		{pipeline.MethodSHA256, "2d711642b726b04401627ca9fbac32f5c8530fb1903cc4db02258717921a4881"},
	}
	for _, tc := range tests {
		records, err := pipeline.Assign([]string{"x"}, tc.method)
		if err != nil {
			t.Fatalf("Assign(%s): %v", tc.method, err)
		}
		if records[0].Identifier != tc.want {
			t.Fatalf("%s digest of %q: got %q want %q", tc.method, "x", records[0].Identifier, tc.want)
		}
	}
}

func TestAssignSequentialIsUniqueAndIncreasing(t *testing.T) {
	names := []string{"Alice", "Bob", "Alice", "Carol"}
	records, err := pipeline.Assign(names, pipeline.MethodSequential)
	if err != nil {
		t.Fatalf("Assign returned error: %v", err)
	}

	ids := make([]string, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, record := range records {
		ids[i] = record.Identifier
		if _, ok := seen[record.Identifier]; ok {
			t.Fatalf("duplicate sequential identifier %q", record.Identifier)
		}
		seen[record.Identifier] = struct{}{}
	}
	if !sort.StringsAreSorted(ids) {
		t.Fatalf("sequential identifiers not increasing: %v", ids)
	}
}

func TestAssignRejectsUnknownMethod(t *testing.T) {
	if _, err := pipeline.Assign([]string{"Alice"}, pipeline.Method("rot13")); !errors.Is(err, pipeline.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		token string
		want  pipeline.Method
		ok    bool
	}{
		{"md5", pipeline.MethodMD5, true},
		{"SHA256", pipeline.MethodSHA256, true},
		{" sequential ", pipeline.MethodSequential, true},
		{"uuid", pipeline.MethodUUID, true},
		{"sha1", pipeline.MethodSHA1, true},
		{"base64", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		method, err := pipeline.ParseMethod(tc.token)
		if tc.ok {
			if err != nil {
				t.Fatalf("ParseMethod(%q): %v", tc.token, err)
			}
			if method != tc.want {
				t.Fatalf("ParseMethod(%q): got %q want %q", tc.token, method, tc.want)
			}
			continue
		}
		if !errors.Is(err, pipeline.ErrInvalidConfiguration) {
			t.Fatalf("ParseMethod(%q): expected ErrInvalidConfiguration, got %v", tc.token, err)
		}
	}
}
