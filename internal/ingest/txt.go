package ingest

import "strings"

// parseTXT extracts names from plain text. Content with commas is split on
// them first, then on newlines, so both "a,b,c" and one-name-per-line files
// work, as does a mix.
func parseTXT(content string) Result {
	if !strings.Contains(content, ",") {
		return Result{Names: splitLines(content), Format: FormatTXT}
	}

	var names []string
	for _, part := range strings.Split(content, ",") {
		names = append(names, splitLines(part)...)
	}
	return Result{Names: names, Format: FormatTXT}
}
