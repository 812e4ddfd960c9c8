package pipeline

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Method selects how identifiers are generated for a run.
type Method string

const (
	MethodMD5        Method = "md5"
	MethodSHA1       Method = "sha1"
	MethodSHA256     Method = "sha256"
	MethodSequential Method = "sequential"
	MethodUUID       Method = "uuid"
)

// SequentialPrefix is prepended to every sequential identifier.
const SequentialPrefix = "ID"

// sequentialWidth is the zero-padded digit width for sequential identifiers.
// Indexes beyond its capacity render at natural width; they are never
// truncated.
const sequentialWidth = 3

var allMethods = []Method{
	MethodMD5,
	MethodSHA1,
	MethodSHA256,
	MethodSequential,
	MethodUUID,
}

var methodSet = func() map[Method]struct{} {
	set := make(map[Method]struct{}, len(allMethods))
	for _, method := range allMethods {
		set[method] = struct{}{}
	}
	return set
}()

// Methods returns the accepted method tokens in presentation order.
func Methods() []string {
	tokens := make([]string, len(allMethods))
	for i, method := range allMethods {
		tokens[i] = string(method)
	}
	return tokens
}

// ParseMethod validates a method selector token. Unrecognized tokens are an
// ErrInvalidConfiguration; matching is case-insensitive on the trimmed token.
func ParseMethod(token string) (Method, error) {
	method := Method(strings.ToLower(strings.TrimSpace(token)))
	if _, ok := methodSet[method]; !ok {
		return "", fmt.Errorf("%w: unknown method %q (valid: %s)",
			ErrInvalidConfiguration, token, strings.Join(Methods(), ", "))
	}
	return method, nil
}

// Record pairs a normalized name with its generated identifier.
type Record struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
}

// Assign produces one identifier per normalized name under the given method.
// Hash methods digest the name bytes exactly as stored, so identical names
// share an identifier by construction. Assign fails only for an unrecognized
// method, before any identifier is built.
func Assign(names []string, method Method) ([]Record, error) {
	if _, ok := methodSet[method]; !ok {
		return nil, fmt.Errorf("%w: unknown method %q", ErrInvalidConfiguration, string(method))
	}

	records := make([]Record, len(names))
	for i, name := range names {
		records[i] = Record{Name: name, Identifier: identify(name, i, method)}
	}
	return records, nil
}

func identify(name string, position int, method Method) string {
	switch method {
	case MethodMD5:
		sum := md5.Sum([]byte(name))
		return hex.EncodeToString(sum[:])
	case MethodSHA1:
		sum := sha1.Sum([]byte(name))
		return hex.EncodeToString(sum[:])
	case MethodSHA256:
		sum := sha256.Sum256([]byte(name))
		return hex.EncodeToString(sum[:])
	case MethodSequential:
		return fmt.Sprintf("%s%0*d", SequentialPrefix, sequentialWidth, position+1)
	case MethodUUID:
		return uuid.NewString()
	default:
		// Unreachable: Assign validates the method first.
		return ""
	}
}
