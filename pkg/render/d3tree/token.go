package d3tree

import (
	"strings"

	"github.com/google/uuid"
)

// TokenSource produces the random component of auto-generated output file
// names. It is the only source of nondeterminism in the pipeline and is
// injectable so tests can pin it.
type TokenSource func(length int) string

// uuidToken derives an alphanumeric token from a random UUID. A UUID yields
// 32 hex characters, which bounds the usable length.
func uuidToken(length int) string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")
	if length > len(s) {
		length = len(s)
	}
	return s[:length]
}
