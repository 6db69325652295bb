package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string.
var NewULID = func() string {
	return ulid.Make().String()
}

// NewPrefixedID generates a ULID tagged with a short kind prefix, e.g.
// "qry_01J9Z3...". IDs of the same kind sort by creation time.
func NewPrefixedID(prefix string) string {
	return prefix + "_" + NewULID()
}
