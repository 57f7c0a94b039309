package cell

import (
	"fmt"
	"reflect"
)

// DuplicateDomainError is returned by NewToken when a live token already
// exists for the requested marker. The singleton rule is foundational: two
// tokens for one marker would each believe they hold exclusive authority
// over the same cells.
type DuplicateDomainError struct {
	// Marker is the offending domain marker type.
	Marker reflect.Type
}

func (e *DuplicateDomainError) Error() string {
	return fmt.Sprintf("cell: a live token already exists for marker %v", e.Marker)
}

// AliasedCellError is the panic value raised by GetMut2 and GetMut3 when two
// of the supplied cells are the same cell. Returning two exclusive pointers
// into one location would break the core guarantee, so this is treated as a
// logic error rather than a recoverable condition.
type AliasedCellError struct {
	// Marker is the domain marker of the aliased cells.
	Marker reflect.Type
	// Op is the accessor that detected the aliasing ("GetMut2" or "GetMut3").
	Op string
}

func (e *AliasedCellError) Error() string {
	return fmt.Sprintf("cell: %s called with the same %v cell twice", e.Op, e.Marker)
}

// ClosedTokenError is the panic value raised when a closed token is used.
// A closed token has surrendered its authority; a replacement token for the
// same marker may already be live elsewhere.
type ClosedTokenError struct {
	// Marker is the domain marker of the closed token.
	Marker reflect.Type
	// Op is the operation that was attempted.
	Op string
}

func (e *ClosedTokenError) Error() string {
	return fmt.Sprintf("cell: %s on closed token for marker %v", e.Op, e.Marker)
}
