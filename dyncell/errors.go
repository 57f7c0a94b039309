package dyncell

import "fmt"

// WrongOwnerError is the panic value raised when a cell is accessed through
// an owner from a different domain.
type WrongOwnerError struct {
	// Op is the accessor that detected the mismatch.
	Op string
	// OwnerID is the ID of the owner the caller presented.
	OwnerID uint64
	// CellID is the domain ID stamped into the cell.
	CellID uint64
}

func (e *WrongOwnerError) Error() string {
	return fmt.Sprintf("dyncell: %s with owner %d on cell owned by domain %d", e.Op, e.OwnerID, e.CellID)
}

// AliasedCellError is the panic value raised by GetMut2 and GetMut3 when two
// of the supplied cells are the same cell.
type AliasedCellError struct {
	// Op is the accessor that detected the aliasing.
	Op string
	// OwnerID is the domain whose borrow was rejected.
	OwnerID uint64
}

func (e *AliasedCellError) Error() string {
	return fmt.Sprintf("dyncell: %s called with the same cell twice in domain %d", e.Op, e.OwnerID)
}
