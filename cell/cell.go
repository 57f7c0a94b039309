// Package cell provides marker-tagged cells whose borrowing rules are
// enforced by a single domain token instead of per-cell bookkeeping.
//
// A domain is identified by a marker type M, used only as a type argument
// and never instantiated. At most one live Token[M] exists per marker at any
// time, enforced through a process-wide registry. Any number of Cell[M, V]
// values may be tagged with the same marker; the cells themselves store no
// borrow state and expose no direct access to their contents.
//
// All reads and writes flow through the token:
//
//	type graph struct{}
//
//	tok := cell.MustNewToken[graph]()
//	defer tok.Close()
//
//	c1 := cell.NewCell(tok, 100)
//	c2 := cell.NewCell(tok, 200)
//	*cell.GetMut(tok, c1) += 1
//	total := cell.Get(tok, c1) + cell.Get(tok, c2)
//
// Because M appears in both Token and Cell, passing a cell from a different
// domain is a compile error. The exclusivity half of the contract is the
// caller's: a token must not be used from more than one goroutine at a time.
// The guard package wraps a token behind a read/write lock for callers that
// need to share one.
package cell

// Cell holds exactly one value of type V, tagged with the domain marker M.
//
// A cell is passive storage: it can only be read or written through a Token
// with the same marker. Cells live independently of the token that witnessed
// their creation — if that token is closed and a new Token[M] is created
// later, the new token governs all existing cells tagged with M.
type Cell[M any, V any] struct {
	value V
}

// NewCell creates a cell holding value, tagged with the token's marker.
//
// The token reference is only proof that a domain for M exists at the call
// site; it is not retained. NewCell panics with *ClosedTokenError if the
// token has been closed.
func NewCell[M any, V any](t *Token[M], value V) *Cell[M, V] {
	t.check("NewCell")
	return &Cell[M, V]{value: value}
}
