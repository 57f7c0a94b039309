// Package guard makes one domain token shareable across goroutines.
//
// A cell.Token must be exclusively owned by one goroutine at a time; that is
// the contract its pointer-returning accessors rely on. Guarded wraps a
// token behind a read/write lock and exposes only lock-scoped access: reads
// copy the value out under a shared lock, writes run under the exclusive
// lock. This turns the many-readers-or-one-writer rule from a caller
// contract into a runtime-enforced one, at the cost of lock traffic on
// every access.
package guard

import (
	"sync"

	"github.com/lex00/tagcell-go/cell"
)

// Guarded owns a domain token and serializes all access to it.
type Guarded[M any] struct {
	mu  sync.RWMutex
	tok *cell.Token[M]
}

// NewGuarded creates the token for marker M and wraps it. It returns the
// same *cell.DuplicateDomainError NewToken would.
func NewGuarded[M any]() (*Guarded[M], error) {
	tok, err := cell.NewToken[M]()
	if err != nil {
		return nil, err
	}
	return &Guarded[M]{tok: tok}, nil
}

// MustNewGuarded is like NewGuarded but panics on a duplicate domain.
func MustNewGuarded[M any]() *Guarded[M] {
	g, err := NewGuarded[M]()
	if err != nil {
		panic(err)
	}
	return g
}

// Close releases the underlying token once no reader or writer is inside a
// guarded section. Access after Close panics with *cell.ClosedTokenError.
func (g *Guarded[M]) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tok.Close()
}

// NewCell creates a cell in the guarded domain.
func NewCell[M any, V any](g *Guarded[M], value V) *cell.Cell[M, V] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return cell.NewCell(g.tok, value)
}

// Read returns a copy of the cell's contents under the shared lock. Any
// number of goroutines may read concurrently.
func Read[M any, V any](g *Guarded[M], c *cell.Cell[M, V]) V {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return cell.Get(g.tok, c)
}

// Write replaces the cell's contents under the exclusive lock.
func Write[M any, V any](g *Guarded[M], c *cell.Cell[M, V], value V) {
	g.mu.Lock()
	defer g.mu.Unlock()
	cell.Set(g.tok, c, value)
}

// Update mutates the cell in place under the exclusive lock. The pointer
// passed to fn is only valid for the duration of the call.
func Update[M any, V any](g *Guarded[M], c *cell.Cell[M, V], fn func(*V)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(cell.GetMut(g.tok, c))
}

// Update2 mutates two distinct cells in place under the exclusive lock. It
// panics with *cell.AliasedCellError if a and b are the same cell.
func Update2[M any, A any, B any](g *Guarded[M], a *cell.Cell[M, A], b *cell.Cell[M, B], fn func(*A, *B)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	pa, pb := cell.GetMut2(g.tok, a, b)
	fn(pa, pb)
}
