package cell

import (
	"reflect"
	"sync/atomic"

	"github.com/lex00/tagcell-go/registry"
)

// domains records which markers currently have a live token. Registration
// and release are the only operations that touch it; the borrow path never
// does.
var domains = registry.New[reflect.Type]()

// noCopy triggers go vet's copylocks check on types that embed it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Token is the unique live authority for the domain marked by M.
//
// Holding a live token is proof that no other live token for M exists. All
// access to Cell[M, V] contents goes through the token, so exclusive access
// to the token implies exclusive access to every cell in the domain.
//
// A token must not be copied (the singleton rule forbids duplicates) and
// must not be used from more than one goroutine at a time. Close releases
// the marker so a new token for M can be created later.
type Token[M any] struct {
	noCopy noCopy
	closed atomic.Bool
}

// NewToken creates the token for marker M. It returns a
// *DuplicateDomainError if a live token for M already exists anywhere in
// the process.
func NewToken[M any]() (*Token[M], error) {
	marker := reflect.TypeOf((*M)(nil)).Elem()
	if !domains.TryRegister(marker) {
		return nil, &DuplicateDomainError{Marker: marker}
	}
	return &Token[M]{}, nil
}

// MustNewToken is like NewToken but panics on a duplicate domain. It is the
// right call when markers are static and a duplicate can only mean a
// programming error.
func MustNewToken[M any]() *Token[M] {
	t, err := NewToken[M]()
	if err != nil {
		panic(err)
	}
	return t
}

// Close releases the token's marker, permitting a future NewToken for M.
// Cells tagged with M outlive the token; a replacement token governs them
// all. Close is idempotent, but any other use of the token after Close
// panics.
func (t *Token[M]) Close() {
	if t.closed.CompareAndSwap(false, true) {
		domains.Unregister(reflect.TypeOf((*M)(nil)).Elem())
	}
}

// Closed reports whether Close has been called.
func (t *Token[M]) Closed() bool {
	return t.closed.Load()
}

// check panics if the token has been closed. Every accessor calls it; this
// is the runtime rendering of "borrows are only possible while the token is
// live".
func (t *Token[M]) check(op string) {
	if t.closed.Load() {
		panic(&ClosedTokenError{Marker: reflect.TypeOf((*M)(nil)).Elem(), Op: op})
	}
}

// Get returns a copy of the cell's contents. Any number of Get calls may be
// made from the same token; returning a copy keeps shared reads immutable.
func Get[M any, V any](t *Token[M], c *Cell[M, V]) V {
	t.check("Get")
	return c.value
}

// Set replaces the cell's contents.
func Set[M any, V any](t *Token[M], c *Cell[M, V], value V) {
	t.check("Set")
	c.value = value
}

// GetMut returns a pointer to the cell's contents for in-place mutation.
//
// The pointer is only as exclusive as the token: the caller must not issue
// another borrow from t while still using the returned pointer, and must
// not share t across goroutines. Go cannot tie the pointer's validity to
// the call the way a borrow checker would; this contract is the caller's.
func GetMut[M any, V any](t *Token[M], c *Cell[M, V]) *V {
	t.check("GetMut")
	return &c.value
}

// GetMut2 returns pointers to the contents of two distinct cells. It panics
// with *AliasedCellError if a and b are the same cell, since that would
// hand out two exclusive pointers into one location. Identity is pointer
// identity, not value equality.
func GetMut2[M any, A any, B any](t *Token[M], a *Cell[M, A], b *Cell[M, B]) (*A, *B) {
	t.check("GetMut2")
	if any(a) == any(b) {
		panic(&AliasedCellError{Marker: reflect.TypeOf((*M)(nil)).Elem(), Op: "GetMut2"})
	}
	return &a.value, &b.value
}

// GetMut3 returns pointers to the contents of three distinct cells. It
// panics with *AliasedCellError if any pair is the same cell.
func GetMut3[M any, A any, B any, C any](t *Token[M], a *Cell[M, A], b *Cell[M, B], c *Cell[M, C]) (*A, *B, *C) {
	t.check("GetMut3")
	if any(a) == any(b) || any(b) == any(c) || any(c) == any(a) {
		panic(&AliasedCellError{Marker: reflect.TypeOf((*M)(nil)).Elem(), Op: "GetMut3"})
	}
	return &a.value, &b.value, &c.value
}
