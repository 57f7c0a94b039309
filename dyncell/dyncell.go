// Package dyncell provides ownership domains identified at runtime rather
// than by marker types.
//
// Where package cell distinguishes domains with a type parameter, dyncell
// mints a unique ID per Owner and stamps it into every cell the owner
// witnesses. Each access validates the cell's ID against the calling owner,
// trading a per-access comparison for the freedom to create any number of
// domains dynamically — for example one domain per request or per graph
// instance, with no marker type declared anywhere.
//
// IDs are never reused, so the one-authority-per-domain rule holds by
// construction and owners need no registry and no close step.
package dyncell

import "sync/atomic"

// nextID mints owner IDs. ID 0 is never issued, so a zero Cell can never
// match a real owner.
var nextID atomic.Uint64

// Owner is the authority for one runtime-identified domain.
//
// The same discipline as cell.Token applies: an owner must not be used from
// more than one goroutine at a time, and pointers returned by the GetMut
// accessors are only as exclusive as the owner itself.
type Owner struct {
	id uint64
}

// NewOwner creates an owner with a fresh domain ID.
func NewOwner() *Owner {
	return &Owner{id: nextID.Add(1)}
}

// ID returns the owner's domain ID. It is useful only for diagnostics.
func (o *Owner) ID() uint64 {
	return o.id
}

// Cell holds one value of type V, stamped with the ID of the owner that
// witnessed its creation. Only that owner can access the contents.
type Cell[V any] struct {
	owner uint64
	value V
}

// NewCell creates a cell holding value, governed by o.
func NewCell[V any](o *Owner, value V) *Cell[V] {
	return &Cell[V]{owner: o.id, value: value}
}

// check panics if c is not governed by o.
func check[V any](o *Owner, c *Cell[V], op string) {
	if c.owner != o.id {
		panic(&WrongOwnerError{Op: op, OwnerID: o.id, CellID: c.owner})
	}
}

// Get returns a copy of the cell's contents. It panics with
// *WrongOwnerError if c belongs to a different domain.
func Get[V any](o *Owner, c *Cell[V]) V {
	check(o, c, "Get")
	return c.value
}

// Set replaces the cell's contents.
func Set[V any](o *Owner, c *Cell[V], value V) {
	check(o, c, "Set")
	c.value = value
}

// GetMut returns a pointer to the cell's contents for in-place mutation.
func GetMut[V any](o *Owner, c *Cell[V]) *V {
	check(o, c, "GetMut")
	return &c.value
}

// GetMut2 returns pointers to the contents of two distinct cells. It panics
// with *AliasedCellError if a and b are the same cell.
func GetMut2[A any, B any](o *Owner, a *Cell[A], b *Cell[B]) (*A, *B) {
	check(o, a, "GetMut2")
	check(o, b, "GetMut2")
	if any(a) == any(b) {
		panic(&AliasedCellError{Op: "GetMut2", OwnerID: o.id})
	}
	return &a.value, &b.value
}

// GetMut3 returns pointers to the contents of three distinct cells. It
// panics with *AliasedCellError if any pair is the same cell.
func GetMut3[A any, B any, C any](o *Owner, a *Cell[A], b *Cell[B], c *Cell[C]) (*A, *B, *C) {
	check(o, a, "GetMut3")
	check(o, b, "GetMut3")
	check(o, c, "GetMut3")
	if any(a) == any(b) || any(b) == any(c) || any(c) == any(a) {
		panic(&AliasedCellError{Op: "GetMut3", OwnerID: o.id})
	}
	return &a.value, &b.value, &c.value
}
