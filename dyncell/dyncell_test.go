package dyncell

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capturePanic(t *testing.T, fn func()) any {
	t.Helper()
	var v any
	func() {
		defer func() { v = recover() }()
		fn()
	}()
	require.NotNil(t, v, "expected a panic")
	return v
}

func TestOwnerIDsAreUnique(t *testing.T) {
	const n = 100
	seen := make(map[uint64]bool, n)
	for i := 0; i < n; i++ {
		o := NewOwner()
		assert.False(t, seen[o.ID()], "owner ID %d issued twice", o.ID())
		seen[o.ID()] = true
	}
}

func TestConcurrentOwnerCreation(t *testing.T) {
	const n = 64
	ids := make([]uint64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = NewOwner().ID()
		}(i)
	}
	wg.Wait()

	seen := make(map[uint64]bool, n)
	for _, id := range ids {
		require.False(t, seen[id], "owner ID %d issued twice", id)
		seen[id] = true
	}
}

func TestWriteThenRead(t *testing.T) {
	o := NewOwner()
	c1 := NewCell(o, uint32(100))
	c2 := NewCell(o, uint32(200))
	*GetMut(o, c1) += 1
	*GetMut(o, c2) += 2

	total := Get(o, c1) + Get(o, c2)
	assert.Equal(t, uint32(303), total)
}

func TestSetAndGet(t *testing.T) {
	o := NewOwner()
	c := NewCell(o, "before")
	Set(o, c, "after")
	assert.Equal(t, "after", Get(o, c))
}

func TestWrongOwnerPanics(t *testing.T) {
	mine := NewOwner()
	theirs := NewOwner()
	c := NewCell(theirs, 1)

	for name, fn := range map[string]func(){
		"Get":    func() { Get(mine, c) },
		"Set":    func() { Set(mine, c, 2) },
		"GetMut": func() { GetMut(mine, c) },
		"GetMut2": func() {
			GetMut2(mine, NewCell(mine, 0), c)
		},
	} {
		t.Run(name, func(t *testing.T) {
			v := capturePanic(t, fn)
			require.IsType(t, &WrongOwnerError{}, v)
			werr := v.(*WrongOwnerError)
			assert.Equal(t, mine.ID(), werr.OwnerID)
			assert.Equal(t, theirs.ID(), werr.CellID)
		})
	}
}

func TestOwnersAreIndependent(t *testing.T) {
	o1 := NewOwner()
	o2 := NewOwner()
	c1 := NewCell(o1, 10)
	c2 := NewCell(o2, 20)

	*GetMut(o1, c1) += 1
	*GetMut(o2, c2) += 2
	assert.Equal(t, 11, Get(o1, c1))
	assert.Equal(t, 22, Get(o2, c2))
}

func TestGetMut2(t *testing.T) {
	o := NewOwner()
	a := NewCell(o, 1)
	b := NewCell(o, 2)
	pa, pb := GetMut2(o, a, b)
	*pa, *pb = *pb, *pa
	assert.Equal(t, 2, Get(o, a))
	assert.Equal(t, 1, Get(o, b))
}

func TestGetMut2RejectsAliasing(t *testing.T) {
	o := NewOwner()
	c := NewCell(o, 1)

	v := capturePanic(t, func() { GetMut2(o, c, c) })
	require.IsType(t, &AliasedCellError{}, v)
	assert.Equal(t, "GetMut2", v.(*AliasedCellError).Op)
}

func TestGetMut3(t *testing.T) {
	o := NewOwner()
	a := NewCell(o, "a")
	b := NewCell(o, 2)
	c := NewCell(o, 3.0)
	pa, pb, pc := GetMut3(o, a, b, c)
	*pa = "z"
	*pb = 20
	*pc = 30.0
	assert.Equal(t, "z", Get(o, a))
	assert.Equal(t, 20, Get(o, b))
	assert.Equal(t, 30.0, Get(o, c))
}

func TestGetMut3RejectsAliasing(t *testing.T) {
	o := NewOwner()
	a := NewCell(o, 1)
	b := NewCell(o, 2)

	for _, fn := range []func(){
		func() { GetMut3(o, a, a, b) },
		func() { GetMut3(o, a, b, b) },
		func() { GetMut3(o, a, b, a) },
	} {
		v := capturePanic(t, fn)
		assert.IsType(t, &AliasedCellError{}, v)
	}
}

func TestZeroCellNeverMatches(t *testing.T) {
	o := NewOwner()
	var c Cell[int]
	v := capturePanic(t, func() { Get(o, &c) })
	assert.IsType(t, &WrongOwnerError{}, v)
}
