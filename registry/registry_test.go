package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueReady(t *testing.T) {
	var r Registry[string]
	assert.True(t, r.TryRegister("a"))
	assert.True(t, r.Registered("a"))
}

func TestTryRegister(t *testing.T) {
	r := New[string]()

	assert.True(t, r.TryRegister("a"))
	assert.False(t, r.TryRegister("a"), "second registration of a live key must fail")
	assert.True(t, r.TryRegister("b"), "distinct keys do not interfere")
	assert.Equal(t, 2, r.Len())
}

func TestUnregisterMakesKeyAvailable(t *testing.T) {
	r := New[int]()

	require.True(t, r.TryRegister(1))
	r.Unregister(1)
	assert.False(t, r.Registered(1))
	assert.True(t, r.TryRegister(1))
}

func TestUnregisterIdempotent(t *testing.T) {
	r := New[string]()

	// Removing an absent key is a no-op, not an error.
	r.Unregister("never-registered")
	assert.Equal(t, 0, r.Len())

	require.True(t, r.TryRegister("a"))
	r.Unregister("a")
	r.Unregister("a")
	assert.True(t, r.TryRegister("a"))
}

func TestConcurrentTryRegister(t *testing.T) {
	r := New[string]()

	const attempts = 64
	var wg sync.WaitGroup
	results := make([]bool, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = r.TryRegister("contended")
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, ok := range results {
		if ok {
			wins++
		}
	}
	assert.Equal(t, 1, wins, "exactly one registration must win")
}

func TestConcurrentRegisterUnregisterCycles(t *testing.T) {
	r := New[int]()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if r.TryRegister(i % 4) {
					r.Unregister(i % 4)
				}
			}
		}()
	}
	wg.Wait()

	// Every successful registration was released.
	for k := 0; k < 4; k++ {
		assert.False(t, r.Registered(k))
	}
}
