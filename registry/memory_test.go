package registry_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarluq/autobind/marker"
	"github.com/omarluq/autobind/registry"
)

type store struct{}

type archive struct{}

type storage interface {
	Put(string) error
}

func TestMemory_InsertAndContains(t *testing.T) {
	t.Parallel()

	reg := registry.NewMemory()
	b := registry.Binding{
		Abstraction: marker.TypeOf[storage](),
		Concrete:    marker.TypeOf[store](),
		Lifetime:    marker.Scoped,
	}

	assert.False(t, reg.Contains(b.Abstraction, b.Concrete))
	require.NoError(t, reg.Insert(b))
	assert.True(t, reg.Contains(b.Abstraction, b.Concrete))

	got := reg.Bindings()
	require.Len(t, got, 1)
	assert.Equal(t, b, got[0])
}

func TestMemory_DuplicatePairRejected(t *testing.T) {
	t.Parallel()

	reg := registry.NewMemory()
	b := registry.Binding{
		Abstraction: marker.TypeOf[storage](),
		Concrete:    marker.TypeOf[store](),
		Lifetime:    marker.Singleton,
	}
	require.NoError(t, reg.Insert(b))

	// Same pair, different lifetime: still a duplicate.
	b.Lifetime = marker.Transient
	err := reg.Insert(b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, registry.ErrDuplicateBinding))

	require.Len(t, reg.Bindings(), 1)
}

func TestMemory_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	reg := registry.NewMemory()
	first := registry.Binding{
		Abstraction: marker.TypeOf[store](),
		Concrete:    marker.TypeOf[store](),
		Lifetime:    marker.Singleton,
	}
	second := registry.Binding{
		Abstraction: marker.TypeOf[storage](),
		Concrete:    marker.TypeOf[archive](),
		Lifetime:    marker.Transient,
	}
	require.NoError(t, reg.Insert(first))
	require.NoError(t, reg.Insert(second))

	got := reg.Bindings()
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0])
	assert.Equal(t, second, got[1])
}

func TestMemory_ConcurrentInsertDistinctPairs(t *testing.T) {
	t.Parallel()

	reg := registry.NewMemory()
	pairs := []registry.Binding{
		{Abstraction: marker.TypeOf[store](), Concrete: marker.TypeOf[store](), Lifetime: marker.Singleton},
		{Abstraction: marker.TypeOf[archive](), Concrete: marker.TypeOf[archive](), Lifetime: marker.Scoped},
		{Abstraction: marker.TypeOf[storage](), Concrete: marker.TypeOf[store](), Lifetime: marker.Transient},
		{Abstraction: marker.TypeOf[storage](), Concrete: marker.TypeOf[archive](), Lifetime: marker.Transient},
	}

	var wg sync.WaitGroup
	for _, b := range pairs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, reg.Insert(b))
		}()
	}
	wg.Wait()

	assert.Len(t, reg.Bindings(), len(pairs))
}

func TestBinding_Key(t *testing.T) {
	t.Parallel()

	b := registry.Binding{
		Abstraction: marker.TypeOf[storage](),
		Concrete:    marker.TypeOf[store](),
		Lifetime:    marker.Scoped,
	}
	assert.Equal(t, "registry_test.storage=>registry_test.store", b.Key())
	assert.Contains(t, b.String(), "scoped")
}
