package registry_test

import (
	"errors"
	"testing"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarluq/autobind/marker"
	"github.com/omarluq/autobind/registry"
)

func TestDo_InsertPublishesNamedService(t *testing.T) {
	t.Parallel()

	injector := do.New()
	reg := registry.NewDo(injector)

	b := registry.Binding{
		Abstraction: marker.TypeOf[storage](),
		Concrete:    marker.TypeOf[store](),
		Lifetime:    marker.Singleton,
	}
	require.NoError(t, reg.Insert(b))

	name := registry.BindingService(b.Abstraction, b.Concrete)
	got, err := do.InvokeNamed[registry.Binding](injector, name)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestDo_ContainsTracksInsertedPairs(t *testing.T) {
	t.Parallel()

	reg := registry.NewDo(do.New())

	b := registry.Binding{
		Abstraction: marker.TypeOf[store](),
		Concrete:    marker.TypeOf[store](),
		Lifetime:    marker.Transient,
	}
	assert.False(t, reg.Contains(b.Abstraction, b.Concrete))
	require.NoError(t, reg.Insert(b))
	assert.True(t, reg.Contains(b.Abstraction, b.Concrete))

	err := reg.Insert(b)
	assert.True(t, errors.Is(err, registry.ErrDuplicateBinding))
	assert.Len(t, reg.Bindings(), 1)
}
