package di_test

import (
	"errors"
	"testing"

	"github.com/sghaida/greet/di"
	"github.com/sghaida/greet/person"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type panicky struct{}

func (panicky) Resolve(any, string) (any, bool, error) { panic("kaboom") }

func TestMapRegistry_ProvideResolveGet(t *testing.T) {
	t.Parallel()

	p := person.New("John Doe")
	reg := di.NewMapRegistry().Provide("host", p).Provide("count", 3)

	val, ok, err := reg.Resolve(nil, "host")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, p, val)

	val, ok = reg.Get("count")
	require.True(t, ok)
	assert.Equal(t, 3, val)

	val, ok, err = reg.Resolve(struct{}{}, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestMapRegistry_ResolveRecoversPanic(t *testing.T) {
	t.Parallel()

	var reg *di.MapRegistry

	val, ok, err := reg.Resolve(nil, "host")
	require.Error(t, err)
	assert.True(t, errors.Is(err, di.ErrRegistryPanic))
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestSafeResolve(t *testing.T) {
	t.Parallel()

	val, ok, err := di.SafeResolve(nil, nil, "host")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, val)

	_, _, err = di.SafeResolve(panicky{}, nil, "host")
	require.ErrorIs(t, err, di.ErrRegistryPanic)
	assert.Contains(t, err.Error(), "kaboom")

	reg := di.NewMapRegistry().Provide("host", "x")
	val, ok, err = di.SafeResolve(reg, nil, "host")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", val)
}
