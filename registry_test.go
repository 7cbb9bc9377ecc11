package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	nop := func(c *Context) error { return nil }

	b, err := reg.Register("dup", nop)
	require.NoError(t, err)
	assert.Equal(t, Builtin{Name: "dup", Index: 0}, b)

	b, err = reg.Register("drop", nop)
	require.NoError(t, err)
	assert.Equal(t, Builtin{Name: "drop", Index: 1}, b)

	found, ok := reg.Lookup("drop")
	assert.True(t, ok)
	assert.Equal(t, b, found)
	_, ok = reg.Lookup("over")
	assert.False(t, ok)

	assert.Equal(t, []string{"drop", "dup"}, reg.Names())

	_, err = reg.Register("dup", nop)
	assert.True(t, errors.Is(err, ErrDuplicateBuiltin), "got %v", err)

	for _, name := range []string{"", "12", "-1.5", "#t", "#f", "{", "}", "a b", "a;b", "a:b", `a"`, "x{"} {
		_, err := reg.Register(name, nop)
		assert.True(t, errors.Is(err, ErrInvalidBuiltinName), "expected %q to be rejected, got %v", name, err)
	}

	assert.Panics(t, func() { reg.MustRegister("dup", nop) })
}

func TestRegistry_resolve(t *testing.T) {
	reg := StandardRegistry()
	b, ok := reg.Lookup("swap")
	require.True(t, ok)

	fn, err := reg.resolve(b)
	require.NoError(t, err)
	assert.NotNil(t, fn)

	_, err = reg.resolve(Builtin{Name: "swap", Index: 99})
	assert.EqualError(t, err, `unknown builtin "swap"`)
	_, err = reg.resolve(Builtin{Name: "nope", Index: b.Index})
	assert.Error(t, err, "expected a stale handle to be rejected")

	var nilReg *Registry
	_, ok = nilReg.Lookup("swap")
	assert.False(t, ok)
	assert.Nil(t, nilReg.Names())
}

func TestStandardRegistry(t *testing.T) {
	assert.Equal(t, []string{
		"@",
		"make-vec",
		"show-ctx",
		"show-env",
		"show-stack",
		"show-top",
		"swap",
		"vget",
		"vpush!",
	}, StandardRegistry().Names())
}
