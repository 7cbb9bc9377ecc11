package panicerr

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecover(t *testing.T) {
	for _, tc := range []struct {
		name    string
		err     string
		wraps   string
		fun     func() error
		isPanic bool
	}{
		{
			name: "normal",
			fun:  func() error { return nil },
		},
		{
			name: "normal err",
			err:  "bang",
			fun:  func() error { return errors.New("bang") },
		},
		{
			name:    "panic err",
			err:     "panic err panicked: bang",
			wraps:   "bang",
			isPanic: true,
			fun:     func() error { panic(errors.New("bang")) },
		},
		{
			name:    "panic value",
			err:     "panic value panicked: hello",
			isPanic: true,
			fun:     func() error { panic("hello") },
		},
		{
			name:    "index panic",
			err:     "index panic panicked: runtime error: index out of range [1] with length 0",
			isPanic: true,
			fun:     func() error { _ = ([]int)(nil)[1]; return nil },
		},
		{
			name:    "",
			err:     "panicked: anonymous",
			isPanic: true,
			fun:     func() error { panic("anonymous") },
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := Recover(tc.name, tc.fun)
			if tc.err == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.err)
			if tc.wraps != "" {
				assert.EqualError(t, errors.Unwrap(err), tc.wraps, "expected panic(error) value")
			}
			assert.Equal(t, tc.isPanic, IsPanic(err), "expected IsPanic")
		})
	}
}

func TestRecover_stack(t *testing.T) {
	err := Recover("vget", func() error {
		panic("nope")
	})
	var pe *PanicError
	require.True(t, errors.As(err, &pe), "must have a recovered panic")
	assert.Equal(t, "nope", pe.Value)
	assert.NotEmpty(t, pe.Stack)

	verbose := fmt.Sprintf("%+v", err)
	assert.True(t, strings.HasPrefix(verbose, "vget panicked: nope\npanic stack: "))
	assert.True(t, strings.HasSuffix(verbose, string(pe.Stack)), "expected verbose format to end with the stack")
	assert.Equal(t, "vget panicked: nope", fmt.Sprintf("%v", err))
}
