package hresult

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGuard(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		require.True(t, Guard(func() error { return nil }).IsSuccess())
	})

	t.Run("Error", func(t *testing.T) {
		r := Guard(func() error { return context.Canceled })
		require.Equal(t, CodeAbort, r.Code())
		require.ErrorIs(t, r.Err(), context.Canceled)
	})

	t.Run("Error panic", func(t *testing.T) {
		r := Guard(func() error { panic(context.DeadlineExceeded) })
		require.Equal(t, CodeTimeout, r.Code())
	})

	t.Run("Value panic", func(t *testing.T) {
		r := Guard(func() error { panic("bad state") })
		require.Equal(t, CodeUnexpected, r.Code())
		require.EqualError(t, r.Err(), "hresult E_UNEXPECTED: panic: bad state")
	})

	t.Run("Contract violation", func(t *testing.T) {
		requireViolation(t, func() {
			Guard(func() error {
				Success().Code()
				return nil
			})
		})
	})
}

func TestGuardValue(t *testing.T) {
	r := GuardValue(func() (int, error) { return 4, nil })
	require.Equal(t, 4, r.Value())

	r = GuardValue(func() (int, error) { return 4, errors.ErrUnsupported })
	require.Equal(t, CodeNotImpl, r.Code())

	r = GuardValue(func() (int, error) {
		var m map[string]int
		m["x"] = 1
		return 1, nil
	})
	require.True(t, r.IsError())
	require.Equal(t, CodeFail, r.Code())

	requireViolation(t, func() {
		GuardValue(func() (int, error) {
			return To[int](Error()).Value(), nil
		})
	})
}
