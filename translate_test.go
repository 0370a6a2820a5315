package hresult

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

type quotaError struct {
	used, limit int
}

func (e *quotaError) Error() string {
	return fmt.Sprintf("quota exceeded: %d/%d", e.used, e.limit)
}

type knownCodeError struct{}

func (knownCodeError) Error() string  { return "known" }
func (knownCodeError) HResult() Code { return CodeNoInterface }

func TestTranslate(t *testing.T) {
	RegisterTranslator(func(err error) (Code, bool) {
		var qe *quotaError
		if errors.As(err, &qe) {
			return CodeOutOfMemory, true
		}
		return 0, false
	})

	_, statErr := os.Stat("/definitely/not/here")

	testCases := []struct {
		name string
		err  error
		code Code
	}{
		{"nil", nil, CodeFail},
		{"plain", errors.New("plain"), CodeFail},
		{"coder", knownCodeError{}, CodeNoInterface},
		{"wrapped coder", fmt.Errorf("x: %w", knownCodeError{}), CodeNoInterface},
		{"code error", &CodeError{Code: CodeHandle}, CodeHandle},
		{"registered", fmt.Errorf("upload: %w", &quotaError{used: 11, limit: 10}), CodeOutOfMemory},
		{"canceled", context.Canceled, CodeAbort},
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), CodeTimeout},
		{"not exist", fs.ErrNotExist, CodeFileNotFound},
		{"stat", statErr, CodeFileNotFound},
		{"permission", fs.ErrPermission, CodeAccessDenied},
		{"unsupported", errors.ErrUnsupported, CodeNotImpl},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.code, Translate(tc.err))
		})
	}
}

func TestTranslateNeverSucceeds(t *testing.T) {
	type lenient struct{ error }
	RegisterTranslator(func(err error) (Code, bool) {
		var l lenient
		return CodeFalse, errors.As(err, &l)
	})

	require.Equal(t, CodeFail, Translate(&CodeError{Code: CodeOK}))
	require.Equal(t, CodeFail, Translate(lenient{errors.New("soft")}))

	r := NewErrorFrom(&CodeError{Code: CodeOK})
	require.True(t, r.IsError())
	require.True(t, r.Code().Failed())

	g := Guard(func() error { return &CodeError{Code: CodeFalse} })
	require.Equal(t, CodeFail, g.Code())
}

func TestRegisterTranslatorOrder(t *testing.T) {
	type marker struct{ error }
	RegisterTranslator(func(err error) (Code, bool) {
		var m marker
		return CodeInvalidArg, errors.As(err, &m)
	})
	RegisterTranslator(func(err error) (Code, bool) {
		var m marker
		return CodeInvalidData, errors.As(err, &m)
	})

	require.Equal(t, CodeInvalidData, Translate(marker{errors.New("m")}))
}
