package hresult

import (
	"context"
	"errors"
	"io/fs"
	"sync"
	"syscall"
)

// Translator maps an error to a status code. It returns false when it has
// no opinion about err.
type Translator func(error) (Code, bool)

// coder is implemented by errors that already know their status code.
type coder interface {
	HResult() Code
}

var (
	translatorsMu sync.RWMutex
	translators   []Translator
)

// RegisterTranslator adds t to the translators consulted by Translate.
// Later registrations are consulted first.
func RegisterTranslator(t Translator) {
	translatorsMu.Lock()
	defer translatorsMu.Unlock()
	translators = append(translators, t)
}

// Translate maps err to a failure status code. It never fails: a nil err,
// one nothing recognizes, or one whose HResult or Translator yields a
// success code maps to CodeFail.
func Translate(err error) Code {
	code := translate(err)
	if code.Succeeded() {
		return CodeFail
	}
	return code
}

func translate(err error) Code {
	if err == nil {
		return CodeFail
	}

	var c coder
	if errors.As(err, &c) {
		return c.HResult()
	}

	if code, ok := translateRegistered(err); ok {
		return code
	}

	switch {
	case errors.Is(err, context.Canceled):
		return CodeAbort
	case errors.Is(err, context.DeadlineExceeded):
		return CodeTimeout
	case errors.Is(err, fs.ErrNotExist):
		return CodeFileNotFound
	case errors.Is(err, fs.ErrPermission):
		return CodeAccessDenied
	case errors.Is(err, errors.ErrUnsupported):
		return CodeNotImpl
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return fromErrno(errno)
	}

	return CodeFail
}

func translateRegistered(err error) (Code, bool) {
	translatorsMu.RLock()
	defer translatorsMu.RUnlock()
	for i := len(translators) - 1; i >= 0; i-- {
		if code, ok := translators[i](err); ok {
			return code, true
		}
	}
	return 0, false
}
