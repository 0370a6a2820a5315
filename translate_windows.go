//go:build windows

package hresult

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// fromErrno maps a Win32 error number. Errno values that are already
// HRESULTs, as returned by COM calls, pass through unchanged.
func fromErrno(errno syscall.Errno) Code {
	switch errno {
	case windows.ERROR_SUCCESS:
		return CodeFail
	case windows.ERROR_OPERATION_ABORTED:
		return CodeAbort
	}
	return FromWin32(uint32(errno))
}
