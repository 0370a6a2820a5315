//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package hresult

import (
	"syscall"

	"golang.org/x/sys/unix"
)

var errnoCodes = map[syscall.Errno]Code{
	unix.ENOENT:    CodeFileNotFound,
	unix.EACCES:    CodeAccessDenied,
	unix.EPERM:     CodeAccessDenied,
	unix.ENOMEM:    CodeOutOfMemory,
	unix.EINVAL:    CodeInvalidArg,
	unix.EBADF:     CodeHandle,
	unix.EFAULT:    CodePointer,
	unix.ENOSYS:    CodeNotImpl,
	unix.ETIMEDOUT: CodeTimeout,
	unix.ECANCELED: CodeAbort,
}

func fromErrno(errno syscall.Errno) Code {
	if code, ok := errnoCodes[errno]; ok {
		return code
	}
	return CodeFail
}
