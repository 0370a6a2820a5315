//go:build !windows && !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package hresult

import "syscall"

func fromErrno(syscall.Errno) Code {
	return CodeFail
}
