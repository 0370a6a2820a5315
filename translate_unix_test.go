//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package hresult

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestTranslateErrno(t *testing.T) {
	require.Equal(t, CodeOutOfMemory, Translate(unix.ENOMEM))
	require.Equal(t, CodeInvalidArg, Translate(fmt.Errorf("ioctl: %w", unix.EINVAL)))
	require.Equal(t, CodeHandle, Translate(&os.SyscallError{Syscall: "read", Err: unix.EBADF}))
	require.Equal(t, CodeTimeout, Translate(unix.ETIMEDOUT))
	require.Equal(t, CodeFail, Translate(unix.EPIPE))

	// errno values that satisfy errors.Is against fs sentinels go through the
	// portable mapping first
	require.Equal(t, CodeFileNotFound, Translate(unix.ENOENT))
	require.Equal(t, CodeAccessDenied, Translate(unix.EACCES))
}
