package hresult

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCode(t *testing.T) {
	testCases := []struct {
		name      string
		code      Code
		succeeded bool
		facility  uint16
		status    uint16
		str       string
	}{
		{"S_OK", CodeOK, true, 0, 0, "S_OK"},
		{"S_FALSE", CodeFalse, true, 0, 1, "S_FALSE"},
		{"E_FAIL", CodeFail, false, 0, 0x4005, "E_FAIL"},
		{"E_ACCESSDENIED", CodeAccessDenied, false, 7, 5, "E_ACCESSDENIED"},
		{"timeout", CodeTimeout, false, 7, 1460, "HRESULT_FROM_WIN32(ERROR_TIMEOUT)"},
		{"unknown failure", Code(0x80071234), false, 7, 0x1234, "0x80071234"},
		{"unknown success", Code(0x00040000), true, 4, 0, "0x00040000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.succeeded, tc.code.Succeeded())
			require.Equal(t, !tc.succeeded, tc.code.Failed())
			require.Equal(t, tc.facility, tc.code.Facility())
			require.Equal(t, tc.status, tc.code.Status())
			require.Equal(t, tc.str, tc.code.String())
		})
	}
}

func TestFromWin32(t *testing.T) {
	require.Equal(t, CodeOK, FromWin32(0))
	require.Equal(t, CodeFileNotFound, FromWin32(2))
	require.Equal(t, CodeAccessDenied, FromWin32(5))
	require.Equal(t, CodeNotFound, FromWin32(1168))
	require.Equal(t, CodeTimeout, FromWin32(1460))
	require.Equal(t, CodeFail, FromWin32(uint32(CodeFail)))
}

func TestInt32(t *testing.T) {
	require.Equal(t, int32(-2147467259), CodeFail.Int32())
	require.Equal(t, CodeFail, FromInt32(-2147467259))
	require.Equal(t, CodeOK, FromInt32(0))
	require.True(t, FromInt32(-1).Failed())
}
