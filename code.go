package hresult

import "fmt"

// Code is an HRESULT-style status code.
//
// The high bit is the severity: clear means success, set means failure.
type Code uint32

const (
	CodeOK    Code = 0x00000000 // S_OK
	CodeFalse Code = 0x00000001 // S_FALSE

	CodeNotImpl      Code = 0x80004001
	CodeNoInterface  Code = 0x80004002
	CodePointer      Code = 0x80004003
	CodeAbort        Code = 0x80004004
	CodeFail         Code = 0x80004005
	CodeUnexpected   Code = 0x8000FFFF
	CodeFileNotFound Code = 0x80070002
	CodeAccessDenied Code = 0x80070005
	CodeHandle       Code = 0x80070006
	CodeInvalidData  Code = 0x8007000D
	CodeOutOfMemory  Code = 0x8007000E
	CodeInvalidArg   Code = 0x80070057
	CodeNotFound     Code = 0x80070490
	CodeTimeout      Code = 0x800705B4
)

const (
	severityBit    = 0x80000000
	facilityWin32  = 7
	win32Prefix    = severityBit | facilityWin32<<16
	facilityMask   = 0x1FFF
	statusMask     = 0xFFFF
	facilityOffset = 16
)

var codeNames = map[Code]string{
	CodeOK:           "S_OK",
	CodeFalse:        "S_FALSE",
	CodeNotImpl:      "E_NOTIMPL",
	CodeNoInterface:  "E_NOINTERFACE",
	CodePointer:      "E_POINTER",
	CodeAbort:        "E_ABORT",
	CodeFail:         "E_FAIL",
	CodeUnexpected:   "E_UNEXPECTED",
	CodeFileNotFound: "HRESULT_FROM_WIN32(ERROR_FILE_NOT_FOUND)",
	CodeAccessDenied: "E_ACCESSDENIED",
	CodeHandle:       "E_HANDLE",
	CodeInvalidData:  "HRESULT_FROM_WIN32(ERROR_INVALID_DATA)",
	CodeOutOfMemory:  "E_OUTOFMEMORY",
	CodeInvalidArg:   "E_INVALIDARG",
	CodeNotFound:     "HRESULT_FROM_WIN32(ERROR_NOT_FOUND)",
	CodeTimeout:      "HRESULT_FROM_WIN32(ERROR_TIMEOUT)",
}

// Succeeded reports whether c is a success code.
func (c Code) Succeeded() bool {
	return c&severityBit == 0
}

// Failed reports whether c is a failure code.
func (c Code) Failed() bool {
	return !c.Succeeded()
}

// Facility returns the facility field of c.
func (c Code) Facility() uint16 {
	return uint16(uint32(c) >> facilityOffset & facilityMask)
}

// Status returns the low word of c, which for Win32 facility codes is the
// original error number.
func (c Code) Status() uint16 {
	return uint16(c & statusMask)
}

// Int32 returns c as the signed value used by most native APIs.
func (c Code) Int32() int32 {
	return int32(c)
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("0x%08X", uint32(c))
}

// FromInt32 converts a signed native status value to a Code.
func FromInt32(v int32) Code {
	return Code(uint32(v))
}

// FromWin32 converts a Win32 error number to a Code, following
// HRESULT_FROM_WIN32.
func FromWin32(errno uint32) Code {
	if errno == 0 {
		return CodeOK
	}
	if errno&severityBit != 0 {
		return Code(errno)
	}
	return Code(errno&statusMask | win32Prefix)
}
