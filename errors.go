package sqlfrag

import (
	"errors"
	"fmt"
)

/*
Error codes. You probably shouldn't use this directly; instead, use the `Err`
variables with `errors.Is`.
*/
type ErrCode string

const (
	ErrCodeUnknown          ErrCode = ""
	ErrCodeInvalidInput     ErrCode = "InvalidInput"
	ErrCodeIndexOutOfBounds ErrCode = "IndexOutOfBounds"
	ErrCodeInternal         ErrCode = "Internal"
)

/*
Use blank error variables to detect error types:

	if errors.Is(err, sqlfrag.ErrInvalidInput) {
		// Handle specific error.
	}

Note that errors returned by this package can't be compared via `==` because
they include additional details about the circumstances. When compared by
`errors.Is`, they compare `.Cause` and fall back on `.Code`.
*/
var (
	ErrInvalidInput     Err = Err{Code: ErrCodeInvalidInput, Cause: errors.New(`invalid input`)}
	ErrIndexOutOfBounds Err = Err{Code: ErrCodeIndexOutOfBounds, Cause: errors.New(`index out of bounds`)}
	ErrInternal         Err = Err{Code: ErrCodeInternal, Cause: errors.New(`internal error`)}
)

// Type of errors panicked or returned by this package.
type Err struct {
	Code  ErrCode
	While string
	Cause error
}

// Implement `error`.
func (self Err) Error() string {
	if self == (Err{}) {
		return ""
	}
	msg := `[sqlfrag]`
	if self.Code != ErrCodeUnknown {
		msg += fmt.Sprintf(` %s`, self.Code)
	}
	if self.While != "" {
		msg += fmt.Sprintf(` while %v`, self.While)
	}
	if self.Cause != nil {
		msg += `: ` + self.Cause.Error()
	}
	return msg
}

// Implement a hidden interface in "errors".
func (self Err) Is(other error) bool {
	if self.Cause != nil && errors.Is(self.Cause, other) {
		return true
	}
	err, ok := other.(Err)
	return ok && err.Code == self.Code
}

// Implement a hidden interface in "errors".
func (self Err) Unwrap() error {
	return self.Cause
}
