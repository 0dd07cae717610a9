package window

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidWindow indicates a window size of zero or one larger than
	// MaxWindowSize.
	ErrInvalidWindow = ErrorKind("ErrInvalidWindow")

	// ErrInvalidBitSize indicates a negative exponent bit size bound.
	ErrInvalidBitSize = ErrorKind("ErrInvalidBitSize")

	// ErrTableAlloc indicates the precomputed table could not be allocated,
	// either because its size overflows or because it exceeds MaxTableSize.
	ErrTableAlloc = ErrorKind("ErrTableAlloc")

	// ErrCapacity indicates a scalar needs more windows than the table was
	// built for.
	ErrCapacity = ErrorKind("ErrCapacity")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to building or using a window table.  It
// has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
