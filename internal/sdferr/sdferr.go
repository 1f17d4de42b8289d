// Package sdferr defines the error kinds the pipeline can surface. Call
// sites wrap one of the sentinels below with fmt.Errorf's %w; Kind recovers
// the sentinel so the CLI's single top-level handler can map it to an exit
// code and message without inspecting error text.
package sdferr

import "errors"

// Sentinel error kinds. Wrap one with fmt.Errorf("...: %w", ErrX) at the
// point of failure; never return a bare sentinel with no context.
var (
	// ErrInvalidArguments marks a missing or ill-formed CLI option value.
	ErrInvalidArguments = errors.New("invalid arguments")
	// ErrDecode marks a decoder rejecting the input image.
	ErrDecode = errors.New("decode error")
	// ErrEncode marks an encoder failing to write the output image.
	ErrEncode = errors.New("encode error")
	// ErrOutOfMemory marks a buffer allocation failure for the chosen image size.
	ErrOutOfMemory = errors.New("out of memory")
)

// Kind returns the sentinel err wraps, or nil if err wraps none of them.
func Kind(err error) error {
	for _, kind := range []error{ErrInvalidArguments, ErrDecode, ErrEncode, ErrOutOfMemory} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// ExitCode maps an error to a process exit code: 0 for nil, a small
// positive integer per kind otherwise.
func ExitCode(err error) int {
	switch Kind(err) {
	case nil:
		if err == nil {
			return 0
		}
		return 1
	case ErrInvalidArguments:
		return 2
	case ErrDecode:
		return 3
	case ErrEncode:
		return 4
	case ErrOutOfMemory:
		return 5
	default:
		return 1
	}
}
