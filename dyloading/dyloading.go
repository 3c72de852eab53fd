package dyloading

import (
	"errors"
	"fmt"
)

// ErrBufferTooSmall reports a destination buffer that cannot hold the
// formatted message and its NUL terminator. It is the only error this
// package returns.
var ErrBufferTooSmall = errors.New("dyloading: buffer too small for formatted message")

// Sum returns a + b using wrapping 32-bit arithmetic. Overflow is not
// checked, matching the native integer semantics of the original
// library.
func Sum(a, b int32) int32 {
	return a + b
}

// Message returns the formatted result line the library writes into
// the caller's buffer. The format is fixed for compatibility with
// existing hosts and must not change.
func Message(a, b int32) string {
	return fmt.Sprintf("[External dyloading] The result (%d + %d) is %d!", a, b, Sum(a, b))
}

// Greeting returns the diagnostic line printed to stdout before the
// buffer is overwritten, echoing whatever label the caller seeded the
// buffer with.
func Greeting(label string) string {
	return "[External dyloading] Hello " + label
}

// FillMessage formats the message for a and b into dst as a
// NUL-terminated C string and returns the sum. If dst cannot hold the
// message plus terminator it returns ErrBufferTooSmall and leaves dst
// untouched.
func FillMessage(dst []byte, a, b int32) (int32, error) {
	msg := Message(a, b)
	if len(dst) < len(msg)+1 {
		return 0, ErrBufferTooSmall
	}
	n := copy(dst, msg)
	dst[n] = 0
	return Sum(a, b), nil
}
