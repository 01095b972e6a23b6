//go:build windows

package dumpr

// newline terminates every emitted value line.
const newline = "\r\n"
