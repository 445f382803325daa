package errors

import "strings"

// ErrorPrefix marks the error channel in script text. Scripts have no error
// type, so a failed call returns its message prefixed with this marker and
// nothing else distinguishes it from a result.
const ErrorPrefix = "Error: "

// Flatten renders err as script text. This is the outermost boundary: typed
// errors exist everywhere inside the runtime and become strings only here.
func Flatten(err error) string {
	return ErrorPrefix + err.Error()
}

// IsErrorText reports whether script text came through the error channel.
func IsErrorText(s string) bool {
	return strings.HasPrefix(s, ErrorPrefix)
}
