package imagepkg

import "fmt"

// MalformedError reports a render tree the renderer cannot draw.
type MalformedError struct {
	Path   string
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed node %s: %s", e.Path, e.Reason)
}

func malformed(path, format string, args ...interface{}) error {
	return &MalformedError{Path: path, Reason: fmt.Sprintf(format, args...)}
}
