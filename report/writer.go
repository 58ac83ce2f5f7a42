package report

import (
	"fmt"
	"io"
)

// stickyWriter formats onto w and keeps the first error.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

// Err returns the first write error, if any.
func (s *stickyWriter) Err() error { return s.err }
