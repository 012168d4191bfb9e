package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter writes the same payload to all given writers.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		writers: writers,
	}
}

func (cw *CombinedWriter) Write(p []byte) (n int, err error) {
	var errs error
	for _, w := range cw.writers {
		written, werr := w.Write(p)
		if werr != nil {
			errs = multierr.Append(errs, werr)
			continue
		}
		if written > n {
			n = written
		}
	}
	return n, errs
}
