package standard

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	progressclock "github.com/Mictilt/progress-clock"
)

var (
	// ErrNilWriter means the Writer has no destination, usually because it
	// was closed.
	ErrNilWriter = errors.New("nil writer")
)

// Writer renders clocks as SVG into an io.WriteCloser.
type Writer struct {
	option *outputImageOptions

	closer io.WriteCloser
}

// New creates the file (and its parent directories) and returns a Writer
// targeting it.
func New(filename string, opts ...ImageOption) (*Writer, error) {
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "create directory %s", dir)
		}
	}

	fd, err := os.Create(filename)
	if err != nil {
		return nil, errors.Wrap(err, "create file failed")
	}

	return NewWithWriter(fd, opts...), nil
}

// NewWithWriter returns a Writer targeting writeCloser.
func NewWithWriter(writeCloser io.WriteCloser, opts ...ImageOption) *Writer {
	return &Writer{
		option: newOutputImageOption(opts...),
		closer: writeCloser,
	}
}

// Write streams the SVG document of spec, one newline terminated element at a
// time. It returns the number of lines written.
func (w *Writer) Write(spec progressclock.ClockSpec) (int, error) {
	if w.closer == nil {
		return 0, ErrNilWriter
	}

	n := 0
	for line := range w.option.lines(spec) {
		if _, err := io.WriteString(w.closer, line+"\n"); err != nil {
			return n, errors.Wrapf(err, "write svg line %d", n+1)
		}
		n++
	}

	return n, nil
}

// Close releases the destination. Closing twice is a no-op.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}

	err := w.closer.Close()
	w.closer = nil
	return errors.Wrap(err, "close writer")
}
