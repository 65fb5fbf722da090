package prettyprint

import (
	"bufio"
	"io"

	"github.com/inoxlang/substrate/internal/utils"
	"github.com/muesli/termenv"
)

var (
	ANSI_RESET_SEQUENCE = []byte(termenv.CSI + termenv.ResetSeq + "m")

	SPACE_DOT_SPACE = []byte{' ', '.', ' '}
	THREE_DOTS      = []byte{'.', '.', '.'}
)

// A PrettyPrintWriter wraps a buffered writer and panics on write errors, callers are expected to recover.
// The number of written bytes is tracked so that it can be reported after a flush.
type PrettyPrintWriter struct {
	writer *bufio.Writer
	n      *int

	Depth int
}

func NewWriter(w io.Writer) PrettyPrintWriter {
	writer, ok := w.(*bufio.Writer)
	if !ok {
		writer = bufio.NewWriter(w)
	}
	return PrettyPrintWriter{
		writer: writer,
		n:      new(int),
	}
}

// Written returns the number of bytes written so far through w and all the writers derived from it.
func (w PrettyPrintWriter) Written() int {
	return *w.n
}

func (w PrettyPrintWriter) Flush() error {
	return w.writer.Flush()
}

func (w PrettyPrintWriter) WriteString(str string) {
	*w.n += utils.Must(w.writer.Write(utils.StringAsBytes(str)))
}

func (w PrettyPrintWriter) WriteBytes(b []byte) {
	*w.n += utils.Must(w.writer.Write(b))
}

func (w PrettyPrintWriter) WriteManyBytes(b ...[]byte) {
	*w.n += utils.MustWriteMany(w.writer, b...)
}

func (w PrettyPrintWriter) WriteByte(b byte) {
	utils.PanicIfErr(w.writer.WriteByte(b))
	*w.n += 1
}

// WriteColored writes b surrounded by color and a reset sequence, color is ignored if nil.
func (w PrettyPrintWriter) WriteColored(color []byte, b []byte) {
	if color == nil {
		w.WriteBytes(b)
		return
	}
	w.WriteManyBytes(color, b, ANSI_RESET_SEQUENCE)
}

func (w PrettyPrintWriter) IncrDepth() PrettyPrintWriter {
	new := w
	new.Depth++
	return new
}
