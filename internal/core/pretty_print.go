package core

import (
	"bytes"
	"io"

	"github.com/inoxlang/substrate/internal/config"
	"github.com/inoxlang/substrate/internal/prettyprint"
	"github.com/inoxlang/substrate/internal/utils"
)

type (
	PrettyPrintConfig = prettyprint.PrettyPrintConfig
	PrettyPrintColors = prettyprint.PrettyPrintColors
)

var (
	// configuration used by Render and String methods: no colors, no depth limit.
	PLAIN_PRINT_CONFIG = &PrettyPrintConfig{}

	OPENING_PAREN = []byte{'('}
	CLOSING_PAREN = []byte{')'}
)

// DefaultPrettyPrintConfig returns a configuration with a depth limit, colors are enabled if the
// environment allows it (see the config package).
func DefaultPrettyPrintConfig() *PrettyPrintConfig {
	cfg := PrettyPrintConfig{MaxDepth: prettyprint.DEFAULT_MAX_DEPTH}
	if !config.SHOULD_COLORIZE {
		return &cfg
	}
	if config.DARK_BACKGROUND {
		return cfg.WithColors(&prettyprint.DEFAULT_DARKMODE_PRINT_COLORS)
	}
	return cfg.WithColors(&prettyprint.DEFAULT_LIGHTMODE_PRINT_COLORS)
}

// PrettyPrint writes the textual form of v to w. The output is buffered: if an error occurs n is the
// number of bytes accepted by the buffer, some of them may not have reached w.
func PrettyPrint(w io.Writer, v Value, config *PrettyPrintConfig) (n int, err error) {
	writer := prettyprint.NewWriter(w)

	defer func() {
		if e := recover(); e != nil {
			n = writer.Written()
			err = utils.ConvertPanicValueToError(e)
		}
	}()

	v.PrettyPrint(writer, config)
	utils.PanicIfErr(writer.Flush())
	return writer.Written(), nil
}

// Render writes the plain textual form of v to w: (1 2 3) for proper lists, (1 2 . 3) for dotted lists.
func Render(w io.Writer, v Value) (int, error) {
	return PrettyPrint(w, v, PLAIN_PRINT_CONFIG)
}

// Stringify returns the plain textual form of v.
func Stringify(v Value) string {
	buf := bytes.NewBuffer(nil)
	utils.Must(Render(buf, v))
	return buf.String()
}

func (p *Pair) Render(w io.Writer) (int, error) {
	return Render(w, p)
}

func (p *Pair) String() string {
	return Stringify(p)
}

// PrettyPrint walks the chain iteratively, only pairs nested in a car are printed recursively.
func (p *Pair) PrettyPrint(w prettyprint.PrettyPrintWriter, config *PrettyPrintConfig) {
	if config.MaxDepth > 0 && w.Depth >= config.MaxDepth {
		writeDelimiter(w, config, OPENING_PAREN)
		w.WriteBytes(prettyprint.THREE_DOTS)
		writeDelimiter(w, config, CLOSING_PAREN)
		return
	}

	writeDelimiter(w, config, OPENING_PAREN)
	elemWriter := w.IncrDepth()

	for cell := p; ; {
		cell.car.PrettyPrint(elemWriter, config)

		switch cdr := cell.cdr.(type) {
		case *Pair:
			w.WriteByte(' ')
			cell = cdr
			continue
		}

		if !IsTerminator(cell.cdr) {
			writeDelimiter(w, config, prettyprint.SPACE_DOT_SPACE)
			cell.cdr.PrettyPrint(elemWriter, config)
		}
		writeDelimiter(w, config, CLOSING_PAREN)
		return
	}
}

func (s *Symbol) PrettyPrint(w prettyprint.PrettyPrintWriter, config *PrettyPrintConfig) {
	if !config.Colorize {
		w.WriteString(s.name)
		return
	}

	color := config.Colors.Symbol
	if s.name == TERMINATOR_NAME {
		color = config.Colors.Terminator
	}
	w.WriteColored(color, utils.StringAsBytes(s.name))
}

func (i Int) PrettyPrint(w prettyprint.PrettyPrintWriter, config *PrettyPrintConfig) {
	writeNumber(w, config, i.String())
}

func (f Float) PrettyPrint(w prettyprint.PrettyPrintWriter, config *PrettyPrintConfig) {
	writeNumber(w, config, f.String())
}

func writeNumber(w prettyprint.PrettyPrintWriter, config *PrettyPrintConfig, s string) {
	if config.Colorize {
		w.WriteColored(config.Colors.NumberLiteral, utils.StringAsBytes(s))
		return
	}
	w.WriteString(s)
}

func writeDelimiter(w prettyprint.PrettyPrintWriter, config *PrettyPrintConfig, b []byte) {
	if config.Colorize {
		w.WriteColored(config.Colors.Delimiter, b)
		return
	}
	w.WriteBytes(b)
}
