package prettyprint

import "github.com/muesli/termenv"

const (
	DEFAULT_MAX_DEPTH = 50
)

var (
	DEFAULT_DARKMODE_PRINT_COLORS = PrettyPrintColors{
		NumberLiteral: GetFullColorSequence(termenv.ANSIBrightGreen, false),
		Symbol:        GetFullColorSequence(termenv.ANSIBrightCyan, false),
		Terminator:    GetFullColorSequence(termenv.ANSIBlue, false),
		Delimiter:     GetFullColorSequence(termenv.ANSIBrightBlack, false),
	}

	DEFAULT_LIGHTMODE_PRINT_COLORS = PrettyPrintColors{
		NumberLiteral: GetFullColorSequence(termenv.ANSI256Color(28), false),
		Symbol:        GetFullColorSequence(termenv.ANSI256Color(27), false),
		Terminator:    GetFullColorSequence(termenv.ANSI256Color(21), false),
		Delimiter:     GetFullColorSequence(termenv.ANSIBrightBlack, false),
	}
)

type PrettyPrintColors struct {
	NumberLiteral, Symbol, Terminator,

	//parentheses and dot of dotted pairs
	Delimiter []byte
}

type PrettyPrintConfig struct {
	//nested pairs deeper than MaxDepth are printed as (...)
	MaxDepth int
	Colorize bool
	Colors   *PrettyPrintColors
}

// WithColors returns a copy of the configuration with colorization enabled.
func (c PrettyPrintConfig) WithColors(colors *PrettyPrintColors) *PrettyPrintConfig {
	c.Colorize = true
	c.Colors = colors
	return &c
}

func GetFullColorSequence(color termenv.Color, bg bool) []byte {
	var b = []byte(termenv.CSI)
	b = append(b, []byte(color.Sequence(bg))...)
	b = append(b, 'm')
	return b
}
