package preset

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// presetLexer defines the lexical structure of preset files: a small
// s-expression dialect in the spirit of KiCad file formats.
var presetLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run from # to end of line.
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `\s+`},

	// Parentheses
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},

	// Numbers (integer or decimal, optional exponent)
	{Name: "Number", Pattern: `[-+]?\d+(\.\d+)?([eE][-+]?\d+)?`},

	// Bare symbols: keys and yes/no values
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_.]*`},
})
