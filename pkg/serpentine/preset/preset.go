// Package preset reads and writes serpentine parameter presets as
// s-expression files, e.g.
//
//	(meander_preset
//	  (version 1)
//	  (radius 2)
//	  (front (count 2) (width 0.4))
//	  (noedge no)
//	)
//
// Unknown keys are ignored and missing keys keep their defaults, matching
// the degradation contract of parameter entry in the UI.
package preset

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/OpenTraceLab/MeanderTrace/pkg/serpentine"
)

// FormatVersion is written into saved presets. Loading tolerates any
// version; the format only grows keys.
const FormatVersion = 1

// document is the top-level grammar node: a named list of entries.
type document struct {
	Name    string   `parser:"'(' @Ident"`
	Entries []*entry `parser:"@@* ')'"`
}

// entry is either (key value) or (key sub-entries...).
type entry struct {
	Key     string   `parser:"'(' @Ident"`
	Number  *float64 `parser:"( @Number"`
	Symbol  *string  `parser:"| @Ident"`
	Entries []*entry `parser:"| @@+ ) ')'"`
}

// Parser parses preset files.
type Parser struct {
	parser *participle.Parser[document]
}

// NewParser creates a preset parser instance.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[document](
		participle.Lexer(presetLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse parses a preset from a reader.
func (p *Parser) Parse(r io.Reader) (serpentine.Parameters, error) {
	doc, err := p.parser.Parse("", r)
	if err != nil {
		return serpentine.DefaultParameters(), fmt.Errorf("parse error: %w", err)
	}
	return doc.decode()
}

// ParseString parses a preset from a string.
func (p *Parser) ParseString(input string) (serpentine.Parameters, error) {
	doc, err := p.parser.ParseString("", input)
	if err != nil {
		return serpentine.DefaultParameters(), fmt.Errorf("parse error: %w", err)
	}
	return doc.decode()
}

// ParseFile parses a preset from a file path.
func (p *Parser) ParseFile(filename string) (serpentine.Parameters, error) {
	file, err := os.Open(filename)
	if err != nil {
		return serpentine.DefaultParameters(), fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// Load is a convenience wrapper that builds a parser and parses one file.
func Load(filename string) (serpentine.Parameters, error) {
	parser, err := NewParser()
	if err != nil {
		return serpentine.DefaultParameters(), err
	}
	return parser.ParseFile(filename)
}

func (d *document) decode() (serpentine.Parameters, error) {
	p := serpentine.DefaultParameters()
	if d.Name != "meander_preset" {
		return p, fmt.Errorf("not a meander preset: %q", d.Name)
	}

	for _, e := range d.Entries {
		switch e.Key {
		case "version":
			// Informational only.
		case serpentine.KeyRadius:
			e.setFloat(&p.Radius)
		case serpentine.KeyAmplitude:
			e.setFloat(&p.Amplitude)
		case serpentine.KeyAngle:
			e.setFloat(&p.Angle)
		case serpentine.KeyLength:
			e.setFloat(&p.Length)
		case serpentine.KeyPitch:
			e.setFloat(&p.Pitch)
		case serpentine.KeyNoEdge:
			e.setBool(&p.NoEdge)
		case "front":
			e.decodeSide(&p.FrontCount, &p.FrontWidth)
		case "back":
			e.decodeSide(&p.BackCount, &p.BackWidth)
		default:
			// Unknown keys are tolerated for forward compatibility.
		}
	}

	return p, nil
}

func (e *entry) decodeSide(count *int, width *float64) {
	for _, sub := range e.Entries {
		switch sub.Key {
		case "count":
			sub.setInt(count)
		case "width":
			sub.setFloat(width)
		}
	}
}

func (e *entry) setFloat(dst *float64) {
	if e.Number != nil {
		*dst = *e.Number
	}
}

func (e *entry) setInt(dst *int) {
	if e.Number != nil {
		*dst = int(*e.Number)
	}
}

func (e *entry) setBool(dst *bool) {
	if e.Symbol == nil {
		return
	}
	switch *e.Symbol {
	case "yes", "true":
		*dst = true
	case "no", "false":
		*dst = false
	}
}

// Format renders the parameters in the preset file format.
func Format(p serpentine.Parameters) string {
	var b strings.Builder
	b.WriteString("(meander_preset\n")
	fmt.Fprintf(&b, "  (version %d)\n", FormatVersion)
	fmt.Fprintf(&b, "  (%s %s)\n", serpentine.KeyRadius, num(p.Radius))
	fmt.Fprintf(&b, "  (%s %s)\n", serpentine.KeyAmplitude, num(p.Amplitude))
	fmt.Fprintf(&b, "  (%s %s)\n", serpentine.KeyAngle, num(p.Angle))
	fmt.Fprintf(&b, "  (%s %s)\n", serpentine.KeyLength, num(p.Length))
	fmt.Fprintf(&b, "  (%s %s)\n", serpentine.KeyPitch, num(p.Pitch))
	fmt.Fprintf(&b, "  (front (count %d) (width %s))\n", p.FrontCount, num(p.FrontWidth))
	fmt.Fprintf(&b, "  (back (count %d) (width %s))\n", p.BackCount, num(p.BackWidth))
	fmt.Fprintf(&b, "  (%s %s)\n", serpentine.KeyNoEdge, yesNo(p.NoEdge))
	b.WriteString(")\n")
	return b.String()
}

// Save writes the parameters to a preset file.
func Save(filename string, p serpentine.Parameters) error {
	if err := os.WriteFile(filename, []byte(Format(p)), 0644); err != nil {
		return fmt.Errorf("failed to write preset: %w", err)
	}
	return nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
