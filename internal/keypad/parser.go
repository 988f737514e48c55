package keypad

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type Document struct {
	Lines []*Line `parser:"@@*"`
}

// Line is one key's worth of moves. Blank lines have no moves.
type Line struct {
	Moves string `parser:"@Moves? EOL"`
}

var keypadLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Moves", Pattern: `[UDLR]+`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var parser = participle.MustBuild[Document](
	participle.Lexer(keypadLexer),
	participle.Elide("Whitespace"),
)

// Parse reads one line of U/D/L/R moves per key. Blank lines are skipped.
func Parse(data string) ([][]Direction, error) {
	if !strings.HasSuffix(data, "\n") {
		data += "\n"
	}
	doc, err := parser.ParseString("input", data)
	if err != nil {
		return nil, fmt.Errorf("keypad instructions: %w", err)
	}
	var out [][]Direction
	for _, l := range doc.Lines {
		if l.Moves == "" {
			continue
		}
		out = append(out, l.Directions())
	}
	return out, nil
}

// Directions decodes the move letters of the line.
func (l *Line) Directions() []Direction {
	dirs := make([]Direction, 0, len(l.Moves))
	for _, c := range l.Moves {
		switch c {
		case 'U':
			dirs = append(dirs, Up)
		case 'D':
			dirs = append(dirs, Down)
		case 'L':
			dirs = append(dirs, Left)
		case 'R':
			dirs = append(dirs, Right)
		}
	}
	return dirs
}
