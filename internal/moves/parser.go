// Package moves parses turn-and-walk instruction lists such as "R2, L3".
package moves

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gridwalk/internal/grid"
)

// Separator between instructions. Only this exact sequence splits tokens.
const Separator = ", "

var (
	ErrBadTurn        = errors.New("turn must be L or R")
	ErrNegativeBlocks = errors.New("distance must not be negative")
)

// ParseError reports the token that could not be parsed.
type ParseError struct {
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrBadTurn) {
		return fmt.Sprintf("couldn't parse turn from %q", e.Token)
	}
	return fmt.Sprintf("couldn't parse move %q: %v", e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse returns the instructions of input in order. Blank input is an empty
// list.
func Parse(input string) ([]grid.Move, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return []grid.Move{}, nil
	}
	tokens := strings.Split(input, Separator)
	out := make([]grid.Move, 0, len(tokens))
	for _, tok := range tokens {
		m, err := ParseMove(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// ParseMove parses a single token such as "L12". The distance must fit in
// 32 bits.
func ParseMove(tok string) (grid.Move, error) {
	var turn grid.Turn
	switch {
	case strings.HasPrefix(tok, "L"):
		turn = grid.Left
	case strings.HasPrefix(tok, "R"):
		turn = grid.Right
	default:
		return grid.Move{}, &ParseError{Token: tok, Err: ErrBadTurn}
	}

	n, err := strconv.ParseInt(tok[1:], 10, 32)
	if err != nil {
		return grid.Move{}, &ParseError{Token: tok, Err: err}
	}
	if n < 0 {
		return grid.Move{}, &ParseError{Token: tok, Err: ErrNegativeBlocks}
	}
	return grid.Move{Turn: turn, Blocks: int(n)}, nil
}
