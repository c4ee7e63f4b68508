package gcode

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Mode-setting tokens understood by the SketchUCam dialect.
const (
	tokenAbsolute      = "G90"
	tokenMillimeters   = "G21"
	tokenNoToolOffset  = "G49"
	tokenRapidPosition = "G0"
)

// parser tracks whether a move command is open, so that bare X/Y/Z
// continuation lines can be folded into it rather than rejected.
type parser struct {
	openMove bool
}

// Parse reads one command (or coordinate continuation) per line and returns
// the parsed program. Unrecognized tokens are dropped silently; a
// continuation with no preceding move command is an error.
func Parse(r io.Reader) (Program, error) {
	var (
		p       parser
		program Program
	)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		cmds, err := p.parseLine(line, strings.TrimRight(scanner.Text(), " \t\r"))
		if err != nil {
			return nil, err
		}
		program = append(program, cmds...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return program, nil
}

func (p *parser) parseLine(line int, text string) ([]Command, error) {
	if text == "" {
		return nil, nil
	}
	if text[0] == '%' || text[0] == '(' {
		return []Command{NewComment(line, text)}, nil
	}
	return p.parseTokens(line, text, strings.Fields(text))
}

func (p *parser) parseTokens(line int, text string, tokens []string) ([]Command, error) {
	var cmds []Command
	for _, token := range tokens {
		switch {
		case token == tokenAbsolute || token == tokenMillimeters || token == tokenNoToolOffset:
			// A mode change closes any open move.
			p.openMove = false
			cmds = append(cmds, NewMode(line, token))

		case token == tokenRapidPosition:
			p.openMove = true
			return p.appendMove(cmds, line, text)

		case token[0] == 'X' || token[0] == 'Y' || token[0] == 'Z':
			if !p.openMove {
				return nil, fmt.Errorf("line %d: coordinate %q continues no move command", line, token)
			}
			return p.appendMove(cmds, line, text)

		default:
			// Unrecognized word. The post-processor emits nothing else we
			// care about, so drop it and whatever follows it.
			return cmds, nil
		}
	}
	return cmds, nil
}

func (p *parser) appendMove(cmds []Command, line int, text string) ([]Command, error) {
	m, err := NewMove(line, text)
	if err != nil {
		return nil, err
	}
	return append(cmds, m), nil
}
