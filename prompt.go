// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package musicroom

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter supplies values for variables flagged Prompt during Configure.
// Returning an empty string keeps current.
type Prompter interface {
	Prompt(v Variable, current string) (string, error)
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(v Variable, current string) (string, error)

func (f PrompterFunc) Prompt(v Variable, current string) (string, error) {
	return f(v, current)
}

// LinePrompter reads one line per variable.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
	// interactive is set when in is a terminal; prompts are only
	// written then, so piped answers stay quiet.
	interactive bool
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	p := &LinePrompter{in: bufio.NewReader(in), out: out}
	if f, ok := in.(*os.File); ok {
		p.interactive = term.IsTerminal(int(f.Fd()))
	}
	return p
}

func (p *LinePrompter) Prompt(v Variable, current string) (string, error) {
	if p.interactive {
		label := v.Help
		if label == "" {
			label = v.Name
		}
		fmt.Fprintf(p.out, "%s [%s]: ", label, current)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("prompt %s: %w", v.Name, err)
	}
	return strings.TrimSpace(line), nil
}
