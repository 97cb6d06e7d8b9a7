package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNotANumber is returned by Prompt when a numeric answer does not parse.
var ErrNotANumber = errors.New("please enter a valid number")

// Prompt asks for the board width, height, rock count, wrap and portals on
// out, reading one answer per line from in, and stores them in cfg.
// A non-numeric size or count is fatal; an unrecognized yes/no answer is
// asked again.
func Prompt(in io.Reader, out io.Writer, cfg *Config) error {
	p := prompter{in: bufio.NewScanner(in), out: out}

	var err error
	if cfg.Grid.Width, err = p.number("Enter map width: "); err != nil {
		return err
	}
	if cfg.Grid.Height, err = p.number("Enter map height: "); err != nil {
		return err
	}
	if cfg.Rocks, err = p.number("Enter rock count: "); err != nil {
		return err
	}
	if cfg.Grid.Wrap, err = p.yesNo("Should snakes pass through walls? (yes/no): "); err != nil {
		return err
	}
	if cfg.Portals, err = p.yesNo("Should portals appear? (yes/no): "); err != nil {
		return err
	}
	return nil
}

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p prompter) line(question string) (string, error) {
	fmt.Fprintln(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p prompter) number(question string) (int, error) {
	answer, err := p.line(question)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, answer)
	}
	return n, nil
}

func (p prompter) yesNo(question string) (bool, error) {
	for {
		answer, err := p.line(question)
		if err != nil {
			return false, err
		}
		switch answer {
		case "yes":
			return true, nil
		case "no":
			return false, nil
		}
		question = "Enter 'yes' or 'no'."
	}
}
