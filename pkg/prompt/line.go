package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

type lineDriver struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLine returns a Driver that reads one answer per line from in and writes
// prompts to out. It works with pipes and redirected files where the survey
// terminal driver cannot.
func NewLine(in io.Reader, out io.Writer) Driver {
	if out == nil {
		out = io.Discard
	}
	return &lineDriver{in: bufio.NewReader(in), out: out}
}

func (d *lineDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	label := cfg.Message
	if cfg.Default != "" {
		label = fmt.Sprintf("%s [%s]", label, cfg.Default)
	}
	if _, err := fmt.Fprintf(d.out, "%s: ", label); err != nil {
		return "", err
	}

	line, err := d.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", err
	}

	answer := strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(answer) == "" && cfg.Default != "" {
		return cfg.Default, nil
	}
	return answer, nil
}

func (d *lineDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}
