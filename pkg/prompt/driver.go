package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputConfig configures a basic text input prompt.
type InputConfig struct {
	Message string
	// Default is returned when the answer is blank.
	Default string
	Help    string
}

// Driver abstracts the prompt implementation so collection logic can be
// tested without a real terminal and callers can swap implementations.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Info(ctx context.Context, msg string) error
}

// SurveyOption configures the terminal driver.
type SurveyOption func(*surveyDriver)

// WithStdio overrides the terminal streams the survey driver talks to.
func WithStdio(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) SurveyOption {
	return func(d *surveyDriver) {
		d.stdio = &terminal.Stdio{In: in, Out: out, Err: errOut}
	}
}

type surveyDriver struct {
	stdio *terminal.Stdio
	out   io.Writer
}

// NewSurvey returns a Driver that renders prompts with survey on the current
// terminal.
func NewSurvey(options ...SurveyOption) Driver {
	d := &surveyDriver{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	d.out = os.Stdout
	if d.stdio != nil && d.stdio.Out != nil {
		d.out = d.stdio.Out
	}
	return d
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	var opts []survey.AskOpt
	if d.stdio != nil {
		opts = append(opts, survey.WithStdio(d.stdio.In, d.stdio.Out, d.stdio.Err))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	if errors.Is(err, io.EOF) {
		return ErrInputClosed
	}
	return err
}
