package testsupport

import (
	"context"
	"errors"

	"github.com/goliatone/go-simplgen/pkg/prompt"
)

// ErrScriptExhausted is returned once every scripted answer was consumed.
var ErrScriptExhausted = errors.New("testsupport: no input scripted")

// ScriptedDriver answers prompts from a fixed list and records everything it
// was asked and told. Blank answers yield the prompt default, matching the
// real drivers.
type ScriptedDriver struct {
	Answers []string

	Prompts  []prompt.InputConfig
	Messages []string
	pos      int
}

// NewScriptedDriver returns a driver that replays answers in order.
func NewScriptedDriver(answers ...string) *ScriptedDriver {
	return &ScriptedDriver{Answers: answers}
}

// Input implements prompt.Driver.
func (s *ScriptedDriver) Input(ctx context.Context, cfg prompt.InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.Prompts = append(s.Prompts, cfg)
	if s.pos >= len(s.Answers) {
		return "", ErrScriptExhausted
	}
	val := s.Answers[s.pos]
	s.pos++
	if val == "" {
		return cfg.Default, nil
	}
	return val, nil
}

// Info implements prompt.Driver.
func (s *ScriptedDriver) Info(_ context.Context, msg string) error {
	s.Messages = append(s.Messages, msg)
	return nil
}

// Remaining reports how many scripted answers were not consumed.
func (s *ScriptedDriver) Remaining() int {
	return len(s.Answers) - s.pos
}
