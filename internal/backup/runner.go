package backup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Step is one external command run by the trigger.
type Step struct {
	Name    string
	Command string
	Args    []string
	Dir     string
}

func (s Step) String() string {
	return strings.TrimSpace(s.Command + " " + strings.Join(s.Args, " "))
}

// StepRunner runs a step to completion.
type StepRunner interface {
	Run(ctx context.Context, step Step) error
}

// StepError reports which step failed along with the step's own error output.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// ExecRunner runs steps as child processes.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, step Step) error {
	cmd := exec.CommandContext(ctx, step.Command, step.Args...)
	cmd.Dir = step.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return &StepError{Step: step.Name, Err: errors.New(msg)}
		}
		return &StepError{Step: step.Name, Err: err}
	}
	return nil
}
