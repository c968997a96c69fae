package backup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	BackupScript  = "backup_to_san.ps1"
	PredictScript = "predict_usage.py"
)

var (
	ErrLogMissingAfterRun = errors.New("san_usage_log.csv not found after backup")
	ErrNoRowsAfterRun     = errors.New("No data rows in san_usage_log.csv")
)

type TriggerOptions struct {
	Shell       string
	Python      string
	StepTimeout time.Duration
}

// Trigger runs the backup script, then the prediction script, then reports the fresh status.
type Trigger struct {
	reporter *Reporter
	runner   StepRunner
	opts     TriggerOptions
}

func NewTrigger(reporter *Reporter, runner StepRunner, opts TriggerOptions) *Trigger {
	if opts.Shell == "" {
		opts.Shell = "powershell"
	}
	if opts.Python == "" {
		opts.Python = "python"
	}
	return &Trigger{reporter: reporter, runner: runner, opts: opts}
}

// Steps lists the commands in the order they run. Script names are relative to the backup dir.
func (t *Trigger) Steps() []Step {
	dir := t.reporter.Dir()
	return []Step{
		{Name: "backup", Command: t.opts.Shell, Args: []string{"-ExecutionPolicy", "Bypass", "-File", BackupScript}, Dir: dir},
		{Name: "predict", Command: t.opts.Python, Args: []string{PredictScript}, Dir: dir},
	}
}

func (t *Trigger) Run(ctx context.Context) (*Status, error) {
	fsys := t.reporter.fs
	if err := fsys.MkdirAll(t.reporter.Dir(), 0o755); err != nil {
		return nil, fmt.Errorf("create backup directory: %w", err)
	}

	scripts := []struct {
		step, kind, name string
	}{
		{"backup", "PowerShell", BackupScript},
		{"predict", "Python", PredictScript},
	}
	for _, s := range scripts {
		path := t.reporter.path(s.name)
		ok, err := afero.Exists(fsys, path)
		if err != nil {
			return nil, &StepError{Step: s.step, Err: err}
		}
		if !ok {
			return nil, &StepError{Step: s.step, Err: fmt.Errorf("%s script not found: %s", s.kind, path)}
		}
	}

	for _, step := range t.Steps() {
		if err := t.runStep(ctx, step); err != nil {
			return nil, err
		}
	}

	if ok, _ := afero.Exists(fsys, t.reporter.path(UsageLogFile)); !ok {
		return nil, ErrLogMissingAfterRun
	}
	status, err := t.reporter.Status()
	if errors.Is(err, ErrNoUsageData) {
		return nil, ErrNoRowsAfterRun
	}
	return status, err
}

func (t *Trigger) runStep(ctx context.Context, step Step) error {
	if t.opts.StepTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.opts.StepTimeout)
		defer cancel()
	}

	start := time.Now()
	log.Info().Str("step", step.Name).Str("command", step.String()).Msg("running backup step")
	err := t.runner.Run(ctx, step)
	if err != nil {
		log.Error().Err(err).Str("step", step.Name).Dur("elapsed", time.Since(start)).Msg("backup step failed")
		var stepErr *StepError
		if !errors.As(err, &stepErr) {
			err = &StepError{Step: step.Name, Err: err}
		}
		return err
	}
	log.Info().Str("step", step.Name).Dur("elapsed", time.Since(start)).Msg("backup step finished")
	return nil
}
