package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/rocket-lander/constants"
	"github.com/lixenwraith/rocket-lander/input"
)

// InputSource returns the controls for the current frame
type InputSource interface {
	Poll() input.Controls
}

// Presenter draws the current session state
type Presenter interface {
	Present(s *Session) error
}

// Runner owns the frame loop: process input, update, render
type Runner struct {
	controller *Controller
	input      InputSource
	presenter  Presenter
	interval   time.Duration
	logger     *zap.Logger
}

// NewRunner creates a frame loop; interval <= 0 selects constants.FrameUpdateInterval
func NewRunner(c *Controller, in InputSource, p Presenter, interval time.Duration, logger *zap.Logger) *Runner {
	if interval <= 0 {
		interval = constants.FrameUpdateInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		controller: c,
		input:      in,
		presenter:  p,
		interval:   interval,
		logger:     logger,
	}
}

// Run loops until the session terminates, the close signal arrives or ctx is done
// Returns nil on a graceful stop
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("frame loop cancelled")
			return nil
		case <-ticker.C:
			done, err := r.Frame()
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

// Frame runs one process_input → update → render cycle and reports whether the loop should stop
func (r *Runner) Frame() (bool, error) {
	ctl := r.input.Poll()
	if ctl.Quit {
		r.logger.Info("close requested")
		return true, nil
	}

	r.controller.ProcessInput(ctl)
	r.controller.Update()

	s := r.controller.Session()
	if err := r.presenter.Present(s); err != nil {
		return true, fmt.Errorf("render frame: %w", err)
	}
	return !s.Running(), nil
}
