package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"
)

// ErrInvalidStep is returned when the frame step is not positive.
var ErrInvalidStep = errors.New("simulation step must be positive")

// World is a fixed-step simulation (scene.Level).
type World interface {
	Update(dt float64)
	Finished() bool
}

// Options controls how the runner paces frames.
type Options struct {
	// Step is the simulated time of one frame, in seconds.
	Step float64
	// RealTime paces frames with a ticker of Step; otherwise frames run back to back.
	RealTime bool
	// MaxDuration caps simulated time in seconds. Zero means no cap.
	MaxDuration float64
}

// StopReason tells why the loop ended.
type StopReason int

const (
	StopFinished StopReason = iota
	StopTimedOut
	StopRequested
	StopCanceled
)

func (r StopReason) String() string {
	switch r {
	case StopFinished:
		return "finished"
	case StopTimedOut:
		return "timed_out"
	case StopRequested:
		return "stopped"
	case StopCanceled:
		return "canceled"
	}
	return fmt.Sprintf("StopReason(%d)", int(r))
}

// Result summarises a run.
type Result struct {
	Frames  uint64
	Elapsed float64
	Reason  StopReason
}

// Runner drives World.Update(step) until the world is finished, the time
// cap is hit, Stop is called or the context is canceled. Cancellation is
// observed between frames only.
type Runner struct {
	world    World
	opts     Options
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRunner creates runner for world.
func NewRunner(world World, opts Options) *Runner {
	return &Runner{
		world:  world,
		opts:   opts,
		stopCh: make(chan struct{}),
	}
}

// Run blocks until the loop ends. A canceled context is reported as
// ctx.Err() together with the partial result.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if r.opts.Step <= 0 || math.IsNaN(r.opts.Step) {
		return Result{}, fmt.Errorf("step %v: %w", r.opts.Step, ErrInvalidStep)
	}

	slog.Info("simulation started",
		"step", r.opts.Step,
		"realTime", r.opts.RealTime,
		"maxDuration", r.opts.MaxDuration)

	var (
		res Result
		err error
	)
	if r.opts.RealTime {
		res, err = r.runTicker(ctx)
	} else {
		res, err = r.runHeadless(ctx)
	}

	slog.Info("simulation stopped",
		"frames", res.Frames,
		"elapsed", res.Elapsed,
		"reason", res.Reason.String())
	return res, err
}

// Stop ends the loop after the current frame. Safe to call more than once.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
}

func (r *Runner) runHeadless(ctx context.Context) (Result, error) {
	var res Result
	for {
		select {
		case <-ctx.Done():
			res.Reason = StopCanceled
			return res, ctx.Err()
		case <-r.stopCh:
			res.Reason = StopRequested
			return res, nil
		default:
		}

		if done, reason := r.frame(&res); done {
			res.Reason = reason
			return res, nil
		}
	}
}

func (r *Runner) runTicker(ctx context.Context) (Result, error) {
	ticker := time.NewTicker(time.Duration(r.opts.Step * float64(time.Second)))
	defer ticker.Stop()

	var res Result
	for {
		select {
		case <-ctx.Done():
			res.Reason = StopCanceled
			return res, ctx.Err()

		case <-r.stopCh:
			res.Reason = StopRequested
			return res, nil

		case <-ticker.C:
			if done, reason := r.frame(&res); done {
				res.Reason = reason
				return res, nil
			}
		}
	}
}

// frame runs one update unless the run is already over.
func (r *Runner) frame(res *Result) (bool, StopReason) {
	if r.world.Finished() {
		return true, StopFinished
	}
	if r.timedOut(res.Frames) {
		return true, StopTimedOut
	}

	r.world.Update(r.opts.Step)
	res.Frames++
	res.Elapsed = float64(res.Frames) * r.opts.Step

	if r.world.Finished() {
		return true, StopFinished
	}
	return false, 0
}

func (r *Runner) timedOut(frames uint64) bool {
	if r.opts.MaxDuration <= 0 {
		return false
	}
	limit := uint64(math.Ceil(r.opts.MaxDuration/r.opts.Step - 1e-9))
	return frames >= limit
}
