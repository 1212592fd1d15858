// Package batch resizes and converts every image of a directory.
//
// A run lists the candidate images of the input directory, then decodes,
// scales and re-encodes them one by one into the output directory. A bad
// file only produces a failed Outcome; directory problems abort the run.
package batch

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/go-imsto/imbatch/config"
	cimg "github.com/go-imsto/imbatch/image"
	zlog "github.com/go-imsto/imbatch/log"
	"github.com/go-imsto/imbatch/utils"
)

func logger() zlog.Logger {
	return zlog.Get()
}

// Runner executes one configured job
type Runner struct {
	cfg      config.Config
	codec    cimg.Codec
	observer Observer
	topt     cimg.ThumbOption
}

// New validates cfg and prepares a Runner
func New(cfg *config.Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{cfg: *cfg, observer: nopObserver{}}
	for _, opt := range opts {
		opt(r)
	}
	if r.codec == nil {
		c, err := cimg.NewCodec(cfg.Engine, cfg.Filter)
		if err != nil {
			return nil, err
		}
		r.codec = c
	}
	r.topt = cimg.ThumbOption{
		Width:  cfg.Width,
		Height: cfg.Height,
		IsFit:  cfg.KeepRatio,
		WriteOption: cimg.WriteOption{
			Format:  cfg.OutputFormat(),
			Quality: cimg.Quality(cfg.Quality),
		},
	}
	return r, nil
}

// Run is New followed by Runner.Run
func Run(ctx context.Context, cfg *config.Config, opts ...Option) (*Report, error) {
	r, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return r.Run(ctx)
}

// Run processes every candidate exactly once. The error is non-nil only when
// the output directory cannot be created or the input cannot be listed.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	rep := &Report{
		RunID:     uuid.NewString(),
		InputDir:  r.cfg.InputDir,
		OutputDir: r.cfg.OutputDir,
		Format:    r.cfg.Format,
		Started:   time.Now(),
	}

	if err := utils.EnsureDir(r.cfg.OutputDir); err != nil {
		return nil, &DirError{Op: "mkdir", Path: r.cfg.OutputDir, Err: err}
	}

	cands, err := List(r.cfg.InputDir)
	if err != nil {
		return nil, err
	}
	rep.Found = len(cands)

	plans, collisions := PlanOutputs(cands, r.cfg.OutputDir, r.cfg.OutputExt())
	rep.Collisions = collisions
	for _, c := range collisions {
		logger().Warnw("output collision, last file wins", "dest", c.Dest, "names", c.Names)
	}

	logger().Infow("run start", "run", rep.RunID, "found", rep.Found, "job", r.cfg.String())
	r.observer.Start(rep)

	if len(plans) > 0 {
		rep.Outcomes = make([]Outcome, len(plans))
		if r.cfg.Workers > 1 {
			r.runParallel(ctx, plans, rep.Outcomes)
		} else {
			for i, p := range plans {
				rep.Outcomes[i] = r.process(ctx, i+1, p)
				r.observer.Processed(rep.Outcomes[i], len(plans))
			}
		}
	}

	rep.Elapsed = time.Since(rep.Started)
	logger().Infow("run done", "run", rep.RunID, "ok", rep.Succeeded(), "failed", rep.Failed(),
		"bytes", rep.BytesWritten(), "elapsed", rep.Elapsed)
	r.observer.Done(rep)
	return rep, nil
}

// runParallel spreads files over cfg.Workers goroutines; outcomes still land
// at their listing index.
func (r *Runner) runParallel(ctx context.Context, plans []Plan, outcomes []Outcome) {
	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(r.cfg.Workers)
	for i := range plans {
		i := i
		g.Go(func() error {
			o := r.process(ctx, i+1, plans[i])
			mu.Lock()
			outcomes[i] = o
			r.observer.Processed(o, len(plans))
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
}
