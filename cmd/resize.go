package cmd

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-imsto/imbatch/batch"
	"github.com/go-imsto/imbatch/config"
	cimg "github.com/go-imsto/imbatch/image"
)

var cmdResize = &Command{
	UsageLine: "resize [-w 800] [-h 600] [-keep] [-format JPEG] [-q 85] [input [output]]",
	Short:     "resize and convert every image of a directory",
	Long: `
Resize every png, jpg, jpeg, bmp and gif file found directly inside input
and write it to output as <name>.<format>. Without flags the loaded
configuration is used (IMBATCH_* env or imbatch.ini).
Exit status is 1 when the run could not start and 2 when some files failed.
`,
}

var dflt = config.Default()

var (
	rzWidth   = cmdResize.Flag.Uint("w", dflt.Width, "target width")
	rzHeight  = cmdResize.Flag.Uint("h", dflt.Height, "target height")
	rzSize    = cmdResize.Flag.String("size", "", "target box as WxH, overrides -w and -h")
	rzKeep    = cmdResize.Flag.Bool("keep", dflt.KeepRatio, "keep aspect ratio, only shrink")
	rzFormat  = cmdResize.Flag.String("format", dflt.Format, "output format: JPEG, PNG, GIF, BMP")
	rzQuality = cmdResize.Flag.Int("q", dflt.Quality, "encode quality 1-100, lossy formats only")
	rzEngine  = cmdResize.Flag.String("engine", dflt.Engine, "resize engine: nfnt, imaging")
	rzFilter  = cmdResize.Flag.String("filter", dflt.Filter, "resample filter: nearest, bilinear, bicubic, mitchell, lanczos")
	rzWorkers = cmdResize.Flag.Int("workers", dflt.Workers, "files processed at once")
)

func init() {
	cmdResize.Run = runResize
}

// resizeFlagDefaults shows the loaded configuration as flag defaults, so
// help output matches what an unflagged run would use.
func resizeFlagDefaults(fs *flag.FlagSet, c *config.Config) {
	values := map[string]string{
		"w":       strconv.FormatUint(uint64(c.Width), 10),
		"h":       strconv.FormatUint(uint64(c.Height), 10),
		"keep":    strconv.FormatBool(c.KeepRatio),
		"format":  c.Format,
		"q":       strconv.Itoa(c.Quality),
		"engine":  c.Engine,
		"filter":  c.Filter,
		"workers": strconv.Itoa(c.Workers),
	}
	for name, v := range values {
		if f := fs.Lookup(name); f != nil {
			_ = f.Value.Set(v)
			f.DefValue = v
		}
	}
}

// applyFlags copies explicitly set flags over the loaded configuration
func applyFlags(c *config.Config, fs *flag.FlagSet) error {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "w":
			c.Width = *rzWidth
		case "h":
			c.Height = *rzHeight
		case "keep":
			c.KeepRatio = *rzKeep
		case "format":
			c.Format = *rzFormat
		case "q":
			c.Quality = *rzQuality
		case "engine":
			c.Engine = *rzEngine
		case "filter":
			c.Filter = *rzFilter
		case "workers":
			c.Workers = *rzWorkers
		}
	})
	if *rzSize != "" {
		w, h, err := cimg.ParseSize(*rzSize)
		if err != nil {
			return err
		}
		c.Width, c.Height = w, h
	}
	return nil
}

func applyDirs(c *config.Config, args []string) {
	if len(args) > 0 {
		c.InputDir = args[0]
	}
	if len(args) > 1 {
		c.OutputDir = args[1]
	}
}

func runResize(args []string) bool {
	if err := applyFlags(cfg, &cmdResize.Flag); err != nil {
		errorf("resize: %s", err)
		setExitStatus(1)
		return true
	}
	applyDirs(cfg, args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resize(ctx, os.Stdout, cfg)
	return true
}

// resize runs the job and sets the exit status: 1 when the run could not
// start, 2 when some files failed.
func resize(ctx context.Context, w io.Writer, c *config.Config) {
	printer := batch.NewPrinter(w)
	var observers []batch.Observer
	// concurrent progress lines would interleave, the report is printed in order afterwards
	if c.Workers <= 1 {
		observers = append(observers, printer)
	}
	if sentryEnabled {
		observers = append(observers, &failureReporter{})
	}

	rep, err := batch.Run(ctx, c, batch.WithObserver(observers...))
	if err != nil {
		errorf("resize: %s", err)
		setExitStatus(1)
		return
	}
	if c.Workers > 1 {
		printer.Render(rep)
	}
	if rep.Failed() > 0 {
		setExitStatus(2)
	}
}
