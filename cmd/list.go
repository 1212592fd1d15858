package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-imsto/imbatch/batch"
	"github.com/go-imsto/imbatch/config"
	cimg "github.com/go-imsto/imbatch/image"
	"github.com/go-imsto/imbatch/utils"
)

var cmdList = &Command{
	UsageLine: "list [-format JPEG] [input]",
	Short:     "show the files a resize would process, without writing",
	Long: `
List candidate images of input in processing order, the output each one
would be written to, and any output name collisions.
`,
}

var (
	lsFormat = cmdList.Flag.String("format", "", "output format, defaults to the configured one")
	lsAttr   = cmdList.Flag.Bool("attr", false, "read and show image dimensions")
)

func init() {
	cmdList.Run = runList
}

func runList(args []string) bool {
	if *lsFormat != "" {
		cfg.Format = *lsFormat
	}
	applyDirs(cfg, args)
	if err := writeList(os.Stdout, cfg, *lsAttr); err != nil {
		errorf("list: %s", err)
		setExitStatus(1)
	}
	return true
}

func writeList(w io.Writer, c *config.Config, withAttr bool) error {
	if utils.Exists(c.InputDir) && !utils.IsDir(c.InputDir) {
		return fmt.Errorf("%s is not a directory", c.InputDir)
	}
	cands, err := batch.List(c.InputDir)
	if err != nil {
		return err
	}
	if len(cands) == 0 {
		fmt.Fprintln(w, "❌ No images found in the input folder.")
		return nil
	}

	plans, collisions := batch.PlanOutputs(cands, c.OutputDir, c.OutputExt())
	for i, p := range plans {
		line := fmt.Sprintf("%3d  %s -> %s", i+1, p.Name, filepath.Base(p.Dest))
		if withAttr {
			if a, err := cimg.ReadAttr(p.Path); err == nil {
				line += fmt.Sprintf("  (%dx%d %s)", a.Width, a.Height, a.Mime)
			} else {
				line += fmt.Sprintf("  (%s)", err)
			}
		}
		fmt.Fprintln(w, line)
	}
	for _, col := range collisions {
		fmt.Fprintf(w, "collision: %v -> %s\n", col.Names, filepath.Base(col.Dest))
	}
	return nil
}
