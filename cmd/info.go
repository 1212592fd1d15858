package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-imsto/imbatch/hash"
	cimg "github.com/go-imsto/imbatch/image"
	zlog "github.com/go-imsto/imbatch/log"
)

var cmdInfo = &Command{
	UsageLine: "info [-json] file ...",
	Short:     "show the dimensions and type of images",
	Long: `
Read the header of each file and print width, height, size, mime type and
the content hash, comparable with the hash of a resize run.
`,
}

var infoJSON = cmdInfo.Flag.Bool("json", false, "print attributes as json")

func init() {
	cmdInfo.Run = runInfo
}

type fileInfo struct {
	*cimg.Attr
	Hash string `json:"hash"`
}

func readInfo(name string) (*fileInfo, error) {
	a, err := cimg.ReadAttr(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sum, err := hash.SumFile(f)
	if err != nil {
		return nil, err
	}
	return &fileInfo{Attr: a, Hash: sum}, nil
}

func writeInfo(w io.Writer, names []string, asJSON bool) {
	enc := json.NewEncoder(w)
	for _, name := range names {
		fi, err := readInfo(name)
		if err != nil {
			errorf("%s: %s", name, err)
			setExitStatus(1)
			continue
		}
		if sniffed, err := cimg.GuessFileType(name); err == nil && sniffed != cimg.ParseFormat(name) {
			zlog.Warnw("extension and content differ", "name", name, "content", sniffed.String())
		}
		if asJSON {
			_ = enc.Encode(fi)
			continue
		}
		fmt.Fprintf(w, "%s: %s %s\n", name, fi.Attr, fi.Hash)
	}
}

func runInfo(args []string) bool {
	if len(args) == 0 {
		return false
	}
	writeInfo(os.Stdout, args, *infoJSON)
	return true
}
