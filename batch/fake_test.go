package batch

import (
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	cimg "github.com/go-imsto/imbatch/image"
)

// fakeCodec reads "fake:WxH" files and writes "WxH fmt q" text, so driver
// tests do not depend on real resampling.
type fakeCodec struct{}

var errCorrupt = errors.New("corrupt image data")

func (fakeCodec) Decode(r io.Reader) (image.Image, cimg.Format, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, cimg.FmtNone, err
	}
	s := strings.TrimSpace(string(data))
	if s == "panic" {
		panic("decoder blew up")
	}
	var w, h int
	if _, err := fmt.Sscanf(s, "fake:%dx%d", &w, &h); err != nil {
		return nil, cimg.FmtNone, errCorrupt
	}
	return image.NewGray(image.Rect(0, 0, w, h)), cimg.FmtPNG, nil
}

func (fakeCodec) Fit(m image.Image, width, height uint) image.Image {
	b := m.Bounds()
	w, h := cimg.FitSize(uint(b.Dx()), uint(b.Dy()), width, height)
	return image.NewGray(image.Rect(0, 0, int(w), int(h)))
}

func (fakeCodec) Resize(m image.Image, width, height uint) image.Image {
	return image.NewGray(image.Rect(0, 0, int(width), int(height)))
}

func (fakeCodec) Encode(w io.Writer, m image.Image, opt cimg.WriteOption) (int, error) {
	b := m.Bounds()
	return fmt.Fprintf(w, "%dx%d %s q%d", b.Dx(), b.Dy(), opt.Format, opt.Quality)
}
