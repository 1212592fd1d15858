package image

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
)

type Dimension uint32
type Size uint64
type Quality uint8

// Attr ...
type Attr struct {
	Width   Dimension `json:"width"`
	Height  Dimension `json:"height"`
	Quality Quality   `json:"quality,omitempty"`
	Size    Size      `json:"size"`
	Ext     string    `json:"ext,omitempty"`
	Mime    string    `json:"mime,omitempty"`
	Name    string    `json:"name,omitempty"`
}

func (a Attr) String() string {
	s := fmt.Sprintf("%dx%d %s %d bytes", a.Width, a.Height, a.Mime, a.Size)
	if a.Quality > 0 {
		s += fmt.Sprintf(" q%d", a.Quality)
	}
	return s
}

// export NewAttr
func NewAttr(w, h uint, q uint8) *Attr {
	return &Attr{
		Width:   Dimension(w),
		Height:  Dimension(h),
		Quality: Quality(q),
	}
}

// AttrOf fills dimensions from a decoded image and type info from its format
func AttrOf(m image.Image, f Format) *Attr {
	b := m.Bounds()
	a := NewAttr(uint(b.Dx()), uint(b.Dy()), 0)
	a.Ext = f.Ext()
	a.Mime = f.Mime()
	return a
}

// ReadAttr reads the header of an image file without decoding its pixels
func ReadAttr(filename string) (*Attr, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	cfg, name, err := image.DecodeConfig(asReader(f))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, err)
	}
	ft := ParseFormat(name)
	a := NewAttr(uint(cfg.Width), uint(cfg.Height), 0)
	a.Size = Size(fi.Size())
	a.Ext = ft.Ext()
	a.Mime = ft.Mime()
	a.Name = filepath.Base(filename)
	return a, nil
}
