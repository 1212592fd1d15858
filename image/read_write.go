package image

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Decode reads an image in any of the supported formats
func Decode(r io.Reader) (image.Image, Format, error) {
	m, name, err := image.Decode(asReader(r))
	if err != nil {
		if err == image.ErrFormat {
			return nil, FmtNone, ErrUnsupportedFormat
		}
		return nil, FmtNone, err
	}
	return m, ParseFormat(name), nil
}

// SaveTo encodes m as opt.Format into w and returns the bytes written
func SaveTo(w io.Writer, m image.Image, opt WriteOption) (int, error) {
	cw := &CountWriter{W: w}
	var err error
	switch opt.Format {
	case FmtJPEG:
		q := int(opt.Quality)
		if q == 0 {
			q = jpeg.DefaultQuality
		}
		err = jpeg.Encode(cw, flatten(m, color.White), &jpeg.Options{Quality: q})
	case FmtPNG:
		err = png.Encode(cw, m)
	case FmtGIF:
		err = gif.Encode(cw, m, nil)
	case FmtBMP:
		err = bmp.Encode(cw, m)
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, opt.Format)
	}
	return cw.Len(), err
}

type opaquer interface {
	Opaque() bool
}

// flatten composes m over a solid background, leaving opaque images untouched
func flatten(m image.Image, bg color.Color) image.Image {
	if o, ok := m.(opaquer); ok && o.Opaque() {
		return m
	}
	b := m.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(dst, b, m, b.Min, draw.Over)
	return dst
}
