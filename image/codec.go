package image

import (
	"fmt"
	"image"
	"io"
	"strings"
)

// WriteOption ...
type WriteOption struct {
	Format  Format
	Quality Quality
}

// Codec is the decode, resize and encode capability the batch driver relies on
type Codec interface {
	Decode(r io.Reader) (image.Image, Format, error)
	// Fit shrinks m to fit inside width x height keeping its ratio, never upscaling
	Fit(m image.Image, width, height uint) image.Image
	// Resize scales m to exactly width x height
	Resize(m image.Image, width, height uint) image.Image
	Encode(w io.Writer, m image.Image, opt WriteOption) (int, error)
}

const (
	EngineNfnt    = "nfnt"
	EngineImaging = "imaging"
)

const (
	FilterNearest  = "nearest"
	FilterBilinear = "bilinear"
	FilterBicubic  = "bicubic"
	FilterMitchell = "mitchell"
	FilterLanczos  = "lanczos"
)

// Engines lists the accepted engine names
func Engines() []string {
	return []string{EngineNfnt, EngineImaging}
}

// Filters lists the accepted resample filter names
func Filters() []string {
	return []string{FilterNearest, FilterBilinear, FilterBicubic, FilterMitchell, FilterLanczos}
}

// NewCodec returns the codec for engine, resampling with filter
func NewCodec(engine, filter string) (Codec, error) {
	if filter == "" {
		filter = FilterBicubic
	}
	switch strings.ToLower(engine) {
	case "", EngineNfnt:
		return newNfntCodec(strings.ToLower(filter))
	case EngineImaging:
		return newImagingCodec(strings.ToLower(filter))
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
}

// stdCodec holds the decode and encode halves shared by all engines
type stdCodec struct{}

func (stdCodec) Decode(r io.Reader) (image.Image, Format, error) {
	return Decode(r)
}

func (stdCodec) Encode(w io.Writer, m image.Image, opt WriteOption) (int, error) {
	return SaveTo(w, m, opt)
}
