package image

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

var imagingFilters = map[string]imaging.ResampleFilter{
	FilterNearest:  imaging.NearestNeighbor,
	FilterBilinear: imaging.Linear,
	FilterBicubic:  imaging.CatmullRom,
	FilterMitchell: imaging.MitchellNetravali,
	FilterLanczos:  imaging.Lanczos,
}

type imagingCodec struct {
	stdCodec
	filter imaging.ResampleFilter
}

func newImagingCodec(filter string) (*imagingCodec, error) {
	f, ok := imagingFilters[filter]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, filter)
	}
	return &imagingCodec{filter: f}, nil
}

func (c *imagingCodec) Resize(m image.Image, width, height uint) image.Image {
	return imaging.Resize(m, int(width), int(height), c.filter)
}

func (c *imagingCodec) Fit(m image.Image, width, height uint) image.Image {
	return fitWith(m, width, height, c.Resize)
}
