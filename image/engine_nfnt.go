package image

import (
	"fmt"
	"image"

	"github.com/nfnt/resize"
)

var nfntFilters = map[string]resize.InterpolationFunction{
	FilterNearest:  resize.NearestNeighbor,
	FilterBilinear: resize.Bilinear,
	FilterBicubic:  resize.Bicubic,
	FilterMitchell: resize.MitchellNetravali,
	FilterLanczos:  resize.Lanczos3,
}

type nfntCodec struct {
	stdCodec
	interp resize.InterpolationFunction
}

func newNfntCodec(filter string) (*nfntCodec, error) {
	interp, ok := nfntFilters[filter]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, filter)
	}
	return &nfntCodec{interp: interp}, nil
}

func (c *nfntCodec) Resize(m image.Image, width, height uint) image.Image {
	return resize.Resize(width, height, m, c.interp)
}

func (c *nfntCodec) Fit(m image.Image, width, height uint) image.Image {
	return fitWith(m, width, height, c.Resize)
}
