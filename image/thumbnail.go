package image

import (
	"fmt"
	"image"
	"math"
)

// ThumbOption ...
type ThumbOption struct {
	Width, Height uint
	IsFit         bool
	WriteOption
}

func (topt ThumbOption) String() string {
	return fmt.Sprintf("%dx%d %s q%d fit:%v", topt.Width, topt.Height, topt.Format, topt.Quality, topt.IsFit)
}

// FitSize returns the largest size within maxW x maxH that keeps the ratio of
// ow x oh. Sizes already inside the box are returned unchanged.
func FitSize(ow, oh, maxW, maxH uint) (uint, uint) {
	if ow == 0 || oh == 0 || maxW == 0 || maxH == 0 {
		return ow, oh
	}
	if ow <= maxW && oh <= maxH {
		return ow, oh
	}

	rel := float64(ow) / float64(oh)
	x, y := float64(maxW), float64(maxH)
	if x/y >= rel {
		w := roundAspect(y*rel, func(n float64) float64 {
			return math.Abs(rel - n/y)
		})
		return w, maxH
	}
	h := roundAspect(x/rel, func(n float64) float64 {
		if n == 0 {
			return 0
		}
		return math.Abs(rel - x/n)
	})
	return maxW, h
}

// roundAspect picks floor or ceil of v, whichever drifts least from the ratio
func roundAspect(v float64, drift func(float64) float64) uint {
	lo, hi := math.Floor(v), math.Ceil(v)
	n := lo
	if drift(hi) < drift(lo) {
		n = hi
	}
	if n < 1 {
		n = 1
	}
	return uint(n)
}

// ThumbnailImage scales img with c: contain-fit when topt.IsFit, exact otherwise
func ThumbnailImage(c Codec, img image.Image, topt ThumbOption) (image.Image, error) {
	ob := img.Bounds()
	if ob.Empty() {
		return nil, ErrEmptyImage
	}
	if topt.Width == 0 || topt.Height == 0 {
		return nil, fmt.Errorf("invalid thumbnail size %dx%d", topt.Width, topt.Height)
	}
	if topt.IsFit {
		return c.Fit(img, topt.Width, topt.Height), nil
	}
	return c.Resize(img, topt.Width, topt.Height), nil
}

// fitWith applies the contain-fit size through an exact resize function
func fitWith(img image.Image, width, height uint, resizeFn func(image.Image, uint, uint) image.Image) image.Image {
	ob := img.Bounds()
	ow, oh := uint(ob.Dx()), uint(ob.Dy())
	nw, nh := FitSize(ow, oh, width, height)
	if nw == ow && nh == oh {
		return img
	}
	return resizeFn(img, nw, nh)
}
