package image

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const ptImageSize = `^\d{1,5}(x\d{1,5})?$`

// MaxDimension is the largest accepted width or height
const MaxDimension = 65535

// ErrInvalidSize 表示无效的尺寸格式
var ErrInvalidSize = errors.New("invalid image size format")

var sre = regexp.MustCompile(ptImageSize)

// ParseSize reads "WxH", or "N" for a square box
// 格式示例: "800x600", "120"
func ParseSize(s string) (width, height uint, err error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !sre.MatchString(s) {
		err = fmt.Errorf("%w: %q", ErrInvalidSize, s)
		return
	}

	if i := strings.Index(s, "x"); i > 0 {
		dw, _ := strconv.Atoi(s[0:i])
		dh, _ := strconv.Atoi(s[i+1:])
		width, height = uint(dw), uint(dh)
	} else {
		d, _ := strconv.Atoi(s)
		width, height = uint(d), uint(d)
	}

	if !isValidDimension(width) || !isValidDimension(height) {
		err = fmt.Errorf("%w: dimensions must be between 1 and %d", ErrInvalidSize, MaxDimension)
	}
	return
}

func isValidDimension(d uint) bool {
	return d >= 1 && d <= MaxDimension
}
