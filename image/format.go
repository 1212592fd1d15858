package image

import (
	"strings"
)

// Format is an encodable image format
type Format byte

const (
	FmtNone Format = iota
	FmtGIF
	FmtJPEG
	FmtPNG
	FmtBMP
)

func (z Format) String() string {
	switch z {
	case FmtGIF:
		return "gif"
	case FmtJPEG:
		return "jpeg"
	case FmtPNG:
		return "png"
	case FmtBMP:
		return "bmp"
	}
	return "unknown"
}

// Ext returns the canonical file extension, with the leading dot
func (z Format) Ext() string {
	switch z {
	case FmtGIF:
		return ".gif"
	case FmtJPEG:
		return ".jpg"
	case FmtPNG:
		return ".png"
	case FmtBMP:
		return ".bmp"
	}
	return ""
}

// Mime ...
func (z Format) Mime() string {
	switch z {
	case FmtGIF:
		return "image/gif"
	case FmtJPEG:
		return "image/jpeg"
	case FmtPNG:
		return "image/png"
	case FmtBMP:
		return "image/bmp"
	}
	return ""
}

// Lossy reports whether the encoder honours a quality setting
func (z Format) Lossy() bool {
	return z == FmtJPEG
}

// MarshalText implements the encoding.TextMarshaler interface.
func (z Format) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Format) UnmarshalText(data []byte) error {
	f := ParseFormat(string(data))
	if f == FmtNone {
		return ErrUnsupportedFormat
	}
	*z = f
	return nil
}

// ParseFormat accepts a format name or a file name/extension, case-insensitive
func ParseFormat(s string) Format {
	if pos := strings.LastIndex(s, "."); pos != -1 && pos < len(s) {
		s = s[pos+1:]
	}
	switch strings.ToLower(s) {
	case "gif":
		return FmtGIF
	case "jpeg", "jpg":
		return FmtJPEG
	case "png":
		return FmtPNG
	case "bmp":
		return FmtBMP
	}
	return FmtNone
}
