package image

import (
	"bufio"
	"bytes"
	"io"
	"os"
)

const (
	sigGIF = "GIF8"
	sigJPG = "\xff\xd8\xff"
	sigPNG = "\211PNG\r\n\032\n"
	sigBMP = "BM"
)

const headSize = 8

// GuessType sniffs the format from the leading bytes of an image
func GuessType(head []byte) Format {
	switch {
	case bytes.HasPrefix(head, []byte(sigGIF)):
		return FmtGIF
	case bytes.HasPrefix(head, []byte(sigJPG)):
		return FmtJPEG
	case bytes.HasPrefix(head, []byte(sigPNG)):
		return FmtPNG
	case bytes.HasPrefix(head, []byte(sigBMP)):
		return FmtBMP
	}
	return FmtNone
}

// A reader is an io.Reader that can also peek ahead.
type reader interface {
	io.Reader
	Peek(int) ([]byte, error)
}

// asReader converts an io.Reader to a reader.
func asReader(r io.Reader) reader {
	if rr, ok := r.(reader); ok {
		return rr
	}
	return bufio.NewReader(r)
}

// GuessFileType sniffs the format of a file on disk
func GuessFileType(filename string) (Format, error) {
	file, err := os.Open(filename)
	if err != nil {
		return FmtNone, err
	}
	defer file.Close()

	head, err := readHead(file)
	if err != nil && err != io.EOF {
		return FmtNone, err
	}
	return GuessType(head), nil
}

func readHead(r io.Reader) ([]byte, error) {
	rr := asReader(r)
	return rr.Peek(headSize)
}
