package image

import "io"

// CountWriter passes writes through to W and counts the bytes written
type CountWriter struct {
	W io.Writer
	n int
}

// Write implements for io.Writer
func (cw *CountWriter) Write(p []byte) (n int, err error) {
	if cw.W == nil {
		n = len(p)
	} else {
		n, err = cw.W.Write(p)
	}
	cw.n += n
	return
}

// Len return count value
func (cw *CountWriter) Len() int {
	return cw.n
}
