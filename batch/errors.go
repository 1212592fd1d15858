package batch

// DirError is a fatal directory failure: the output directory could not be
// created or the input directory could not be listed.
type DirError struct {
	Op   string
	Path string
	Err  error
}

func (e *DirError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *DirError) Unwrap() error {
	return e.Err
}
