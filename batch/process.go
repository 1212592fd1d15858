package batch

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-imsto/imbatch/hash"
	cimg "github.com/go-imsto/imbatch/image"
)

// process runs decode, resize and encode for one file and never panics
func (r *Runner) process(ctx context.Context, index int, p Plan) (o Outcome) {
	start := time.Now()
	o = Outcome{Index: index, Name: p.Name, Source: p.Path, Dest: p.Dest, Kind: Failure}
	defer func() {
		if v := recover(); v != nil {
			o.Kind = Failure
			o.Err = fmt.Errorf("panic: %v", v)
		}
		o.Elapsed = time.Since(start)
		if o.OK() {
			logger().Debugw("resized", "name", o.Name, "dest", o.Dest, "orig", o.Orig, "out", o.Out, "elapsed", o.Elapsed)
		} else {
			logger().Warnw("skipped", "name", o.Name, "err", o.Err)
		}
	}()

	if err := ctx.Err(); err != nil {
		o.Err = err
		return
	}

	m, orig, err := r.decode(p.Path)
	if err != nil {
		o.Err = err
		return
	}
	o.Orig = orig

	m, err = cimg.ThumbnailImage(r.codec, m, r.topt)
	if err != nil {
		o.Err = err
		return
	}

	out, sum, err := r.save(m, p.Dest)
	if err != nil {
		o.Err = err
		return
	}
	o.Out, o.Hash, o.Kind = out, sum, Success
	return
}

// decode owns the source handle only for the duration of the call
func (r *Runner) decode(name string) (image.Image, *cimg.Attr, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	m, ft, err := r.codec.Decode(f)
	if err != nil {
		return nil, nil, err
	}
	a := cimg.AttrOf(m, ft)
	if fi, err := f.Stat(); err == nil {
		a.Size = cimg.Size(fi.Size())
	}
	a.Name = filepath.Base(name)
	return m, a, nil
}

// save encodes into a temp file next to dest and renames it into place, so a
// failed encode leaves neither a partial file nor a clobbered previous output.
func (r *Runner) save(m image.Image, dest string) (*cimg.Attr, string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".imbatch-*"+filepath.Ext(dest))
	if err != nil {
		return nil, "", err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	h := hash.New()
	n, err := r.codec.Encode(io.MultiWriter(tmp, h), m, r.topt.WriteOption)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, "", err
	}
	if err = os.Chmod(tmpName, os.FileMode(0644)); err != nil {
		return nil, "", err
	}
	if err = os.Rename(tmpName, dest); err != nil {
		return nil, "", err
	}

	a := cimg.AttrOf(m, r.topt.Format)
	a.Size = cimg.Size(n)
	a.Ext = filepath.Ext(dest)
	a.Name = filepath.Base(dest)
	if r.topt.Format.Lossy() {
		a.Quality = r.topt.Quality
	}
	return a, h.String(), nil
}
