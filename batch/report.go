package batch

import (
	"time"

	cimg "github.com/go-imsto/imbatch/image"
)

// Kind of a per-file outcome
type Kind uint8

const (
	Success Kind = iota + 1
	Failure
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Failure:
		return "failure"
	}
	return "unknown"
}

// Outcome is the result of processing one candidate
type Outcome struct {
	Index   int // 1-based, listing order
	Name    string
	Source  string
	Dest    string
	Kind    Kind
	Err     error
	Orig    *cimg.Attr
	Out     *cimg.Attr
	Hash    string
	Elapsed time.Duration
}

// OK ...
func (o Outcome) OK() bool {
	return o.Kind == Success
}

// Message is the error text for failures and the output path otherwise
func (o Outcome) Message() string {
	if o.Err != nil {
		return o.Err.Error()
	}
	return o.Dest
}

// Report is everything a run produced, outcomes in listing order
type Report struct {
	RunID      string
	InputDir   string
	OutputDir  string
	Format     string
	Found      int
	Outcomes   []Outcome
	Collisions []Collision
	Started    time.Time
	Elapsed    time.Duration
}

// Succeeded counts successful outcomes
func (r *Report) Succeeded() (n int) {
	for _, o := range r.Outcomes {
		if o.OK() {
			n++
		}
	}
	return
}

// Failed counts failed outcomes
func (r *Report) Failed() int {
	return len(r.Outcomes) - r.Succeeded()
}

// Failures returns the failed outcomes
func (r *Report) Failures() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if !o.OK() {
			out = append(out, o)
		}
	}
	return out
}

// BytesWritten sums the encoded size of all outputs
func (r *Report) BytesWritten() (n int64) {
	for _, o := range r.Outcomes {
		if o.Out != nil {
			n += int64(o.Out.Size)
		}
	}
	return
}
