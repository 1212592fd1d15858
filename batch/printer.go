package batch

import (
	"fmt"
	"io"
	"sync"
)

// Observer receives live progress of a run
type Observer interface {
	Start(r *Report)
	Processed(o Outcome, total int)
	Done(r *Report)
}

type nopObserver struct{}

func (nopObserver) Start(*Report)          {}
func (nopObserver) Processed(Outcome, int) {}
func (nopObserver) Done(*Report)           {}

type multiObserver []Observer

// MultiObserver fans every event out to obs, in order
func MultiObserver(obs ...Observer) Observer {
	return multiObserver(obs)
}

func (m multiObserver) Start(r *Report) {
	for _, o := range m {
		o.Start(r)
	}
}

func (m multiObserver) Processed(oc Outcome, total int) {
	for _, o := range m {
		o.Processed(oc, total)
	}
}

func (m multiObserver) Done(r *Report) {
	for _, o := range m {
		o.Done(r)
	}
}

// Printer renders progress as human readable console lines
type Printer struct {
	mu     sync.Mutex
	w      io.Writer
	format string
}

// NewPrinter ...
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Start(r *Report) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.format = r.Format
	if r.Found == 0 {
		fmt.Fprintln(p.w, "❌ No images found in the input folder.")
		return
	}
	fmt.Fprintf(p.w, "📂 Found %d images. Processing...\n\n", r.Found)
}

func (p *Printer) Processed(o Outcome, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if o.OK() {
		fmt.Fprintf(p.w, "✅ [%d/%d] %s resized & saved as %s\n", o.Index, total, o.Name, p.format)
		return
	}
	fmt.Fprintf(p.w, "⚠️ Skipping %s due to error: %s\n", o.Name, o.Message())
}

func (p *Printer) Done(r *Report) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if r.Found == 0 {
		return
	}
	fmt.Fprintf(p.w, "\n🎯 Task Completed! All images are saved in: %s\n", r.OutputDir)
}

// Render prints a finished report as if it had been observed live
func (p *Printer) Render(r *Report) {
	p.Start(r)
	for _, o := range r.Outcomes {
		p.Processed(o, r.Found)
	}
	p.Done(r)
}
