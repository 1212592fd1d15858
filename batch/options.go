package batch

import (
	cimg "github.com/go-imsto/imbatch/image"
)

// Option configures a Runner
type Option func(*Runner)

// WithCodec replaces the codec built from the engine and filter settings
func WithCodec(c cimg.Codec) Option {
	return func(r *Runner) {
		r.codec = c
	}
}

// WithObserver ...
func WithObserver(obs ...Observer) Option {
	return func(r *Runner) {
		switch len(obs) {
		case 0:
		case 1:
			r.observer = obs[0]
		default:
			r.observer = MultiObserver(obs...)
		}
	}
}
