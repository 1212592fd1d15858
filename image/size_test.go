package image

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantWidth  uint
		wantHeight uint
		wantErr    bool
	}{
		{name: "box", input: "800x600", wantWidth: 800, wantHeight: 600},
		{name: "square", input: "120", wantWidth: 120, wantHeight: 120},
		{name: "upper x", input: " 640X480 ", wantWidth: 640, wantHeight: 480},
		{name: "zero", input: "0x600", wantErr: true},
		{name: "too big", input: "99999x10", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "missing height", input: "800x", wantErr: true},
		{name: "words", input: "wide", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := ParseSize(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSize)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantWidth, w)
			assert.Equal(t, tt.wantHeight, h)
		})
	}
}
