// Package scancode wraps the QR encoder. It is used twice per project:
// a module matrix for the terminal preview card and a larger PNG embedded
// in the document header.
package scancode

import (
	"image/color"

	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"
)

// Options controls how a code image is rendered
type Options struct {
	// Size is the output image size in pixels (square)
	Size int
	// Border renders the standard quiet zone around the modules
	Border bool
	// Foreground and Background default to black on white when nil
	Foreground color.Color
	Background color.Color
}

// PNG encodes payload as a QR image and returns the PNG bytes
func PNG(payload string, opts Options) ([]byte, error) {
	q, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, errors.Wrap(err, "encoding payload")
	}

	q.DisableBorder = !opts.Border
	if opts.Foreground != nil {
		q.ForegroundColor = opts.Foreground
	}
	if opts.Background != nil {
		q.BackgroundColor = opts.Background
	}

	size := opts.Size
	if size <= 0 {
		size = 256
	}

	png, err := q.PNG(size)
	if err != nil {
		return nil, errors.Wrap(err, "rendering png")
	}
	return png, nil
}

// Matrix returns the module matrix for payload, without the quiet zone.
// true means a dark module. Used for the half-block terminal rendering.
func Matrix(payload string) ([][]bool, error) {
	q, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, errors.Wrap(err, "encoding payload")
	}
	q.DisableBorder = true
	return q.Bitmap(), nil
}
