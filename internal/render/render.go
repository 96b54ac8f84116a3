// Package render exports pixel grids as raster images.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/rybkr/mosaic/internal/board"
)

var ErrUnknownFormat = errors.New("unknown image format")

// Format is an output image encoding.
type Format int

const (
	PNG Format = iota
	BMP
	TIFF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	default:
		return PNG, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Gray levels used for each pixel state.
var (
	OffColor   = color.Gray{Y: 0x10}
	OnColor    = color.Gray{Y: 0xa0}
	MotifColor = color.Gray{Y: 0xff}
)

// Options configures Encode.
type Options struct {
	Format Format
	Scale  int // Output pixels per grid pixel; values below 1 mean 1
}

// Image converts g to a grayscale image. Pixels on in mask, when mask is
// non-nil, are drawn in MotifColor.
func Image(g, mask *board.Grid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Cols(), g.Rows()))
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			px := OffColor
			switch {
			case mask != nil && mask.Get(r, c) == board.On:
				px = MotifColor
			case g.Get(r, c) == board.On:
				px = OnColor
			}
			img.SetGray(c, r, px)
		}
	}
	return img
}

// Encode writes g, with mask highlighted, to w.
func Encode(w io.Writer, g, mask *board.Grid, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}
	if g.Rows() == 0 {
		return board.ErrEmptyGrid
	}

	var img image.Image = Image(g, mask)
	if opts.Scale > 1 {
		src := img.Bounds()
		dst := image.NewGray(image.Rect(0, 0, src.Dx()*opts.Scale, src.Dy()*opts.Scale))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, src, xdraw.Src, nil)
		img = dst
	}

	switch opts.Format {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, opts.Format)
	}
}
