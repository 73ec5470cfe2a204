package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// EncodePNG writes img to w as a standard 8-bit PNG. PNG encoding is an
// external concern (spec.md §6); the core render loop only ever produces
// the raw Image buffer.
func EncodePNG(w io.Writer, img *Image) error {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			idx := (y*img.Width + x) * 3
			rgba.SetRGBA(x, y, color.RGBA{
				R: img.Pixels[idx+0],
				G: img.Pixels[idx+1],
				B: img.Pixels[idx+2],
				A: 255,
			})
		}
	}

	if err := png.Encode(w, rgba); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
