// Package textures implements the tracer's (u,v,point) -> RGB lookup
// contract: a constant color, a 3-D spatial checker, and a decoded bitmap.
package textures

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	pmath "path-tracer/math"
)

// Texture maps a surface coordinate to a linear-space RGB color.
type Texture interface {
	Value(u, v float32, point pmath.Vec3) pmath.Vec3
}

// Solid is a constant-color texture.
type Solid struct {
	Color pmath.Vec3
}

func NewSolid(color pmath.Vec3) *Solid {
	return &Solid{Color: color}
}

func (s *Solid) Value(u, v float32, point pmath.Vec3) pmath.Vec3 {
	return s.Color
}

// SpatialChecker is a 3-D checker pattern keyed on world-space position,
// alternating between two child textures.
type SpatialChecker struct {
	InvScale  float32
	Even, Odd Texture
}

func NewSpatialChecker(scale float32, even, odd Texture) *SpatialChecker {
	return &SpatialChecker{InvScale: 1.0 / scale, Even: even, Odd: odd}
}

func (c *SpatialChecker) Value(u, v float32, point pmath.Vec3) pmath.Vec3 {
	x := floorInt(point.X * c.InvScale)
	y := floorInt(point.Y * c.InvScale)
	z := floorInt(point.Z * c.InvScale)

	if (x+y+z)%2 == 0 {
		return c.Even.Value(u, v, point)
	}
	return c.Odd.Value(u, v, point)
}

func floorInt(v float32) int {
	i := int(v)
	if v < 0 && float32(i) != v {
		i--
	}
	return i
}

// Image is a bitmap texture sampled with nearest-neighbor lookup.
type Image struct {
	Width, Height int
	// Pixels holds linear-space RGB triples in row-major, top-to-bottom order.
	Pixels []pmath.Vec3
}

// LoadImage decodes an image file from disk into a linear-space RGB Image
// texture. PNG and JPEG are always registered; BMP and TIFF decoders are
// blank-imported above to widen format support.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]pmath.Vec3, w*h)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			idx := (y-bounds.Min.Y)*w + (x - bounds.Min.X)
			pixels[idx] = pmath.NewVec3(
				float32(r)/65535.0,
				float32(g)/65535.0,
				float32(b)/65535.0,
			)
		}
	}

	return &Image{Width: w, Height: h, Pixels: pixels}, nil
}

// Value clamps u to [0, 0.999] and flips v so image row 0 maps to the top
// of the texture, then samples the nearest texel. Out-of-bounds UVs clamp
// rather than wrap.
func (img *Image) Value(u, v float32, point pmath.Vec3) pmath.Vec3 {
	if img.Width <= 0 || img.Height <= 0 {
		return pmath.NewVec3(0, 1, 1) // debug cyan: signals a missing bitmap
	}

	u = pmath.NewInterval(0, 0.999).Clamp(u)
	v = 1 - pmath.NewInterval(0.001, 1).Clamp(v)

	i := int(u * float32(img.Width))
	j := int(v * float32(img.Height))
	if i >= img.Width {
		i = img.Width - 1
	}
	if j >= img.Height {
		j = img.Height - 1
	}

	return img.Pixels[j*img.Width+i]
}
