// Package render drives the data-parallel pixel loop: it partitions the
// image across worker goroutines, gives each worker its own RNG source,
// accumulates samples through camera.Radiance, tone-maps the result, and
// reports progress on a side channel (spec.md §5).
package render

import (
	"context"
	gomath "math"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"path-tracer/camera"
	"path-tracer/hit"
	pmath "path-tracer/math"
	"path-tracer/rng"
)

// Image is an H x W x 3 buffer of 8-bit channels in row-major order —
// the tracer's external output contract (spec.md §6). Encoding to
// PNG/PPM/etc. happens outside this package.
type Image struct {
	Width, Height int
	Pixels        []byte // len == Width*Height*3
}

func newImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pixels: make([]byte, width*height*3)}
}

func (img *Image) set(x, y int, c pmath.Vec3) {
	idx := (y*img.Width + x) * 3
	img.Pixels[idx+0] = encodeChannel(c.X)
	img.Pixels[idx+1] = encodeChannel(c.Y)
	img.Pixels[idx+2] = encodeChannel(c.Z)
}

// encodeChannel applies the gamma-2 approximation then clamps and
// quantizes to 8 bits (spec.md §4.9).
func encodeChannel(c float32) byte {
	gammaCorrected := float32(gomath.Sqrt(float64(maxFloat32(c, 0))))
	clamped := pmath.NewInterval(0, 0.999).Clamp(gammaCorrected)
	return byte(256 * clamped)
}

func maxFloat32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Driver owns the render configuration and the RNG seed shared by every
// worker (each worker derives its own independent stream from it).
type Driver struct {
	Camera  *camera.Camera
	World   hit.Hittable
	Seed    uint64
	Workers int
	Logger  zerolog.Logger
}

// NewDriver constructs a Driver. workers <= 0 is treated as a single
// worker; callers typically pass runtime.GOMAXPROCS(0).
func NewDriver(cam *camera.Camera, world hit.Hittable, seed uint64, workers int, logger zerolog.Logger) *Driver {
	if workers <= 0 {
		workers = 1
	}
	return &Driver{Camera: cam, World: world, Seed: seed, Workers: workers, Logger: logger}
}

// Render partitions the image into per-row tasks across d.Workers
// goroutines via errgroup, each pixel written by exactly one task so the
// image buffer needs no locking. A reporter goroutine polls a shared
// atomic counter at ~20 Hz and logs progress; it never blocks rendering.
func (d *Driver) Render(ctx context.Context) (*Image, error) {
	cfg := d.Camera.Config()
	img := newImage(cfg.ImageWidth, cfg.ImageHeight)

	var rowsDone int64
	totalRows := int64(cfg.ImageHeight)

	group, gctx := errgroup.WithContext(ctx)

	rows := make(chan int)
	group.Go(func() error {
		defer close(rows)
		for y := 0; y < cfg.ImageHeight; y++ {
			select {
			case rows <- y:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < d.Workers; w++ {
		workerIndex := w
		group.Go(func() error {
			src := rng.New(d.Seed, workerIndex)
			for y := range rows {
				d.renderRow(img, y, src)
				atomic.AddInt64(&rowsDone, 1)
			}
			return nil
		})
	}

	stopReporter := make(chan struct{})
	reporterDone := make(chan struct{})
	go func() {
		defer close(reporterDone)
		ticker := time.NewTicker(50 * time.Millisecond) // ~20 Hz
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				done := atomic.LoadInt64(&rowsDone)
				d.Logger.Info().
					Int64("rows_done", done).
					Int64("rows_total", totalRows).
					Float64("pct", 100*float64(done)/float64(totalRows)).
					Msg("render progress")
			case <-stopReporter:
				return
			}
		}
	}()

	err := group.Wait()
	close(stopReporter)
	<-reporterDone

	if err != nil {
		return nil, err
	}
	d.Logger.Info().Msg("render complete")
	return img, nil
}

func (d *Driver) renderRow(img *Image, y int, src *rng.Source) {
	cfg := d.Camera.Config()
	for x := 0; x < cfg.ImageWidth; x++ {
		var accum pmath.Vec3
		for s := 0; s < cfg.SamplesPerPixel; s++ {
			ray := d.Camera.GetRay(x, y, src)
			accum = accum.Add(camera.Radiance(ray, cfg.MaxDepth, d.World, cfg.Background, src))
		}
		img.set(x, y, accum.Div(float32(cfg.SamplesPerPixel)))
	}
}
