package scenes

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"path-tracer/camera"
	"path-tracer/render"
)

func TestCoverBuildsNonEmptyBVH(t *testing.T) {
	cfg, world := Cover(8, 8, 0xC0FFEE)
	if world == nil {
		t.Fatal("expected a non-nil world")
	}
	if cfg.ImageWidth != 8 || cfg.ImageHeight != 8 {
		t.Fatalf("unexpected image dims: %dx%d", cfg.ImageWidth, cfg.ImageHeight)
	}
	if cfg.SamplesPerPixel <= 0 {
		t.Error("expected a positive sample count")
	}
}

func TestGlassNestedRenders(t *testing.T) {
	cfg, world := GlassNested(8, 8)
	cfg.SamplesPerPixel = 2
	driver := render.NewDriver(camera.New(cfg), world, 1, 1, zerolog.Nop())
	if _, err := driver.Render(context.Background()); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func TestCornellRenders(t *testing.T) {
	cfg, world := Cornell(8, 8)
	cfg.SamplesPerPixel = 2
	driver := render.NewDriver(camera.New(cfg), world, 1, 1, zerolog.Nop())
	if _, err := driver.Render(context.Background()); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func TestSmokeBoxRenders(t *testing.T) {
	cfg, world := SmokeBox(8, 8)
	cfg.SamplesPerPixel = 2
	driver := render.NewDriver(camera.New(cfg), world, 1, 1, zerolog.Nop())
	if _, err := driver.Render(context.Background()); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func TestTexturedMeshLoadsModel(t *testing.T) {
	dir := t.TempDir()
	obj := "v -1 0 -1\nv 1 0 -1\nv 0 1 -1\nf 1 2 3\n"
	path := filepath.Join(dir, "model.obj")
	if err := os.WriteFile(path, []byte(obj), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, world, err := TexturedMesh(path, 8, 8)
	if err != nil {
		t.Fatalf("TexturedMesh: %v", err)
	}
	if world == nil {
		t.Fatal("expected a non-nil world")
	}
	if cfg.ImageWidth != 8 {
		t.Fatalf("unexpected image width: %d", cfg.ImageWidth)
	}
}

func TestTexturedMeshMissingFileErrors(t *testing.T) {
	if _, _, err := TexturedMesh("/no/such/model.obj", 8, 8); err == nil {
		t.Error("expected an error for a missing mesh file")
	}
}
