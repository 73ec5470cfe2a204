// Command pathtracer renders one of the example scenes (package scenes)
// to a PNG file, configurable via CLI flags and an optional TOML config
// file whose values the flags given on the command line override
// (spec.md §6 external collaborators).
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"path-tracer/camera"
	"path-tracer/gltfmesh"
	"path-tracer/hit"
	"path-tracer/materials"
	pmath "path-tracer/math"
	"path-tracer/primitives"
	"path-tracer/render"
	"path-tracer/scenes"
)

// fileConfig mirrors the flag set so a TOML file can supply defaults
// that flags then override, matching NoiseTorch-ng's config.toml shape.
type fileConfig struct {
	Scene       string
	MeshPath    string
	Width       int
	Height      int
	Samples     int
	MaxDepth    int
	Seed        int64
	Workers     int
	Output      string
	UseGLTFMesh bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		cfg        = fileConfig{
			Scene:    "cover",
			Width:    800,
			Height:   450,
			Samples:  100,
			MaxDepth: 30,
			Seed:     1,
			Workers:  runtime.GOMAXPROCS(0),
			Output:   "out.png",
		}
	)

	cmd := &cobra.Command{
		Use:   "pathtracer",
		Short: "Render an example scene with the offline Monte-Carlo path tracer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				// Flags are already parsed into cfg; remember the ones set on
				// the command line and re-apply them over the file's values.
				setFlags := map[string]string{}
				cmd.Flags().Visit(func(f *pflag.Flag) { setFlags[f.Name] = f.Value.String() })
				if err := loadFileConfig(configPath, &cfg); err != nil {
					return err
				}
				for name, value := range setFlags {
					if err := cmd.Flags().Set(name, value); err != nil {
						return err
					}
				}
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "path to a TOML config file; flags override its values")
	flags.StringVar(&cfg.Scene, "scene", cfg.Scene, "scene to render: cover, cornell, glass-nested, smoke-box, textured-mesh")
	flags.StringVar(&cfg.MeshPath, "mesh", cfg.MeshPath, "mesh file for the textured-mesh scene (.obj or, with --gltf, .gltf/.glb)")
	flags.BoolVar(&cfg.UseGLTFMesh, "gltf", cfg.UseGLTFMesh, "load --mesh as glTF instead of OBJ (textured-mesh scene only)")
	flags.IntVar(&cfg.Width, "width", cfg.Width, "image width in pixels")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "image height in pixels")
	flags.IntVar(&cfg.Samples, "samples", cfg.Samples, "samples per pixel")
	flags.IntVar(&cfg.MaxDepth, "max-depth", cfg.MaxDepth, "maximum recursion depth per path")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of render worker goroutines")
	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output, "output PNG path")

	return cmd
}

func loadFileConfig(path string, cfg *fileConfig) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	return nil
}

func run(ctx context.Context, cfg fileConfig) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

	camCfg, world, err := buildScene(cfg)
	if err != nil {
		return err
	}
	camCfg.SamplesPerPixel = cfg.Samples
	camCfg.MaxDepth = cfg.MaxDepth

	logger.Info().
		Str("scene", cfg.Scene).
		Int("width", camCfg.ImageWidth).
		Int("height", camCfg.ImageHeight).
		Int("samples", camCfg.SamplesPerPixel).
		Int("workers", cfg.Workers).
		Msg("starting render")

	driver := render.NewDriver(camera.New(camCfg), world, uint64(cfg.Seed), cfg.Workers, logger)

	start := time.Now()
	img, err := driver.Render(ctx)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	logger.Info().Dur("elapsed", time.Since(start)).Msg("render finished")

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := render.EncodePNG(f, img); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	logger.Info().Str("path", cfg.Output).Msg("wrote image")
	return nil
}

func buildScene(cfg fileConfig) (camera.Config, hit.Hittable, error) {
	width, height := cfg.Width, cfg.Height

	switch cfg.Scene {
	case "cover":
		c, w := scenes.Cover(width, height, uint64(cfg.Seed))
		return c, w, nil
	case "cornell":
		c, w := scenes.Cornell(width, height)
		return c, w, nil
	case "glass-nested":
		c, w := scenes.GlassNested(width, height)
		return c, w, nil
	case "smoke-box":
		c, w := scenes.SmokeBox(width, height)
		return c, w, nil
	case "textured-mesh":
		if cfg.MeshPath == "" {
			return camera.Config{}, nil, fmt.Errorf("--mesh is required for the textured-mesh scene")
		}
		if cfg.UseGLTFMesh {
			return buildGLTFMeshScene(cfg.MeshPath, width, height)
		}
		c, w, err := scenes.TexturedMesh(cfg.MeshPath, width, height)
		return c, w, err
	default:
		return camera.Config{}, nil, fmt.Errorf("unknown scene %q", cfg.Scene)
	}
}

// buildGLTFMeshScene mirrors scenes.TexturedMesh but sources geometry
// from the gltfmesh loader instead of the OBJ/MTL loader.
func buildGLTFMeshScene(path string, width, height int) (camera.Config, hit.Hittable, error) {
	world := primitives.NewHittableList()

	meshes, err := gltfmesh.Load(path, materials.DefaultMaterial())
	if err != nil {
		return camera.Config{}, nil, fmt.Errorf("load gltf scene: %w", err)
	}
	for _, m := range meshes {
		for _, tri := range m.Triangles {
			world.Add(tri)
		}
	}

	camCfg := camera.Config{
		ImageWidth:          width,
		ImageHeight:         height,
		VFovDegrees:         40,
		LookFrom:            pmath.NewVec3(0, 2, 6),
		LookAt:              pmath.NewVec3(0, 1, 0),
		ViewUp:              pmath.Vec3Up,
		DefocusAngleDegrees: 0,
		FocusDistance:       10,
		SamplesPerPixel:     100,
		MaxDepth:            30,
		Background:          pmath.NewVec3(0.7, 0.8, 1.0),
	}

	return camCfg, primitives.BuildBVHFromList(world), nil
}
