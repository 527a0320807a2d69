// Render - headless animation export. Rasterizes the scene on the CPU and
// writes one numbered BMP per frame, ping-ponging through the pulse cycle.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/phong-primitives/internal/config"
	"github.com/Faultbox/phong-primitives/internal/engine/capture"
	"github.com/Faultbox/phong-primitives/internal/export"
	"github.com/Faultbox/phong-primitives/internal/frame"
	"github.com/Faultbox/phong-primitives/internal/logger"
	"github.com/Faultbox/phong-primitives/internal/raster"
	"github.com/Faultbox/phong-primitives/internal/scene"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("=== Phong Primitives: Render ===",
		zap.Int("frames", cfg.Render.Frames),
		zap.String("out", cfg.Render.OutputDir),
	)

	start := time.Now()
	if err := render(ctx, cfg); err != nil {
		logger.Error("render failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("render finished", zap.Duration("took", time.Since(start)))
}

// render writes cfg.Render.Frames images into cfg.Render.OutputDir.
func render(ctx context.Context, cfg *config.Config) error {
	s, err := scene.FromConfig(cfg.Scene)
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}
	meshes, err := s.Meshes()
	if err != nil {
		return fmt.Errorf("building meshes: %w", err)
	}

	if cfg.Render.GLTF != "" {
		if err := export.WriteGLB(cfg.Render.GLTF, s, meshes, 0); err != nil {
			return fmt.Errorf("exporting gltf: %w", err)
		}
		logger.Info("scene exported", zap.String("path", cfg.Render.GLTF))
	}

	n := cfg.Render.Frames
	target := raster.NewTarget(cfg.Render.Width, cfg.Render.Height)
	seq := capture.NewSequence(cfg.Render.OutputDir, "render", n, capture.BMP)
	material := cfg.Material.Shading()
	log := logger.Named("render")

	for i := range n {
		if err := ctx.Err(); err != nil {
			return err
		}

		t := frame.PingPong(i, n, cfg.Render.Duration)
		st := frame.Build(cfg.Controls, t, target.Aspect(), s)

		target.Clear(raster.Background)
		if err := target.DrawFrame(st, meshes, material); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		path, err := seq.Write(i, target.Image)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}

		log.Debug("frame written",
			zap.String("path", path),
			zap.Duration("t", t),
			zap.Int("fragments", target.Stats.Fragments),
			zap.Int("culled", target.Stats.Culled),
		)
		if (i+1)%10 == 0 || i == n-1 {
			log.Info("progress", zap.Int("done", i+1), zap.Int("total", n))
		}
	}
	return nil
}
