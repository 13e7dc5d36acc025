package main

import (
	"github.com/milk9111/spritestage/config"
	"github.com/milk9111/spritestage/export"
	"github.com/milk9111/spritestage/scene"
)

func placementFromConfig(cfg *config.Config) scene.Fields {
	p := cfg.Placement
	return scene.Fields{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

func scriptOptionsFromConfig(cfg *config.Config) export.ScriptOptions {
	s := cfg.Script
	bg := s.Background
	return export.ScriptOptions{
		WindowWidth:  s.WindowWidth,
		WindowHeight: s.WindowHeight,
		Caption:      s.Caption,
		FPS:          s.FPS,
		Background:   &bg,
	}
}

// bundleOptionsFromConfig leaves Host empty so the exporter checks the
// running OS. RequiredHost comes from the config's host entry.
func bundleOptionsFromConfig(cfg *config.Config) export.BundleOptions {
	b := cfg.Bundle
	return export.BundleOptions{
		Script:       scriptOptionsFromConfig(cfg),
		RequiredHost: b.Host,
		Name:         b.Name,
		Identifier:   b.Identifier,
		Version:      b.Version,
		Packages:     append([]string(nil), b.Packages...),
		Excludes:     append([]string(nil), b.Excludes...),
	}
}
