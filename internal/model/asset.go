package model

import (
	"time"

	"github.com/alexisbeaulieu97/iconsmith/internal/catalog"
)

// GeneratedAsset holds one rendered artifact for the duration of a run.
// Pixels are the encoded raster bytes; nothing here is ever persisted
// beyond the output write.
type GeneratedAsset struct {
	Spec       catalog.AssetSpec
	Pixels     []byte
	OutputPath string
}

// GenerationResult aggregates the outcome of a full generation run.
// Success is true only when every asset and auxiliary artifact completed.
type GenerationResult struct {
	Success          bool
	Assets           []GeneratedAsset
	OutputDir        string
	InstructionsPath string
	Errors           []string
	Duration         time.Duration
}
