// Package pipeline orchestrates a full generation run: resolve specs,
// render them through the compositing engine with a bounded worker pool,
// persist outputs, and build auxiliary artifacts.
package pipeline

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/iconsmith/internal/artifact"
	"github.com/alexisbeaulieu97/iconsmith/internal/catalog"
	"github.com/alexisbeaulieu97/iconsmith/internal/compose"
	"github.com/alexisbeaulieu97/iconsmith/internal/config"
	"github.com/alexisbeaulieu97/iconsmith/internal/fonts"
	"github.com/alexisbeaulieu97/iconsmith/internal/history"
	"github.com/alexisbeaulieu97/iconsmith/internal/instructions"
	"github.com/alexisbeaulieu97/iconsmith/internal/logger"
	"github.com/alexisbeaulieu97/iconsmith/internal/model"
	"github.com/alexisbeaulieu97/iconsmith/internal/render"
	"github.com/alexisbeaulieu97/iconsmith/internal/writer"
	iconsmitherrors "github.com/alexisbeaulieu97/iconsmith/pkg/errors"
)

// DefaultParallel bounds concurrent renders when the config does not set
// settings.parallel. Kept small: each worker holds full raster buffers.
const DefaultParallel = 4

// composer is the slice of the engine the render loop needs.
type composer interface {
	Compose(spec catalog.AssetSpec) ([]byte, error)
}

// Pipeline drives one generation run.
type Pipeline struct {
	cfg      *config.Config
	engine   composer
	builder  *artifact.Builder
	writer   *writer.Writer
	history  *history.Store
	log      *logger.Logger
	parallel int
}

// New assembles a pipeline from a validated config. The history store may
// be nil; recording is then skipped.
func New(cfg *config.Config, log *logger.Logger, store *history.Store) *Pipeline {
	bg := render.NewBackground(&cfg.Background)

	var resolver fonts.Resolver
	if cfg.Foreground.Type == config.ForegroundText {
		resolver = fonts.NewCache(fonts.ForSource(cfg.Foreground.Text.FontSource), 0)
	}
	fg := render.NewForeground(&cfg.Foreground, resolver)

	engine := compose.NewEngine(bg, fg, cfg.Scales)

	parallel := cfg.Settings.Parallel
	if parallel <= 0 {
		parallel = DefaultParallel
	}

	return &Pipeline{
		cfg:      cfg,
		engine:   engine,
		builder:  artifact.NewBuilder(engine, bg, cfg.Name, log.WithComponent("artifact")),
		writer:   writer.New(cfg.Output, log.WithComponent("writer")),
		history:  store,
		log:      log.WithComponent("pipeline"),
		parallel: parallel,
	}
}

// Run executes the full generation and reports the aggregate outcome.
// Per-asset failures are isolated; a configuration error aborts with an
// empty asset list.
func (p *Pipeline) Run(ctx context.Context) *model.GenerationResult {
	start := time.Now()

	platforms := p.cfg.PlatformList()
	categories := p.cfg.CategoryList()

	specs, err := catalog.Resolve(platforms, categories)
	if err != nil {
		return p.fail(start, err)
	}
	p.log.WithFields(map[string]any{"specs": len(specs), "parallel": p.parallel}).Info("generation started")

	assets, renderErrs := p.renderAll(ctx, specs)
	for _, err := range renderErrs {
		var cfgErr *iconsmitherrors.ConfigError
		if errors.As(err, &cfgErr) {
			return p.fail(start, err)
		}
	}

	allErrs := renderErrs
	allErrs = append(allErrs, p.writer.WriteAssets(assets)...)

	artifacts, artifactErrs := p.builder.Build(platforms, categories)
	allErrs = append(allErrs, artifactErrs...)
	allErrs = append(allErrs, p.writer.WriteArtifacts(artifacts)...)

	markdown := instructions.Markdown(p.cfg.Output, platforms, categories, p.cfg)
	instructionsPath, err := p.writer.WriteText(instructions.FileName, markdown)
	if err != nil {
		allErrs = append(allErrs, err)
	}

	result := &model.GenerationResult{
		Success:          len(allErrs) == 0,
		Assets:           assets,
		OutputDir:        p.cfg.Output,
		InstructionsPath: instructionsPath,
		Errors:           errorStrings(allErrs),
		Duration:         time.Since(start),
	}

	p.record(result, platforms, categories)
	p.log.WithFields(map[string]any{
		"assets":   len(result.Assets),
		"errors":   len(result.Errors),
		"duration": result.Duration.String(),
	}).Info("generation finished")
	return result
}

// renderAll composes every spec with a bounded worker pool. Output order
// follows spec order regardless of completion order.
func (p *Pipeline) renderAll(ctx context.Context, specs []catalog.AssetSpec) ([]model.GeneratedAsset, []error) {
	type slot struct {
		asset model.GeneratedAsset
		err   error
		done  bool
	}

	slots := make([]slot, len(specs))
	pool := make(chan struct{}, p.parallel)
	var wg sync.WaitGroup

	for i, spec := range specs {
		if ctx.Err() != nil {
			slots[i] = slot{err: ctx.Err(), done: true}
			continue
		}

		wg.Add(1)
		go func(i int, spec catalog.AssetSpec) {
			defer wg.Done()

			pool <- struct{}{}
			defer func() { <-pool }()

			pixels, err := p.engine.Compose(spec)
			if err != nil {
				p.log.Error(err, "asset render failed")
				slots[i] = slot{err: err, done: true}
				return
			}
			slots[i] = slot{
				asset: model.GeneratedAsset{Spec: spec, Pixels: pixels, OutputPath: spec.Name},
				done:  true,
			}
		}(i, spec)
	}
	wg.Wait()

	assets := make([]model.GeneratedAsset, 0, len(specs))
	var errs []error
	for _, s := range slots {
		if !s.done {
			continue
		}
		if s.err != nil {
			errs = append(errs, s.err)
			continue
		}
		assets = append(assets, s.asset)
	}
	return assets, errs
}

func (p *Pipeline) fail(start time.Time, err error) *model.GenerationResult {
	p.log.Error(err, "generation aborted")
	return &model.GenerationResult{
		Success:   false,
		OutputDir: p.cfg.Output,
		Errors:    []string{err.Error()},
		Duration:  time.Since(start),
	}
}

// record persists the run to history. Failures are logged and swallowed;
// history is never allowed to fail generation.
func (p *Pipeline) record(result *model.GenerationResult, platforms []catalog.Platform, categories []catalog.Category) {
	if p.history == nil {
		return
	}

	entry := history.Entry{
		Name:       p.cfg.Name,
		OutputDir:  result.OutputDir,
		Platforms:  stringify(platforms),
		Categories: stringify(categories),
		AssetCount: len(result.Assets),
		ErrorCount: len(result.Errors),
		Success:    result.Success,
	}
	p.history.Record(entry)
	if err := p.history.Save(); err != nil {
		p.log.Error(err, "history save failed")
	}
}

func errorStrings(errs []error) []string {
	if len(errs) == 0 {
		return nil
	}
	out := make([]string, len(errs))
	for i, err := range errs {
		out[i] = err.Error()
	}
	return out
}

func stringify[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
