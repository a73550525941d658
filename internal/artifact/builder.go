// Package artifact produces outputs derived from the per-spec render loop
// but not part of it: the multi-frame favicon pack, the web manifest, and
// the platform descriptor files. Each artifact builds in isolation; one
// failure never aborts the others.
package artifact

import (
	"github.com/alexisbeaulieu97/iconsmith/internal/catalog"
	"github.com/alexisbeaulieu97/iconsmith/internal/compose"
	"github.com/alexisbeaulieu97/iconsmith/internal/logger"
	"github.com/alexisbeaulieu97/iconsmith/internal/render"
	iconsmitherrors "github.com/alexisbeaulieu97/iconsmith/pkg/errors"
)

// Artifact is one auxiliary output: a relative path and its encoded bytes.
type Artifact struct {
	Path string
	Data []byte
}

// Builder assembles the auxiliary artifacts for a run.
type Builder struct {
	engine     *compose.Engine
	background *render.Background
	appName    string
	log        *logger.Logger
}

// NewBuilder wires the builder to the run's compositing engine and
// background.
func NewBuilder(engine *compose.Engine, background *render.Background, appName string, log *logger.Logger) *Builder {
	return &Builder{
		engine:     engine,
		background: background,
		appName:    appName,
		log:        log,
	}
}

type artifactJob struct {
	path  string
	gated bool
	build func() ([]byte, error)
}

// Build produces every artifact gated on the requested platforms and
// categories. Failures are collected per artifact and the loop continues.
func (b *Builder) Build(platforms []catalog.Platform, categories []catalog.Category) ([]Artifact, []error) {
	hasPlatform := toSet(platforms)
	hasCategory := toSet(categories)

	jobs := []artifactJob{
		{
			path:  "web/favicon.ico",
			gated: hasPlatform[catalog.PlatformWeb] && hasCategory[catalog.CategoryFavicon],
			build: b.buildFavicon,
		},
		{
			path:  "web/site.webmanifest",
			gated: hasPlatform[catalog.PlatformWeb] && hasCategory[catalog.CategoryIcon],
			build: b.buildManifest,
		},
		{
			path:  "ios/AppIcon.appiconset/Contents.json",
			gated: hasPlatform[catalog.PlatformIOS] && hasCategory[catalog.CategoryIcon],
			build: b.buildContents,
		},
		{
			path:  "android/mipmap-anydpi-v26/ic_launcher.xml",
			gated: hasPlatform[catalog.PlatformAndroid] && hasCategory[catalog.CategoryAdaptive],
			build: b.buildAdaptiveXML,
		},
		{
			path:  "android/values/colors.xml",
			gated: hasPlatform[catalog.PlatformAndroid] && hasCategory[catalog.CategoryAdaptive],
			build: b.buildColorsXML,
		},
	}

	var artifacts []Artifact
	var errs []error
	for _, job := range jobs {
		if !job.gated {
			continue
		}

		data, err := job.build()
		if err != nil {
			b.log.Error(err, "artifact build failed")
			errs = append(errs, iconsmitherrors.NewArtifactError(job.path, err))
			continue
		}
		if data == nil {
			// Conditional artifact declined to emit (colors.xml without a
			// solid background).
			continue
		}

		b.log.WithFields(map[string]any{"path": job.path, "bytes": len(data)}).Debug("artifact built")
		artifacts = append(artifacts, Artifact{Path: job.path, Data: data})
	}
	return artifacts, errs
}

func toSet[T comparable](values []T) map[T]bool {
	out := make(map[T]bool, len(values))
	for _, v := range values {
		out[v] = true
	}
	return out
}
