package generate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/cmmoran/reusablegen/internal/diag"
	"github.com/cmmoran/reusablegen/internal/emitter"
	"github.com/cmmoran/reusablegen/internal/model"
	iparser "github.com/cmmoran/reusablegen/internal/parser"
	"github.com/cmmoran/reusablegen/internal/writer"
	"github.com/cmmoran/reusablegen/pkg/manifest"
	"github.com/cmmoran/reusablegen/pkg/parser"
)

// Version is recorded in the manifest. The CLI sets it from build info.
var Version = "dev"

// ErrForeignOutDir is returned when companions of Go source types would be
// written outside the package that declares them. A companion embeds its
// source type unqualified and touches unexported fields, so it only compiles
// inside that package.
var ErrForeignOutDir = errors.New("output directory is not the source package directory")

// Render discovers the source types described by opts and renders their
// companions without touching the output directory.
func Render(ctx context.Context, opts *parser.Options, sink *diag.Sink) ([]model.GeneratedUnit, error) {
	par := iparser.New(opts, sink)
	if opts.Schema == "" && !sameDir(opts.InDir, opts.OutDir) {
		return nil, fmt.Errorf("%w: %s is not %s", ErrForeignOutDir, opts.OutDir, opts.InDir)
	}
	if err := par.Parse(ctx); err != nil {
		return nil, err
	}
	if len(par.Types) == 0 {
		sink.Infof("No source types found")
		return nil, nil
	}

	em := emitter.New(iparser.FallbackPackage(opts), opts.FileSuffix, sink)
	units := make([]model.GeneratedUnit, 0, len(par.Types))
	for _, st := range par.Types {
		unit, err := em.Emit(st)
		if err != nil {
			return units, err
		}
		units = append(units, unit)
	}
	return units, nil
}

// Generate renders every companion and writes each one to its own file in
// opts.OutDir. A failed write fails that source type only; the remaining
// types are still written and all write errors are returned together.
func Generate(ctx context.Context, opts *parser.Options, fs afero.Fs, sink *diag.Sink) ([]model.GeneratedUnit, error) {
	units, err := Render(ctx, opts, sink)
	if err != nil {
		return nil, err
	}
	if opts.DryRun {
		sink.Infof("Dry run: %d file(s) not written", len(units))
		return units, nil
	}

	w := writer.New(fs)
	written := make([]model.GeneratedUnit, 0, len(units))
	var errs []error
	for _, unit := range units {
		path := filepath.Join(opts.OutDir, unit.FileName)
		if err := w.WriteFile(path, unit.Content); err != nil {
			errs = append(errs, fmt.Errorf("generate %s: %w", unit.Source.CompanionQualifiedName(), err))
			continue
		}
		sink.Infof("Wrote %s", path)
		written = append(written, unit)
	}

	if opts.Manifest != "" && len(written) > 0 {
		if err := recordManifest(w.Fs, opts.Manifest, written); err != nil {
			errs = append(errs, err)
		}
	}

	sink.Infof("Finished processing all types: %s", sink.Summary())
	return written, errors.Join(errs...)
}

func recordManifest(fs afero.Fs, path string, units []model.GeneratedUnit) error {
	m, err := manifest.Load(fs, path)
	if err != nil {
		return err
	}
	m.Version = Version
	for _, unit := range units {
		m.Record(manifest.Unit{
			Type:      unit.Source.QualifiedName(),
			Companion: unit.Source.CompanionQualifiedName(),
			File:      unit.FileName,
			Digest:    manifest.Digest(unit.Content),
		})
	}
	return m.Save(fs, path)
}

func sameDir(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
