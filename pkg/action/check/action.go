package check

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/cmmoran/reusablegen/internal/diag"
	"github.com/cmmoran/reusablegen/pkg/action/generate"
	"github.com/cmmoran/reusablegen/pkg/parser"
)

// ErrStale is returned when at least one companion on disk differs from what
// generation would produce now.
var ErrStale = errors.New("generated files are stale")

// Check renders every companion and compares it with the file on disk. The
// returned report holds one diff per stale file; it is empty when everything
// is up to date.
func Check(ctx context.Context, opts *parser.Options, fs afero.Fs, sink *diag.Sink) (string, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	units, err := generate.Render(ctx, opts, sink)
	if err != nil {
		return "", err
	}

	var report strings.Builder
	for _, unit := range units {
		path := filepath.Join(opts.OutDir, unit.FileName)
		current, err := afero.ReadFile(fs, path)
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(&report, "%s: missing\n", path)
			continue
		}
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		if diff := cmp.Diff(string(current), string(unit.Content)); diff != "" {
			fmt.Fprintf(&report, "%s (-current +generated):\n%s\n", path, diff)
		}
	}

	if report.Len() > 0 {
		return report.String(), ErrStale
	}
	return "", nil
}
