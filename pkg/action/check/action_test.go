package check

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/reusablegen/internal/diag"
	"github.com/cmmoran/reusablegen/pkg/action/generate"
	"github.com/cmmoran/reusablegen/pkg/parser"
)

func opts() *parser.Options {
	return parser.New(
		parser.WithInDir(""),
		parser.WithSchema(filepath.Join("..", "generate", "testdata", "quote.yaml")),
		parser.WithOutDir("/out"),
		parser.WithDefaultPackage("feed"),
	)
}

func TestCheck(t *testing.T) {
	fs := afero.NewMemMapFs()
	ctx := context.Background()

	report, err := Check(ctx, opts(), fs, diag.NewSink(nil))
	require.ErrorIs(t, err, ErrStale)
	assert.Contains(t, report, "/out/reusable_quote.gen.go: missing")

	_, err = generate.Generate(ctx, opts(), fs, diag.NewSink(nil))
	require.NoError(t, err)

	report, err = Check(ctx, opts(), fs, diag.NewSink(nil))
	require.NoError(t, err)
	assert.Empty(t, report)

	require.NoError(t, afero.WriteFile(fs, "/out/reusable_trade.gen.go", []byte("package marketdata\n"), 0o644))
	report, err = Check(ctx, opts(), fs, diag.NewSink(nil))
	require.ErrorIs(t, err, ErrStale)
	assert.Contains(t, report, "/out/reusable_trade.gen.go (-current +generated)")
	assert.NotContains(t, report, "reusable_quote.gen.go")
}

func TestCheckParseError(t *testing.T) {
	o := parser.New(parser.WithInDir(""), parser.WithSchema("missing.yaml"), parser.WithOutDir("/out"))
	_, err := Check(context.Background(), o, afero.NewMemMapFs(), diag.NewSink(nil))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrStale)
}
