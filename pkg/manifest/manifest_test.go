package manifest

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissing(t *testing.T) {
	m, err := Load(afero.NewMemMapFs(), "/nope/reusable.yaml")
	require.NoError(t, err)
	assert.Empty(t, m.Units)
}

func TestRecordAndRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	m := &Manifest{Version: "1.0.0"}
	m.Record(Unit{Type: "marketdata.Trade", Companion: "marketdata.ReusableTrade", File: "reusable_trade.gen.go", Digest: "a"})
	m.Record(Unit{Type: "marketdata.Quote", Companion: "marketdata.ReusableQuote", File: "reusable_quote.gen.go", Digest: "b"})
	m.Record(Unit{Type: "marketdata.Trade", Companion: "marketdata.ReusableTrade", File: "reusable_trade.gen.go", Digest: "c"})

	require.Len(t, m.Units, 2)
	assert.Equal(t, "marketdata.Quote", m.Units[0].Type)
	assert.Equal(t, "c", m.Units[1].Digest)

	require.NoError(t, m.Save(fs, "/gen/reusable.yaml"))
	loaded, err := Load(fs, "/gen/reusable.yaml")
	require.NoError(t, err)
	assert.Equal(t, m, loaded)

	u, ok := loaded.Find("marketdata.Quote")
	require.True(t, ok)
	assert.Equal(t, "reusable_quote.gen.go", u.File)
	_, ok = loaded.Find("marketdata.Order")
	assert.False(t, ok)
}

func TestLoadInvalid(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bad.yaml", []byte("units: ["), 0o644))
	_, err := Load(fs, "/bad.yaml")
	require.Error(t, err)
}

func TestDigest(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Digest(nil))
	assert.NotEqual(t, Digest([]byte("a")), Digest([]byte("b")))
}

func TestSaveFailureKeepsPreviousManifest(t *testing.T) {
	base := afero.NewMemMapFs()
	prev := &Manifest{Version: "1.0.0"}
	prev.Record(Unit{Type: "marketdata.Quote", Companion: "marketdata.ReusableQuote", File: "reusable_quote.gen.go", Digest: "a"})
	require.NoError(t, prev.Save(base, "/gen/reusable.yaml"))

	next := &Manifest{Version: "1.1.0"}
	require.Error(t, next.Save(afero.NewReadOnlyFs(base), "/gen/reusable.yaml"))

	loaded, err := Load(base, "/gen/reusable.yaml")
	require.NoError(t, err)
	assert.Equal(t, prev, loaded)

	entries, err := afero.ReadDir(base, "/gen")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "reusable.yaml", entries[0].Name())
}
