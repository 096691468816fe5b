package model

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroLiteral(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
		ok   bool
	}{
		{KindBoolean, "false", true},
		{KindByte, "0", true},
		{KindShort, "0", true},
		{KindInt, "0", true},
		{KindLong, "0", true},
		{KindChar, "0", true},
		{KindFloat, "0", true},
		{KindDouble, "0", true},
		{KindUnsupported, "", false},
		{Kind(42), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, ok := tt.kind.ZeroLiteral()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, tt.kind.Supported())
		})
	}
}

func TestParseKind(t *testing.T) {
	for k := KindBoolean; int(k) < KindTotal; k++ {
		assert.Equal(t, k, ParseKind(k.String()))
	}
	assert.Equal(t, KindLong, ParseKind("  LONG "))
	assert.Equal(t, KindUnsupported, ParseKind("string"))
	assert.Equal(t, KindUnsupported, ParseKind(""))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		typ  types.Type
		want Kind
	}{
		{"bool", types.Typ[types.Bool], KindBoolean},
		{"byte", types.Universe.Lookup("byte").Type(), KindByte},
		{"int8", types.Typ[types.Int8], KindByte},
		{"uint16", types.Typ[types.Uint16], KindShort},
		{"int32", types.Typ[types.Int32], KindInt},
		{"rune", types.Universe.Lookup("rune").Type(), KindChar},
		{"int", types.Typ[types.Int], KindLong},
		{"int64", types.Typ[types.Int64], KindLong},
		{"float32", types.Typ[types.Float32], KindFloat},
		{"float64", types.Typ[types.Float64], KindDouble},
		{"string", types.Typ[types.String], KindUnsupported},
		{"complex128", types.Typ[types.Complex128], KindUnsupported},
		{"pointer", types.NewPointer(types.Typ[types.Int64]), KindUnsupported},
		{"slice", types.NewSlice(types.Typ[types.Int64]), KindUnsupported},
		{"named", types.NewNamed(types.NewTypeName(0, nil, "Price", nil), types.Typ[types.Int64], nil), KindLong},
		{"nil", nil, KindUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.typ))
		})
	}
}

func TestFieldSetLastSeenWins(t *testing.T) {
	fs := NewFieldSet(
		TaggedField{Name: "a", Kind: KindLong},
		TaggedField{Name: "b", Kind: KindInt},
	)
	overwritten := fs.Add(TaggedField{Name: "a", Kind: KindBoolean})
	require.True(t, overwritten)
	require.Equal(t, 2, fs.Len())

	got := fs.Fields()
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, KindBoolean, got[0].Kind)
	assert.Equal(t, "b", got[1].Name)

	f, ok := fs.Get("a")
	require.True(t, ok)
	assert.Equal(t, KindBoolean, f.Kind)
}

func TestFieldSetPartition(t *testing.T) {
	fs := NewFieldSet(
		TaggedField{Name: "price", Kind: KindDouble},
		TaggedField{Name: "symbol", Kind: KindUnsupported},
		TaggedField{Name: "live", Kind: KindBoolean},
	)
	assert.Len(t, fs.Supported(), 2)
	require.Len(t, fs.Unsupported(), 1)
	assert.Equal(t, "symbol", fs.Unsupported()[0].Name)

	var empty *FieldSet
	assert.Zero(t, empty.Len())
	assert.Empty(t, empty.Fields())
}

func TestParseQualifiedName(t *testing.T) {
	tests := []struct {
		in, pkg, name string
	}{
		{"marketdata.Quote", "marketdata", "Quote"},
		{"github.com/acme/marketdata.Quote", "marketdata", "Quote"},
		{"Quote", "", "Quote"},
		{".Quote", "", "Quote"},
		{"market-data.Quote", "", "Quote"},
		{"com.bhf.marketdata.Quote", "marketdata", "Quote"},
		{"com.bhf.market-data.Quote", "", "Quote"},
		{"com.bhf..Quote", "", "Quote"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			pkg, name := ParseQualifiedName(tt.in)
			assert.Equal(t, tt.pkg, pkg)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestSourceTypeNames(t *testing.T) {
	st := &SourceType{Package: "marketdata", Name: "Quote"}
	assert.Equal(t, "marketdata.Quote", st.QualifiedName())
	assert.Equal(t, "ReusableQuote", st.CompanionName())
	assert.Equal(t, "marketdata.ReusableQuote", st.CompanionQualifiedName())

	root := &SourceType{Name: "Quote"}
	assert.Equal(t, "Quote", root.QualifiedName())
	assert.Equal(t, "ReusableQuote", root.CompanionQualifiedName())
}
