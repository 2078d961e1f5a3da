package casso

import "testing"

import "github.com/stretchr/testify/require"

func TestSymbolPacking(t *testing.T) {
	for _, kind := range []SymbolKind{External, Slack, Error, Dummy} {
		sym := newSymbol(kind, 42)
		require.True(t, sym.Valid())
		require.Equal(t, kind, sym.Kind())
		require.EqualValues(t, 42, sym.id())
	}
}

func TestSymbolZeroIsInvalid(t *testing.T) {
	var z Symbol
	require.False(t, z.Valid())
	require.False(t, z.Restricted())
	require.False(t, z.External())
	require.Equal(t, "<invalid>", z.String())
}

func TestSymbolRestricted(t *testing.T) {
	require.True(t, newSymbol(Slack, 1).Restricted())
	require.True(t, newSymbol(Error, 1).Restricted())
	require.False(t, newSymbol(External, 1).Restricted())
	require.False(t, newSymbol(Dummy, 1).Restricted())
}

func TestSymbolKindNeverAffectsID(t *testing.T) {
	a := newSymbol(External, 7)
	b := newSymbol(Dummy, 7)
	require.Equal(t, a.id(), b.id())
	require.NotEqual(t, a, b)
}
