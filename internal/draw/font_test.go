package draw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFontCache_LazyAndStable(t *testing.T) {
	fc := NewFontCache(DefaultFont)
	assert.False(t, fc.Loaded())

	first := fc.Face()
	require.NotNil(t, first)
	assert.True(t, fc.Loaded())
	assert.Same(t, first, fc.Face())
	assert.Equal(t, DefaultFont, fc.Descriptor())
}

func TestFontCache_MetricsFollowSize(t *testing.T) {
	small := NewFontCache(FontDescriptor{Family: "Go Regular", Size: 12}).Face().Metrics()
	large := NewFontCache(FontDescriptor{Family: "Go Regular", Size: 36}).Face().Metrics()
	assert.Greater(t, small.HAscent, 0.0)
	assert.Greater(t, large.HAscent, small.HAscent)
}

func TestFontCache_UnknownFamilyPanics(t *testing.T) {
	fc := NewFontCache(FontDescriptor{Family: "Arial", Size: 18})
	assert.Panics(t, func() { fc.Face() })
}

func TestFontCache_CloseThenRebuild(t *testing.T) {
	fc := NewFontCache(FontDescriptor{Family: "Go Mono", Size: 14})
	first := fc.Face()
	require.NoError(t, fc.Close())
	assert.False(t, fc.Loaded())
	assert.NotSame(t, first, fc.Face())
}

func TestDebugDraw_FontStable(t *testing.T) {
	dd, _, _ := newTestDraw(t)
	assert.Same(t, dd.Font(), dd.Font())
}

func TestDebugDraw_DisposeClosesFont(t *testing.T) {
	dd, _, _ := newTestDraw(t)
	first := dd.Font()
	require.True(t, dd.fonts.Loaded())

	require.NoError(t, dd.Dispose())
	assert.False(t, dd.fonts.Loaded())
	assert.NotSame(t, first, dd.Font(), "font is rebuilt on next use")
}
