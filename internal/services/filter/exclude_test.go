package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tamilwords/internal/testutil"
)

func TestNewExcludeFilter_CompilesEveryPattern(t *testing.T) {
	patterns := []string{"^Thiru.*", "(?i)^aga", "^(Kurun|Nat)thogai$", "புறநானூறு", `\d+$`}

	f, err := NewExcludeFilter(patterns, testutil.Logger())

	require.NoError(t, err)
	assert.Len(t, f.patterns, len(patterns))
}

func TestNewExcludeFilter_Rejects(t *testing.T) {
	cases := map[string]struct {
		patterns []string
		want     string
	}{
		"nil list":         {nil, "no patterns provided for exclude filter"},
		"empty list":       {[]string{}, "no patterns provided for exclude filter"},
		"open bracket":     {[]string{"[unclosed"}, "invalid regex pattern"},
		"bare quantifier":  {[]string{"*kural"}, "invalid regex pattern"},
		"one bad among ok": {[]string{"^Thiru", `\`}, "invalid regex pattern"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f, err := NewExcludeFilter(tc.patterns, testutil.Logger())

			require.Error(t, err)
			assert.Nil(t, f)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestExcludeFilter_ShouldExclude(t *testing.T) {
	// Arrange
	f, err := NewExcludeFilter([]string{"^Thiru", "நானூறு$"}, testutil.Logger())
	require.NoError(t, err)

	// Act / Assert
	assert.True(t, f.ShouldExclude("Thirukkural", "திருக்குறள்"), "romanised name")
	assert.True(t, f.ShouldExclude("Purananuru", "புறநானூறு"), "tamil name")
	assert.False(t, f.ShouldExclude("Kurunthogai", "குறுந்தொகை"))
	assert.False(t, f.ShouldExclude("AThirukkural"), "anchor")
	assert.False(t, f.ShouldExclude("thirukkural"), "case")
	assert.False(t, f.ShouldExclude())
}

func TestNew(t *testing.T) {
	noop, err := New(nil, testutil.Logger())
	require.NoError(t, err)
	assert.IsType(t, &NoOpFilter{}, noop)
	assert.False(t, noop.ShouldExclude("Thirukkural"))

	all, err := New([]string{".*"}, testutil.Logger())
	require.NoError(t, err)
	assert.IsType(t, &ExcludeFilter{}, all)
	assert.True(t, all.ShouldExclude(""))

	_, err = New([]string{"["}, testutil.Logger())
	assert.Error(t, err)
}
