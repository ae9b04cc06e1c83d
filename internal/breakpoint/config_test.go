package breakpoint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, Mapping{"xs": 560, "sm": 768, "md": 960, "lg": 1024, "xl": 1280, "xxl": 1600}, cfg.Breakpoints)
	assert.Equal(t, "md", cfg.DefaultBreakpoint)
	assert.True(t, cfg.GuardSSR)

	// Callers get a copy.
	cfg.Breakpoints["xs"] = 1
	assert.Equal(t, 560, Defaults().Breakpoints["xs"])
}

func TestOptions_Apply(t *testing.T) {
	custom := Mapping{"narrow": 80, "wide": 140}
	tests := []struct {
		name string
		opts Options
		want Config
	}{
		{
			name: "empty options fall back to defaults",
			opts: Options{},
			want: Defaults(),
		},
		{
			name: "mapping override",
			opts: Options{Breakpoints: custom},
			want: Config{Breakpoints: custom, DefaultBreakpoint: "md", GuardSSR: true},
		},
		{
			name: "explicit false guard is respected",
			opts: Options{GuardSSR: Bool(false)},
			want: Config{Breakpoints: Defaults().Breakpoints, DefaultBreakpoint: "md", GuardSSR: false},
		},
		{
			name: "empty non-nil mapping is kept",
			opts: Options{Breakpoints: Mapping{}, DefaultBreakpoint: "narrow"},
			want: Config{Breakpoints: Mapping{}, DefaultBreakpoint: "narrow", GuardSSR: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.Resolve())
		})
	}
}

func TestFromContext_NoProvider(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoProvider)

	_, err = FromContext(nil)
	assert.ErrorIs(t, err, ErrNoProvider)
}

func TestProvide_ScopedOverride(t *testing.T) {
	root := Provide(context.Background(), Options{})
	narrow := Provide(root, Options{Breakpoints: Mapping{"narrow": 80}, DefaultBreakpoint: "narrow"})
	unguarded := Provide(root, Options{GuardSSR: Bool(false)})

	rootCfg, err := FromContext(root)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), rootCfg)

	narrowCfg, err := FromContext(narrow)
	require.NoError(t, err)
	assert.Equal(t, "narrow", narrowCfg.DefaultBreakpoint)
	assert.True(t, narrowCfg.GuardSSR)

	unguardedCfg, err := FromContext(unguarded)
	require.NoError(t, err)
	assert.False(t, unguardedCfg.GuardSSR)
	// Overrides merge with the defaults, not with the enclosing scope.
	assert.Equal(t, Defaults().Breakpoints, unguardedCfg.Breakpoints)

	// Siblings do not see each other's overrides.
	rootCfg, err = FromContext(root)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), rootCfg)
}

func TestOptions_Merge(t *testing.T) {
	file := Options{Breakpoints: TerminalBreakpoints(), DefaultBreakpoint: "compact"}
	flags := Options{GuardSSR: Bool(false)}

	got := file.Merge(flags)
	assert.Equal(t, TerminalBreakpoints(), got.Breakpoints)
	assert.Equal(t, "compact", got.DefaultBreakpoint)
	require.NotNil(t, got.GuardSSR)
	assert.False(t, *got.GuardSSR)

	got = got.Merge(Options{DefaultBreakpoint: "full"})
	assert.Equal(t, "full", got.DefaultBreakpoint)
	assert.False(t, *got.GuardSSR)
}

func TestTerminalBreakpoints(t *testing.T) {
	table := BuildTable(TerminalBreakpoints())
	assert.Equal(t, []string{"narrow", "compact", "standard", "full"}, table.Labels())

	label, _ := table.Locate(110)
	assert.Equal(t, "standard", label)
}
