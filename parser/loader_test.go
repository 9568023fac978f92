package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProbeSourcesFindsFirstOpenable(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "real.cfgscript")
	require.NoError(t, os.WriteFile(real, []byte("widget prop ok\n"), 0o644))

	ok, idx := ProbeSources([]string{filepath.Join(dir, "missing.cfgscript"), real})
	require.True(t, ok)
	require.Equal(t, 1, idx)
}

func TestProbeSourcesAllMissing(t *testing.T) {
	ok, idx := ProbeSources([]string{"/no/such/file", "/also/missing"})
	require.False(t, ok)
	require.Equal(t, -1, idx)
}

func TestLoadParsesFirstOpenableSource(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "real.cfgscript")
	require.NoError(t, os.WriteFile(real, []byte("widget prop ok\n"), 0o644))

	c := NewContext()
	idx, ok := c.Load([]string{filepath.Join(dir, "missing.cfgscript"), real})
	require.True(t, ok)
	require.Equal(t, 1, idx)
	require.Equal(t, []string{"ok"}, resourceWords(c, "widget", "prop"))
}

func TestLoadFailsWhenNothingOpensIsNotAnError(t *testing.T) {
	c := NewContext()
	_, ok := c.Load([]string{"/no/such/file"})
	require.False(t, ok)
	require.Equal(t, ErrNone, c.Err())
}

func TestIncludePullsInAnotherFile(t *testing.T) {
	dir := t.TempDir()
	included := filepath.Join(dir, "included.cfgscript")
	require.NoError(t, os.WriteFile(included, []byte("widget prop from_include\n"), 0o644))
	main := filepath.Join(dir, "main.cfgscript")
	require.NoError(t, os.WriteFile(main, []byte("INCLUDE included.cfgscript\n"), 0o644))

	c := NewContext()
	_, ok := c.Load([]string{main})
	require.True(t, ok)
	require.Equal(t, []string{"from_include"}, resourceWords(c, "widget", "prop"))
}

func TestIncludeCycleIsSkippedSilently(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.cfgscript")
	b := filepath.Join(dir, "b.cfgscript")
	require.NoError(t, os.WriteFile(a, []byte("widget prop a_ran\nINCLUDE b.cfgscript\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("INCLUDE a.cfgscript\nwidget prop b_ran\n"), 0o644))

	c := NewContext()
	_, ok := c.Load([]string{a})
	require.True(t, ok)
	require.Equal(t, ErrNone, c.Err())
	require.Equal(t, []string{"b_ran"}, resourceWords(c, "widget", "prop"))
}

func TestDiamondIncludeIsNotSkippedOnSecondBranch(t *testing.T) {
	dir := t.TempDir()
	shared := filepath.Join(dir, "shared.cfgscript")
	require.NoError(t, os.WriteFile(shared, []byte("APPEND counter counter x\n"), 0o644))
	c1 := filepath.Join(dir, "c1.cfgscript")
	require.NoError(t, os.WriteFile(c1, []byte("INCLUDE shared.cfgscript\n"), 0o644))
	main := filepath.Join(dir, "main.cfgscript")
	require.NoError(t, os.WriteFile(main, []byte(
		"LET counter 0\nINCLUDE c1.cfgscript\nINCLUDE shared.cfgscript\nwidget final ($ counter)\n",
	), 0o644))

	c := NewContext()
	_, ok := c.Load([]string{main})
	require.True(t, ok)
	require.Equal(t, ErrNone, c.Err())
	// shared.cfgscript is included from two separate branches (via
	// c1, and directly from main): it must run both times, not be
	// silently skipped the second time as an already-visited inode.
	require.Equal(t, []string{"0xx"}, resourceWords(c, "widget", "final"))
}

func TestIncludeDisabledOnInMemoryBuffer(t *testing.T) {
	dir := t.TempDir()
	other := filepath.Join(dir, "other.cfgscript")
	require.NoError(t, os.WriteFile(other, []byte("widget prop from_other\n"), 0o644))

	c := NewContext()
	c.LoadInternal("INCLUDE " + other + "\nwidget prop from_buffer\n")
	require.Equal(t, []string{"from_buffer"}, resourceWords(c, "widget", "prop"))
}
