package cfgscript

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kettlebell/cfgscript/internal/lang/book"
)

func TestLoadInternalAndFetch(t *testing.T) {
	c := New()
	c.LoadInternal("widget background_color (RGB 10 20 30)\n")
	c.Fetch("widget", "background_color")
	require.True(t, c.Iterate())
	require.Equal(t, "4278850590", c.Resource()) // 0xFF0A141E
	require.False(t, c.Iterate())
	require.Equal(t, ErrNone, c.Err())
}

func TestResourceLengthIsGroupSizeNotWordLength(t *testing.T) {
	c := New()
	c.LoadInternal("myns prop a b\n")
	c.Fetch("myns", "prop")
	require.Equal(t, 2, c.ResourceLength())
	require.True(t, c.Iterate())
	require.Equal(t, "a", c.Resource())
	require.Equal(t, 2, c.ResourceLength())
	require.True(t, c.Iterate())
	require.Equal(t, "b", c.Resource())
	require.Equal(t, 2, c.ResourceLength())
	require.False(t, c.Iterate())
}

func TestFetchMissUsesSafeEmptyResource(t *testing.T) {
	c := New()
	c.LoadInternal("widget prop value\n")
	c.Fetch("widget", "nope")
	require.False(t, c.Iterate())
	require.Equal(t, "", c.Resource())
	require.Equal(t, 0, c.ResourceLength())
}

func TestParametersInjectVariables(t *testing.T) {
	c := New()
	c.PushParameterLong("count", 3)
	c.PushParameterString("name", "gizmo")
	c.LoadInternal("widget label ($ name) ($ count)\n")
	c.Fetch("widget", "label")
	require.True(t, c.Iterate())
	require.Equal(t, "gizmo", c.Resource())
	require.True(t, c.Iterate())
	require.Equal(t, "3", c.Resource())
}

func TestClearParametersDoesNotTouchLetVariables(t *testing.T) {
	c := New()
	c.LoadInternal("LET kept yes\n")
	c.PushParameterString("injected", "x")
	c.ClearParameters()
	c.LoadInternal("widget prop ($ kept)\n")
	c.Fetch("widget", "prop")
	require.True(t, c.Iterate())
	require.Equal(t, "yes", c.Resource())
}

func TestCloneIsIndependent(t *testing.T) {
	c := New()
	c.LoadInternal("widget prop original\n")
	clone := c.Clone()

	clone.ClearResources()
	clone.LoadInternal("widget prop changed\n")

	c.Fetch("widget", "prop")
	require.True(t, c.Iterate())
	require.Equal(t, "original", c.Resource())

	clone.Fetch("widget", "prop")
	require.True(t, clone.Iterate())
	require.Equal(t, "changed", clone.Resource())
}

func TestPlaceholderIsAlwaysInvalid(t *testing.T) {
	p := Placeholder()
	require.Equal(t, ErrInvalid, p.Err())
	require.Equal(t, "", p.Resource())
	require.False(t, p.Iterate())
}

func TestLoadFindingNoOpenableSourceIsNotAnError(t *testing.T) {
	c := New()
	c.PushSource("/does/not/exist.cfgscript")
	c.Load()
	require.Equal(t, ErrNone, c.Err())
	require.Equal(t, 0, c.ResourceLength())
}

func TestRepairClearsOverflowButNotInvalid(t *testing.T) {
	c := New()
	c.LoadInternal("widget prop value\n")

	var src strings.Builder
	for i := 0; i <= book.MaxGroups; i++ {
		fmt.Fprintf(&src, "LET x%d 1\n", i)
	}
	c.LoadInternal(src.String())
	require.Equal(t, ErrOverflow, c.Err())

	c.Repair()
	require.Equal(t, ErrNone, c.Err())
	// Repair clears the sticky flag, but the container that actually
	// hit its cap stays full; a query against data declared before the
	// overflow still works since Fetch/Iterate never grow a book.
	c.Fetch("widget", "prop")
	require.True(t, c.Iterate())
	require.Equal(t, "value", c.Resource())

	// ErrInvalid, by contrast, survives Repair.
	p := Placeholder()
	p.Repair()
	require.Equal(t, ErrInvalid, p.Err())
}

func TestPlaceholderMutationsAreNoOps(t *testing.T) {
	p := Placeholder()
	p.PushSource("/some/path")
	p.PushParameterString("x", "y")
	p.LoadInternal("widget prop value\n")
	p.Load()
	p.Repair()

	require.Equal(t, ErrInvalid, p.Err())
	require.False(t, p.Iterate())
	require.Equal(t, "", p.Resource())
	require.Equal(t, 0, p.ResourceLength())
	require.Nil(t, p.VariableNames())
	require.Nil(t, p.Resources())
}

func TestCanOpenSourcesReportsNoneOpenable(t *testing.T) {
	c := New()
	c.PushSource("/does/not/exist.cfgscript")
	ok, idx := c.CanOpenSources()
	require.False(t, ok)
	require.Equal(t, -1, idx)
}
