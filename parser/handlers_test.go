package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func resourceWords(c *Context, ns, prop string) []string {
	c.Fetch(ns, prop)
	var out []string
	for c.Iterate() {
		out = append(out, c.Resource())
	}
	return out
}

func TestEnumOneParam(t *testing.T) {
	c := NewContext()
	c.LoadInternal("ENUM step 4\n")
	idx, ok := c.KeysVars().Find("step", varsNamespace)
	require.True(t, ok)
	got := c.Vars().Group(int(idx))
	// min=0, max=4, steps=4, precision=0 -> 5 values: 0,1,2,3,4
	require.Equal(t, []string{"0", "1", "2", "3", "4"}, got)
}

func TestEnumTwoParams(t *testing.T) {
	c := NewContext()
	c.LoadInternal("ENUM half 0 1\n") // min=0,max=1,steps=1,precision=0 -> "1 step" cascade
	idx, ok := c.KeysVars().Find("half", varsNamespace)
	require.True(t, ok)
	got := c.Vars().Group(int(idx))
	require.Equal(t, []string{"0", "1"}, got)
}

func TestSectionGatesResources(t *testing.T) {
	c := NewContext()
	c.LoadInternal("SECTION_ADD debug\nSECTION debug\nwidget prop visible\nSECTION release\nwidget other hidden\n")
	require.Equal(t, []string{"visible"}, resourceWords(c, "widget", "prop"))
	require.Empty(t, resourceWords(c, "widget", "other"))
}

func TestForIteratesOverVariable(t *testing.T) {
	c := NewContext()
	src := "LET colors red green blue\n" +
		"FOR colors c\n" +
		"widget ($ c) on\n" +
		"FOR_END\n"
	c.LoadInternal(src)
	require.Equal(t, []string{"on"}, resourceWords(c, "widget", "red"))
	require.Equal(t, []string{"on"}, resourceWords(c, "widget", "green"))
	require.Equal(t, []string{"on"}, resourceWords(c, "widget", "blue"))
}

func TestNestedForRunsInnerBodyExactlyOnce(t *testing.T) {
	c := NewContext()
	src := "LET outer a b\n" +
		"LET inner x y\n" +
		"LET counter 0\n" +
		"FOR outer o\n" +
		"FOR inner i\n" +
		"APPEND counter counter Z\n" +
		"FOR_END\n" +
		"FOR_END\n" +
		"widget result ($ counter)\n"
	c.LoadInternal(src)
	// Two outer values times two inner values: the inner APPEND must
	// run exactly four times, not be replayed a second time by the
	// outer loop once the nested FOR's body has already executed.
	require.Equal(t, []string{"0ZZZZ"}, resourceWords(c, "widget", "result"))
}

func TestRestrictDisablesPrivilegedHandlers(t *testing.T) {
	c := NewContext()
	c.Restrict()
	c.LoadInternal("LET x 1\nwidget prop still_works\n")
	_, ok := c.KeysVars().Find("x", varsNamespace)
	require.False(t, ok, "LET should be disabled once restricted")
	require.Equal(t, []string{"still_works"}, resourceWords(c, "widget", "prop"))
}

func TestVarAppend(t *testing.T) {
	c := NewContext()
	c.LoadInternal("LET names Alice Bob\nAPPEND names names Jr\nwidget prop ($ names)\n")
	idx, ok := c.KeysVars().Find("names", varsNamespace)
	require.True(t, ok)
	require.Equal(t, []string{"AliceJr", "BobJr"}, c.Vars().Group(int(idx)))
}
