package parser

import "github.com/kettlebell/cfgscript/internal/lang/dict"

// Fetch points the read cursor at the resource declared under
// (namespace, property), if any. It always resets the cursor, even on
// a miss, matching ccfg_fetch's "each fetch replaces the previous
// one" contract.
func (c *Context) Fetch(namespace, property string) {
	if c.Blocked() {
		return
	}
	c.fetchWords = nil
	c.fetchHasRes = false
	c.fetchCursor = 0

	nsIdx, ok := c.keysSequences.Find(namespace, dict.Reserved)
	if !ok {
		return
	}
	groupIdx, ok := c.keysSequences.Find(property, dict.Namespace(nsIdx))
	if !ok {
		return
	}
	c.fetchWords = c.sequences.Group(int(groupIdx))
	c.fetchHasRes = true
	c.fetchCursor = -1 // Iterate must be called before the first Resource read
}

// Iterate advances the read cursor to the next word of the fetched
// resource, returning false once exhausted (or if nothing was
// successfully Fetch'd).
func (c *Context) Iterate() bool {
	if c.Blocked() || !c.fetchHasRes {
		return false
	}
	c.fetchCursor++
	return c.fetchCursor < len(c.fetchWords)
}

// Resource returns the word at the current cursor position, or "" if
// Fetch found nothing or Iterate has not yet been called / is
// exhausted, matching ccfg_resource's always-safe empty-string
// default.
func (c *Context) Resource() string {
	if c.Blocked() || !c.fetchHasRes || c.fetchCursor < 0 || c.fetchCursor >= len(c.fetchWords) {
		return ""
	}
	return c.fetchWords[c.fetchCursor]
}

// ResourceLength returns the number of values in the fetched
// resource (the group size), not the byte length of the current
// value — matching spec.md §4.7's "resource_length() returns the
// group size" and ccfg_resource_length's "number of values".
func (c *Context) ResourceLength() int {
	if c.Blocked() || !c.fetchHasRes {
		return 0
	}
	return len(c.fetchWords)
}

// Resources returns every declared resource, grouped by namespace
// name, for introspection tooling that has no a priori list of
// namespaces/properties to Fetch.
func (c *Context) Resources() map[string][]string {
	if c.Blocked() {
		return nil
	}
	out := make(map[string][]string)
	for _, nsName := range c.keysSequences.Names(dict.Reserved) {
		nsIdx, _ := c.keysSequences.Find(nsName, dict.Reserved)
		out[nsName] = c.keysSequences.Names(dict.Namespace(nsIdx))
	}
	return out
}

// VariableNames returns every currently bound variable name (LET
// declarations and injected parameters alike; FOR-loop aliases are
// erased again by the time iterate returns, so they never appear
// here).
func (c *Context) VariableNames() []string {
	if c.Blocked() {
		return nil
	}
	return c.keysVars.Names(varsNamespace)
}

// ClearResources discards all declared resources and their namespace
// registrations, independent of variables and sources.
func (c *Context) ClearResources() {
	if c.Blocked() {
		return
	}
	c.sequences.Clear()
	c.keysSequences.Clear()
	c.nextNamespace = 0
	c.fetchWords = nil
	c.fetchHasRes = false
	c.fetchCursor = 0
}
