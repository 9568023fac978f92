// Package dict implements the keyed dictionary that maps a (name,
// namespace) pair to a group index in a book.Book: the join between
// the word-group arena and the names configuration authors actually
// write (variable names, resource properties, namespace names,
// section tags, iteration aliases).
package dict

// Namespace discriminates what kind of name a Key refers to. Namespace
// values above Reserved are dynamically assigned resource-namespace
// ids (looked up via the Reserved namespace itself, mirroring
// original_source's "namespace 0 maps namespace-name to namespace-id").
type Namespace uint16

const (
	// Reserved is namespace 0: keys under it map a resource
	// namespace's textual name to its dynamically assigned id.
	Reserved Namespace = iota
	Variable
	Iteration
	Section
	Parameter
)

// Key identifies one dictionary entry.
type Key struct {
	Name      string
	Namespace Namespace
}

// MaxEntries bounds how many keys a Dict may hold; see
// book.MaxGroups for why this cap exists.
const MaxEntries = 10000

// Dict is a keyed dictionary from Key to an unsigned group index.
type Dict struct {
	m map[Key]uint
}

// New returns a ready-to-use Dict.
func New() *Dict {
	return &Dict{m: make(map[Key]uint)}
}

// Find looks up name under namespace. ok is false if absent.
func (d *Dict) Find(name string, ns Namespace) (idx uint, ok bool) {
	idx, ok = d.m[Key{Name: name, Namespace: ns}]
	return
}

// Write records (or overwrites) the mapping from (name, ns) to idx.
func (d *Dict) Write(name string, ns Namespace, idx uint) {
	d.m[Key{Name: name, Namespace: ns}] = idx
}

// Erase removes (name, ns) if present. No-op otherwise.
func (d *Dict) Erase(name string, ns Namespace) {
	delete(d.m, Key{Name: name, Namespace: ns})
}

// Clear empties the dictionary entirely.
func (d *Dict) Clear() {
	d.m = make(map[Key]uint)
}

// Clone returns a deep copy of d.
func (d *Dict) Clone() *Dict {
	out := New()
	for k, v := range d.m {
		out.m[k] = v
	}
	return out
}

// Len reports the number of live entries, for tests and diagnostics.
func (d *Dict) Len() int {
	return len(d.m)
}

// Full reports whether d has reached MaxEntries. Write itself never
// checks this — callers that grow books and dicts together (see
// parser.Context.overCapacity) check Full on all of them before
// writing to any, so a single oversized sequence can't leave one
// container grown and its paired dict not.
func (d *Dict) Full() bool {
	return len(d.m) >= MaxEntries
}

// Names returns every name currently registered under ns, in no
// particular order. Used by introspection tooling (cmd/cfgscript's
// run and vars subcommands) that has no a priori list of names to
// Find.
func (d *Dict) Names(ns Namespace) []string {
	var out []string
	for k := range d.m {
		if k.Namespace == ns {
			out = append(out, k.Name)
		}
	}
	return out
}
