// Package parser implements the substitution engine and sequence
// dispatcher over a loaded configuration source: the heart of the
// interpreter. Context holds all per-load mutable state (the cursor
// into the raw lexer, the resource and variable books, the section/
// iteration/namespace dictionaries, and the sticky error flag).
//
// Grounded on sqlparser.Scanner's cursor+flags shape
// (vippsas/sqlcode's sqlparser/scanner.go), generalized with the
// book/dict state described in original_source/src/config.h.
package parser

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/kettlebell/cfgscript/internal/lang/book"
	"github.com/kettlebell/cfgscript/internal/lang/dict"
	"github.com/kettlebell/cfgscript/internal/lang/lexer"
)

// varsNamespace is the dict namespace under which both LET-declared
// variables and FOR-loop aliases are registered, so that VAR_INJECTION
// ($name) resolves either kind of binding uniformly.
const varsNamespace = dict.Variable

// MaxDepth bounds substitution and sequence-dispatch recursion
// (operator nesting, chained variable injection, nested includes and
// FOR loops all share one counter), mirroring
// original_source/src/{substitution,sequence}.c's shared depth guard.
const MaxDepth = 32

// ErrorKind mirrors cfgscript.ErrorKind without importing the public
// package (avoiding an import cycle); cfgscript.go converts between
// the two at the API boundary.
type ErrorKind int

const (
	ErrNone ErrorKind = iota
	ErrInvalid
	ErrOverflow
	ErrMemory
)

// Context is one loaded configuration's full interpreter state.
type Context struct {
	Log logrus.FieldLogger

	lex   *lexer.Lexer
	depth int

	// restricted disables privileged handlers while set (by Restrict
	// or a RESTRICT sequence; only Unrestrict clears it);
	// skipSequences is the transient SECTION
	// gate, re-evaluated by every SECTION sequence.
	restricted    bool
	skipSequences bool

	// varGroup/varIndex: when varGroup>=0 the next raw token is
	// replayed from that vars book group instead of read from the
	// lexer. Set by the VAR_INJECTION handler; drains naturally as
	// varIndex advances past the group's length.
	varGroup, varIndex int

	sequences     book.Book
	vars          book.Book
	iteration     book.Book
	keysSequences *dict.Dict // namespace 0 holds namespace-name -> id
	keysVars      *dict.Dict // Variable/Iteration/Section namespaces
	nextNamespace uint

	rng *rand.Rand

	failed bool
	err    ErrorKind

	// cursor over Fetch'd resource words, for Iterate/Resource.
	fetchHasRes bool
	fetchCursor int
	fetchWords  []string

	// source/include state.
	fileDir   string
	fileInode uint64
	visited   map[uint64]bool

	// FOR-loop body replay state: while replaying is set,
	// getTokenRaw drains replayWords instead of the lexer.
	replaying        bool
	replayWords      []string
	replayIndex      int
	currentIterGroup int

	// paramNames tracks variables bound via DefineVariable (the
	// PushParameter* family) so ClearParameters can erase exactly
	// those bindings without disturbing LET-declared ones, matching
	// ccfg_clear_params's independence from the other two clears.
	paramNames []string
}

// NewContext returns a fresh, empty Context ready to Load a source
// into.
func NewContext() *Context {
	return &Context{
		Log:           logrus.StandardLogger(),
		keysSequences: dict.New(),
		keysVars:      dict.New(),
		rng:              rand.New(rand.NewSource(1)),
		varGroup:         -1,
		currentIterGroup: -1,
		visited:          make(map[uint64]bool),
	}
}

// Failed reports the sticky failure flag (invariant 5: once set, it
// stays set until Repair, except INVALID which Repair cannot clear).
func (c *Context) Failed() bool { return c.failed }

// Err returns the most recent error kind.
func (c *Context) Err() ErrorKind { return c.err }

// Blocked reports whether the sticky error flag is set. Per ccfg.h:
// "if any error is set all config methods will exit early with
// default return values and no side-effects" — every exported
// Context/Config method that can mutate or read parsed state checks
// this first.
func (c *Context) Blocked() bool { return c.failed }

// Repair clears a recoverable sticky error (OVERFLOW, MEMORY) so a
// Context can keep being used. ErrInvalid is permanent — it marks the
// placeholder instance only — and is left untouched, matching
// spec.md §6.3's "INVALID (unrecoverable, placeholder)".
func (c *Context) Repair() {
	if c.err == ErrInvalid {
		return
	}
	c.failed = false
	c.err = ErrNone
}

func (c *Context) fail(kind ErrorKind) {
	c.failed = true
	c.err = kind
}

// Invalidate latches the permanent ErrInvalid state directly. Used
// only to construct the package-level placeholder instance
// (cfgscript.Placeholder) — a real Load never produces ErrInvalid
// (failing to open any source is not an error; see Load).
func (c *Context) Invalidate() {
	c.fail(ErrInvalid)
}

// overCapacity reports whether any book or dict backing this Context
// has reached its entry-count cap, and if so latches ErrOverflow.
// Called by every handler that grows a book or dict, immediately
// before the growing operation, so the growth itself never happens
// once blocked.
func (c *Context) overCapacity() bool {
	full := c.vars.Full() || c.sequences.Full() || c.iteration.Full() ||
		c.keysVars.Full() || c.keysSequences.Full()
	if full {
		c.fail(ErrOverflow)
	}
	return full
}

// Restrict disables all privileged sequence handlers until Unrestrict.
func (c *Context) Restrict() {
	if c.Blocked() {
		return
	}
	c.restricted = true
}

// Unrestrict is provided for API symmetry (ccfg_unrestrict exists in
// original_source/include/cassette/ccfg.h). It clears c.restricted
// whether Restrict or a RESTRICT sequence in a loaded source set it;
// it cannot run during a load, so a RESTRICT sequence holds for the
// rest of that load.
func (c *Context) Unrestrict() {
	if c.Blocked() {
		return
	}
	c.restricted = false
}

// Seed reseeds the RNG backing the RANDOM math operator.
func (c *Context) Seed(v float64) {
	if c.Blocked() {
		return
	}
	c.rng = rand.New(rand.NewSource(int64(v)))
}

// Clone returns a deep, independent copy of c: same declared
// resources and variables, same sticky error state, fresh replay/
// fetch cursors. Grounded on ccfg_clone.
func (c *Context) Clone() *Context {
	out := &Context{
		Log:              c.Log,
		restricted:       c.restricted,
		skipSequences:    c.skipSequences,
		varGroup:         -1,
		sequences:        c.sequences.Clone(),
		vars:             c.vars.Clone(),
		iteration:        c.iteration.Clone(),
		keysSequences:    c.keysSequences.Clone(),
		keysVars:         c.keysVars.Clone(),
		nextNamespace:    c.nextNamespace,
		rng:              rand.New(rand.NewSource(1)),
		failed:           c.failed,
		err:              c.err,
		currentIterGroup: -1,
		visited:          make(map[uint64]bool),
		paramNames:       append([]string(nil), c.paramNames...),
	}
	return out
}

// DefineVariable binds name to a single-word variable, the mechanism
// behind PushParameterLong/Double/String: a variable an embedding
// program injects before Load, usable from the source exactly like a
// LET-declared one. Grounded on ccfg_push_param_double/long/str.
func (c *Context) DefineVariable(name, value string) {
	if c.Blocked() || c.overCapacity() {
		return
	}
	idx := c.vars.NewGroup()
	c.vars.Append(value)
	c.keysVars.Write(name, varsNamespace, uint(idx))
	c.paramNames = append(c.paramNames, name)
}

// ClearParameters erases every binding made via DefineVariable,
// independent of LET-declared variables and of declared resources.
func (c *Context) ClearParameters() {
	if c.Blocked() {
		return
	}
	for _, name := range c.paramNames {
		c.keysVars.Erase(name, varsNamespace)
	}
	c.paramNames = nil
}

// Sequences exposes the resource book for the public Fetch/Iterate
// path (cfgscript.go lives in a separate package to keep the public
// surface minimal and documented independently of the engine).
func (c *Context) Sequences() *book.Book { return &c.sequences }
func (c *Context) Vars() *book.Book      { return &c.vars }
func (c *Context) Iteration() *book.Book { return &c.iteration }
func (c *Context) KeysSequences() *dict.Dict { return c.keysSequences }
func (c *Context) KeysVars() *dict.Dict      { return c.keysVars }
