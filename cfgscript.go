// Package cfgscript is an embeddable interpreter for a line-oriented
// configuration macro language: variable declarations, numeric enum
// generators, file inclusion, conditionals, FOR-style iteration, a
// prefix-notation math/color mini-language, and resource declarations
// an embedding program queries by (namespace, property).
//
// A Config is not safe for concurrent use; clone it (Clone) if
// multiple goroutines need independent state derived from the same
// loaded configuration.
package cfgscript

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/kettlebell/cfgscript/parser"
)

// Config is one interpreter instance: a list of candidate source
// paths, injected parameters, and, once Load succeeds, the resources
// and variables parsed out of the chosen source (and everything it
// transitively INCLUDEs).
type Config struct {
	ctx     *parser.Context
	sources []string
}

// New returns an empty, ready-to-configure Config.
func New() *Config {
	return &Config{ctx: parser.NewContext()}
}

// WithLogger sets the logrus.FieldLogger used for PRINT sequences.
// The default is logrus.StandardLogger().
func (c *Config) WithLogger(log logrus.FieldLogger) *Config {
	c.ctx.Log = log
	return c
}

// Clone returns a deep, independent copy of c: same sources,
// parameters, and (if already loaded) resources/variables.
func (c *Config) Clone() *Config {
	return &Config{
		ctx:     c.ctx.Clone(),
		sources: append([]string(nil), c.sources...),
	}
}

// Close releases c's resources. Config holds no OS handles beyond the
// lifetime of Load/LoadInternal, so Close is a no-op provided for API
// symmetry with ccfg_destroy.
func (c *Config) Close() {}

// PushSource appends a candidate source path. Load tries each pushed
// source in order and parses the first one that can be opened.
func (c *Config) PushSource(path string) {
	if c.ctx.Blocked() {
		return
	}
	c.sources = append(c.sources, path)
}

// ClearSources discards all pushed source paths.
func (c *Config) ClearSources() {
	if c.ctx.Blocked() {
		return
	}
	c.sources = nil
}

// PushParameterLong injects an integer-valued variable, visible to
// the source exactly like a LET-declared one, under name.
func (c *Config) PushParameterLong(name string, v int64) {
	c.ctx.DefineVariable(name, strconv.FormatInt(v, 10))
}

// PushParameterDouble injects a floating point variable.
func (c *Config) PushParameterDouble(name string, v float64) {
	c.ctx.DefineVariable(name, strconv.FormatFloat(v, 'f', -1, 64))
}

// PushParameterString injects a string-valued variable.
func (c *Config) PushParameterString(name string, v string) {
	c.ctx.DefineVariable(name, v)
}

// ClearParameters erases all parameters pushed via PushParameter*,
// independent of LET-declared variables and declared resources.
func (c *Config) ClearParameters() {
	c.ctx.ClearParameters()
}

// ClearResources discards all resources declared by a previous Load,
// independent of parameters and sources.
func (c *Config) ClearResources() {
	c.ctx.ClearResources()
}

// Load tries each pushed source in order and parses the first one
// that opens successfully. Failing to open any source is not itself
// an error — check CanOpenSources beforehand, or ResourceLength/
// Resource afterward, to detect an empty load.
func (c *Config) Load() {
	c.ctx.Load(c.sources)
}

// LoadInternal parses buffer directly, with no backing file: INCLUDE
// is disabled for the whole load, since there is no directory to
// resolve a relative include path against.
func (c *Config) LoadInternal(buffer string) {
	c.ctx.LoadInternal(buffer)
}

// CanOpenSources reports whether any pushed source can currently be
// opened, and at which index, without loading or parsing it.
func (c *Config) CanOpenSources() (ok bool, index int) {
	return parser.ProbeSources(c.sources)
}

// Fetch points the read cursor at the resource declared under
// (namespace, property). Call Iterate to advance onto its first word.
func (c *Config) Fetch(namespace, property string) {
	c.ctx.Fetch(namespace, property)
}

// Iterate advances the read cursor to the next word of the most
// recently Fetch'd resource, returning false once exhausted.
func (c *Config) Iterate() bool {
	return c.ctx.Iterate()
}

// Resource returns the word at the current cursor position, or "" if
// nothing has been successfully Fetch'd and iterated to.
func (c *Config) Resource() string {
	return c.ctx.Resource()
}

// ResourceLength returns the number of values in the fetched
// resource (the group size), e.g. 2 for `Fetch("myns", "prop")`
// against `myns prop a b`.
func (c *Config) ResourceLength() int {
	return c.ctx.ResourceLength()
}

// Resources returns every declared resource, grouped by namespace
// name. Intended for introspection tooling, not for the hot query
// path (use Fetch/Iterate/Resource for that).
func (c *Config) Resources() map[string][]string {
	return c.ctx.Resources()
}

// VariableNames returns every currently bound variable name.
func (c *Config) VariableNames() []string {
	return c.ctx.VariableNames()
}

// Err returns the sticky error kind (invariant: once set, it remains
// set until Repair).
func (c *Config) Err() ErrorKind {
	return fromParserErr(c.ctx.Err())
}

// Repair clears the sticky error flag so a Config can keep being
// queried after a recoverable parse-time failure.
func (c *Config) Repair() {
	c.ctx.Repair()
}

// Restrict disables every privileged sequence handler (LET,
// APPEND/PREPEND/MERGE, ENUM, INCLUDE, FOR, SEED, PRINT, SECTION*)
// until Unrestrict is called: only resource declarations still take
// effect. Intended for parsing configuration from an untrusted source.
func (c *Config) Restrict() {
	c.ctx.Restrict()
}

// Unrestrict clears the restricted flag, whether it was set by
// Restrict or by a RESTRICT sequence in a previously loaded source.
// A RESTRICT sequence stays in effect for the rest of its own load.
func (c *Config) Unrestrict() {
	c.ctx.Unrestrict()
}
