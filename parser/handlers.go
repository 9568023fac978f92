package parser

import (
	"strconv"
	"strings"

	"github.com/kettlebell/cfgscript/internal/lang/dict"
	"github.com/kettlebell/cfgscript/internal/lang/mathops"
	"github.com/kettlebell/cfgscript/internal/lang/token"
)

// maxEnumSteps bounds ENUM generation. original_source rejects only
// `steps >= SIZE_MAX`; a configuration language embedded in a running
// program should not be able to request gigabytes of generated values
// from one line, so this is a practical ceiling rather than a literal
// SIZE_MAX translation.
const maxEnumSteps = 1_000_000

// combineVar implements VAR_APPEND / VAR_PREPEND / VAR_MERGE.
// Grounded on original_source/src/sequence.c:combine_var.
func (c *Context) combineVar(kind token.Kind) {
	if c.restricted {
		return
	}
	name := c.getToken()
	if name.Kind == token.Invalid {
		return
	}
	src := c.getToken()
	if src.Kind == token.Invalid {
		return
	}
	operand := c.getToken()
	if operand.Kind == token.Invalid {
		return
	}

	srcIdx, ok := c.keysVars.Find(src.Text, varsNamespace)
	if !ok {
		return
	}
	var mergeIdx uint
	if kind == token.VarMerge {
		mergeIdx, ok = c.keysVars.Find(operand.Text, varsNamespace)
		if !ok {
			return
		}
	}

	if c.overCapacity() {
		return
	}

	srcWords := c.vars.Group(int(srcIdx))
	newIdx := c.vars.NewGroup()
	for k, w := range srcWords {
		switch kind {
		case token.VarAppend:
			c.vars.Append(w + operand.Text)
		case token.VarPrepend:
			c.vars.Append(operand.Text + w)
		case token.VarMerge:
			mw, _ := c.vars.Word(int(mergeIdx), k)
			c.vars.Append(mw)
		}
	}
	c.keysVars.Write(name.Text, varsNamespace, uint(newIdx))
}

// declareVariable implements LET. Grounded on
// original_source/src/sequence.c:declare_variable.
func (c *Context) declareVariable() {
	if c.restricted {
		return
	}
	name := c.getToken()
	if name.Kind == token.Invalid {
		return
	}
	if c.overCapacity() {
		return
	}
	idx := c.vars.NewGroup()
	n := 0
	for {
		t := c.getToken()
		if t.Kind == token.Invalid {
			break
		}
		c.vars.Append(t.Text)
		n++
	}
	if n == 0 {
		c.vars.UndoGroup()
		return
	}
	c.keysVars.Write(name.Text, varsNamespace, uint(idx))
}

// declareEnum implements ENUM. The parameter-count fallthrough cascade
// below is load-bearing and is lifted, case for case, from
// original_source/src/sequence.c:declare_enum.
func (c *Context) declareEnum() {
	if c.restricted {
		return
	}
	name := c.getToken()
	if name.Kind == token.Invalid {
		return
	}

	var vals [4]float64
	n := 1 // name already counts as one successful read
	for i := 0; i < 4; i++ {
		v, ok := c.getTokenNumeral()
		if !ok {
			break
		}
		vals[i] = v
		n++
	}

	var min, max, steps, precision float64
	switch n {
	case 0, 1:
		return
	case 2:
		min, max = 0.0, vals[0]
		steps = max - min
	case 3:
		min, max = vals[0], vals[1]
		steps = max - min
	case 4:
		min, max, steps = vals[0], vals[1], vals[2]
	default:
		min, max, steps, precision = vals[0], vals[1], vals[2], vals[3]
	}

	if steps < 1.0 || steps >= maxEnumSteps || precision < 0.0 {
		return
	}
	if precision > 16 {
		precision = 16
	}
	precisionInt := int(precision)

	if c.overCapacity() {
		return
	}

	idx := c.vars.NewGroup()
	stepsInt := int(steps)
	for i := 0; i <= stepsInt; i++ {
		ratio := float64(i) / steps
		val := mathops.Interpolate(min, max, ratio)
		c.vars.Append(strconv.FormatFloat(val, 'f', precisionInt, 64))
	}
	c.keysVars.Write(name.Text, varsNamespace, uint(idx))
}

// declareResource is the fallback handler for any sequence whose
// leader token is a plain STRING/NUMBER (the namespace name).
// Grounded on original_source/src/sequence.c:declare_resource.
func (c *Context) declareResource(namespaceName string) {
	name := c.getToken()
	if name.Kind == token.Invalid {
		return
	}
	if c.overCapacity() {
		return
	}
	idx := c.sequences.NewGroup()
	n := 0
	for {
		t := c.getToken()
		if t.Kind == token.Invalid {
			break
		}
		c.sequences.Append(t.Text)
		n++
	}
	if n == 0 {
		c.sequences.UndoGroup()
		return
	}

	nsIdx, ok := c.keysSequences.Find(namespaceName, dict.Reserved)
	var ns dict.Namespace
	if ok {
		ns = dict.Namespace(nsIdx)
	} else {
		c.nextNamespace++
		ns = dict.Namespace(c.nextNamespace)
		c.keysSequences.Write(namespaceName, dict.Reserved, uint(ns))
	}
	c.keysSequences.Write(name.Text, ns, uint(idx))
}

// sectionBegin implements SECTION: AND of all listed tags. Grounded
// on original_source/src/sequence.c:section_begin.
func (c *Context) sectionBegin() {
	if c.restricted {
		return
	}
	for {
		t := c.getToken()
		if t.Kind == token.Invalid {
			break
		}
		if _, ok := c.keysVars.Find(t.Text, dict.Section); !ok {
			c.skipSequences = true
			return
		}
	}
	c.skipSequences = false
}

// sectionAdd implements SECTION_ADD.
func (c *Context) sectionAdd() {
	if c.restricted {
		return
	}
	for {
		t := c.getToken()
		if t.Kind == token.Invalid {
			break
		}
		if c.overCapacity() {
			return
		}
		c.keysVars.Write(t.Text, dict.Section, 0)
	}
}

// sectionDel implements SECTION_DEL.
func (c *Context) sectionDel() {
	if c.restricted {
		return
	}
	for {
		t := c.getToken()
		if t.Kind == token.Invalid {
			break
		}
		c.keysVars.Erase(t.Text, dict.Section)
	}
}

// seed implements SEED.
func (c *Context) seed() {
	if c.restricted {
		return
	}
	v, ok := c.getTokenNumeral()
	if !ok {
		return
	}
	c.Seed(v)
}

// print implements PRINT, writing the comma-joined, tab-separated
// substituted tokens of the line through the Context's logger.
// Grounded on original_source/src/sequence.c:print (which writes to
// stderr directly; here routed through logrus per SPEC_FULL.md §9).
func (c *Context) print() {
	if c.restricted {
		return
	}
	var parts []string
	for {
		t := c.getToken()
		if t.Kind == token.Invalid {
			break
		}
		parts = append(parts, t.Text)
	}
	if c.Log != nil {
		c.Log.Info(strings.Join(parts, ",\t"))
	}
}

// iterate implements FOR / FOR_END. Grounded on
// original_source/src/sequence.c:iterate, preproc_iter_new and
// preproc_iter_nest.
func (c *Context) iterate() {
	if c.restricted {
		return
	}
	srcTok := c.getToken()
	if srcTok.Kind == token.Invalid {
		return
	}
	srcIdx, ok := c.keysVars.Find(srcTok.Text, varsNamespace)
	if !ok {
		return
	}

	aliasTok := c.getToken()
	alias := srcTok.Text
	if aliasTok.Kind != token.Invalid {
		alias = aliasTok.Text
	}
	if _, exists := c.keysVars.Find(alias, dict.Iteration); exists {
		return
	}

	nested := c.iteration.Len() > 0
	var groupStart, groupEnd int
	var fail bool
	if nested {
		groupStart = c.currentIterGroup + 1
		groupEnd, fail = c.preprocIterNest(groupStart)
	} else {
		fail = c.preprocIterNew()
		groupStart = 0
		groupEnd = c.iteration.Len()
	}

	if !fail && !c.overCapacity() {
		srcWords := c.vars.Group(int(srcIdx))
		for _, word := range srcWords {
			if c.overCapacity() {
				break
			}
			aliasIdx := c.vars.NewGroup()
			c.vars.Append(word)
			// Bound under both namespaces: Variable so $alias
			// resolves through the ordinary injection path, and
			// Iteration purely as an "alias currently active" marker
			// so a shadowing nested FOR on the same name is rejected,
			// matching original_source's dedicated iteration
			// namespace existence check.
			c.keysVars.Write(alias, varsNamespace, uint(aliasIdx))
			c.keysVars.Write(alias, dict.Iteration, uint(aliasIdx))

			// currentIterGroup is the shared replay cursor: a nested
			// FOR encountered at group g advances it past its own
			// body (and its FOR_END) before returning, so this loop
			// picks up right after the nested block instead of
			// replaying it a second time itself.
			g := groupStart
			for g < groupEnd {
				c.currentIterGroup = g
				c.replayIterationGroup(g)
				g = c.currentIterGroup + 1
			}

			c.keysVars.Erase(alias, varsNamespace)
			c.keysVars.Erase(alias, dict.Iteration)
		}
		c.currentIterGroup = groupEnd
	}

	if !nested {
		c.iteration.Clear()
	}
}

func (c *Context) replayIterationGroup(g int) {
	words := c.iteration.Group(g)
	savedReplaying, savedWords, savedIndex := c.replaying, c.replayWords, c.replayIndex
	c.replaying = true
	c.replayWords = words
	c.replayIndex = 0
	c.ParseSequence()
	c.replaying, c.replayWords, c.replayIndex = savedReplaying, savedWords, savedIndex
}

// preprocIterNew captures the raw lines of a top-level FOR loop's
// body into c.iteration, one group per source line, stopping once the
// matching FOR_END has itself been captured. fail is true if EOF was
// reached first.
func (c *Context) preprocIterNew() (fail bool) {
	c.GotoEOL()
	n := 0
	for !c.lex.AtEOF() {
		c.lex.ResetLine()
		first := c.getTokenRaw()
		if first.Kind == token.Invalid {
			c.lex.GotoEOL()
			continue
		}

		if c.overCapacity() {
			return true
		}

		c.iteration.NewGroup()
		c.iteration.Append(first.Text)
		for {
			t := c.getTokenRaw()
			if t.Kind == token.Invalid {
				break
			}
			c.iteration.Append(t.Text)
		}
		c.lex.GotoEOL()

		switch first.Kind {
		case token.ForBegin:
			n++
		case token.ForEnd:
			if n == 0 {
				return false
			}
			n--
		}
	}
	return true
}

// preprocIterNest scans already-captured groups starting at start,
// tracking FOR/FOR_END nesting, and returns the index of the matching
// FOR_END group (exclusive upper bound for replay).
func (c *Context) preprocIterNest(start int) (end int, fail bool) {
	n := 0
	total := c.iteration.Len()
	for i := start; i < total; i++ {
		words := c.iteration.Group(i)
		if len(words) == 0 {
			continue
		}
		switch token.Classify(words[0], false) {
		case token.ForBegin:
			n++
		case token.ForEnd:
			if n == 0 {
				return i, false
			}
			n--
		}
	}
	return total, true
}
