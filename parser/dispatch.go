package parser

import "github.com/kettlebell/cfgscript/internal/lang/token"

// ParseSequence reads and dispatches one logical source line. It is
// the Go rendering of original_source/src/sequence.c:sequence_parse,
// itself shaped like sqlparser/batch.go's Batch.Parse leader-token
// switch (vippsas/sqlcode).
func (c *Context) ParseSequence() {
	if c.depth >= MaxDepth {
		c.GotoEOL()
		return
	}
	c.depth++
	defer func() { c.depth-- }()

	first := c.getToken()
	kind := first.Kind

	// SECTION can always re-enable a skipped region; every other
	// sequence is suppressed while skipSequences is set.
	if kind != token.SectionBegin && c.skipSequences {
		kind = token.Invalid
	}

	switch kind {
	case token.VarAppend, token.VarPrepend, token.VarMerge:
		c.combineVar(kind)
	case token.VarDeclaration:
		c.declareVariable()
	case token.EnumDeclaration:
		c.declareEnum()
	case token.SectionBegin:
		c.sectionBegin()
	case token.SectionAdd:
		c.sectionAdd()
	case token.SectionDel:
		c.sectionDel()
	case token.Include:
		c.include()
	case token.ForBegin:
		c.iterate()
	case token.ForEnd:
		// FOR_END is only meaningful while preproc_iter_new/_nest
		// scan raw tokens looking for the matching close; encountered
		// directly here (outside that scan) it is a no-op.
	case token.Seed:
		c.seed()
	case token.Print:
		c.print()
	case token.Restrict:
		c.restricted = true
	case token.Invalid:
		// no-op
	default:
		c.declareResource(first.Text)
	}

	c.GotoEOL()
}
