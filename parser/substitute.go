package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/kettlebell/cfgscript/internal/lang/colorconv"
	"github.com/kettlebell/cfgscript/internal/lang/mathops"
	"github.com/kettlebell/cfgscript/internal/lang/token"
)

// getTokenRaw returns the next raw (unsubstituted) token: replayed
// variable-injection content first if a replay is active, otherwise
// the next word straight off the lexer, or an invalid token once the
// lexer has reached the end of the current line. Grounded on
// original_source/src/context.c:context_get_token_raw.
func (c *Context) getTokenRaw() Token {
	if c.varGroup >= 0 {
		words := c.vars.Group(c.varGroup)
		if c.varIndex < len(words) {
			w := words[c.varIndex]
			c.varIndex++
			if c.varIndex >= len(words) {
				c.varGroup = -1
			}
			return Token{Kind: token.Other, Text: w}
		}
		c.varGroup = -1
	}

	if c.replaying {
		if c.replayIndex < len(c.replayWords) {
			w := c.replayWords[c.replayIndex]
			c.replayIndex++
			return Token{Kind: token.Classify(w, false), Text: w}
		}
		return invalidToken()
	}

	if c.lex.AtEOL() {
		return invalidToken()
	}
	word, ok := c.lex.ReadWord()
	if !ok {
		return invalidToken()
	}
	return Token{Kind: token.Classify(word, false), Text: word}
}

// GotoEOL consumes the remainder of the current line (used by the
// sequence dispatcher after every dispatched sequence, regardless of
// whether the handler itself consumed every token). While replaying a
// captured FOR-loop body line, "the rest of the line" simply means
// the rest of that captured word group.
func (c *Context) GotoEOL() {
	c.varGroup, c.varIndex = -1, 0
	if c.replaying {
		c.replayIndex = len(c.replayWords)
		return
	}
	c.lex.GotoEOL()
	c.lex.ResetLine()
}

// getToken reads and fully substitutes the next token. This is the
// recursive macro expander: grounded on
// original_source/src/substitution.c:dr_subtitution_apply.
func (c *Context) getToken() Token {
	if c.depth >= MaxDepth {
		return invalidToken()
	}
	c.depth++
	defer func() { c.depth-- }()

	raw := c.getTokenRaw()
	return c.substitute(raw)
}

func (c *Context) substitute(raw Token) Token {
	switch {
	case raw.Kind == token.Invalid:
		return invalidToken()

	case raw.Kind == token.Comment:
		return invalidToken()

	case raw.Kind == token.Escape:
		c.lex.ResetLine() // eol_reached = false
		return c.getTokenRaw()

	case raw.Kind == token.Filler:
		return c.getToken()

	case raw.Kind == token.Join:
		return c.substJoin()

	case raw.Kind == token.VarInjection:
		return c.substVarInjection()

	case token.IsComparator(raw.Kind):
		return c.substIf(raw.Kind)

	case token.IsMath(raw.Kind):
		return c.substMath(raw.Kind)

	case token.IsColor(raw.Kind):
		return c.substColor(raw.Kind)

	default:
		return raw
	}
}

func (c *Context) substJoin() Token {
	a := c.getToken()
	if a.Kind == token.Invalid {
		return invalidToken()
	}
	b := c.getToken()
	if b.Kind == token.Invalid {
		return invalidToken()
	}
	joined := a.Text + b.Text
	if len(joined) > MaxWordLenBytes {
		joined = joined[:MaxWordLenBytes]
	}
	return Token{Kind: token.Other, Text: joined}
}

// MaxWordLenBytes mirrors lexer.MaxWordLen for in-engine string
// concatenation (JOIN), which is not itself produced by the lexer so
// needs its own truncation bound.
const MaxWordLenBytes = 1024

func (c *Context) substVarInjection() Token {
	name := c.getToken()
	if name.Kind == token.Invalid {
		return invalidToken()
	}
	idx, ok := c.keysVars.Find(name.Text, varsNamespace)
	if !ok {
		return invalidToken()
	}
	c.varGroup, c.varIndex = int(idx), 0
	return c.getToken()
}

// substIf implements IF_* comparators. Both operands are read as
// numerals first; then both branch tokens are read in source order,
// each fully substituted (which may recurse through further
// operators). The first is returned if the comparison holds,
// otherwise the second; the other one is consumed and discarded.
func (c *Context) substIf(kind token.Kind) Token {
	a, ok := c.getTokenNumeral()
	if !ok {
		return invalidToken()
	}
	b, ok := c.getTokenNumeral()
	if !ok {
		return invalidToken()
	}

	var result bool
	switch kind {
	case token.IfLess:
		result = a < b
	case token.IfLessEq:
		result = a <= b
	case token.IfMore:
		result = a > b
	case token.IfMoreEq:
		result = a >= b
	case token.IfEq:
		result = a == b
	case token.IfNotEq:
		result = a != b
	}

	// The first branch token is always read, regardless of which
	// branch wins: if result is true it becomes the return value and
	// a second token is read only to be discarded; if result is
	// false the first read is itself discarded and a fresh second
	// read becomes the return value.
	first := c.getToken()
	if result {
		c.getToken()
		return first
	}
	return c.getToken()
}

func (c *Context) getTokenNumeral() (float64, bool) {
	t := c.getToken()
	switch t.Kind {
	case token.Invalid:
		return 0, false
	case token.Number:
		return t.Num, true
	default:
		if strings.HasPrefix(t.Text, "#") {
			v, err := strconv.ParseUint(t.Text[1:], 16, 64)
			if err != nil {
				return 0, false
			}
			return float64(v), true
		}
		v, err := strconv.ParseFloat(t.Text, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
}

func (c *Context) substMath(kind token.Kind) Token {
	n := token.Arity(kind)
	var d [3]float64
	for i := 0; i < n; i++ {
		v, ok := c.getTokenNumeral()
		if !ok {
			return invalidToken()
		}
		d[i] = v
	}

	var result float64
	switch kind {
	case token.ConstTimestamp:
		result = float64(time.Now().Unix())
	case token.ConstPi:
		result = mathops.PI
	case token.ConstEuler:
		result = mathops.Euler
	case token.ConstTrue:
		result = mathops.True
	case token.ConstFalse:
		result = mathops.False
	default:
		if n == 1 {
			v, ok := mathops.Unary(kind.String(), d[0])
			if !ok {
				return invalidToken()
			}
			result = v
		} else if n == 2 {
			v, ok := mathops.Binary(kind.String(), d[0], d[1], c.rng)
			if !ok {
				return invalidToken()
			}
			result = v
		} else {
			v, ok := mathops.Ternary(kind.String(), d[0], d[1], d[2])
			if !ok {
				return invalidToken()
			}
			result = v
		}
	}

	return Token{Kind: token.Number, Text: strconv.FormatFloat(result, 'f', 8, 64), Num: result}
}

func (c *Context) substColor(kind token.Kind) Token {
	n := token.Arity(kind)
	var d [3]float64
	for i := 0; i < n; i++ {
		v, ok := c.getTokenNumeral()
		if !ok {
			return invalidToken()
		}
		d[i] = v
	}

	var packed uint32
	switch kind {
	case token.ColorRGB:
		packed = colorconv.FromRGB(d[0], d[1], d[2])
	case token.ColorRGBA:
		// RGBA takes 4 numerals (r,g,b,a); Arity already returned 3
		// for the shared color table entry, so read the 4th here.
		a, ok := c.getTokenNumeral()
		if !ok {
			return invalidToken()
		}
		packed = colorconv.FromRGBA(d[0], d[1], d[2], a)
	case token.ColorMix:
		c1 := colorconv.FromNumeral(d[0])
		c2 := colorconv.FromNumeral(d[1])
		packed = colorconv.Interpolate(c1, c2, d[2])
	}

	return Token{Kind: token.Number, Text: strconv.FormatUint(uint64(packed), 10), Num: float64(packed)}
}
