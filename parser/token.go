package parser

import "github.com/kettlebell/cfgscript/internal/lang/token"

// Token is the result of reading one word from a Context, either raw
// or fully substituted. Num is only meaningful when Kind ==
// token.Number (set by math/color operators that produced a numeric
// result directly, letting numeral coercion skip re-parsing it).
type Token struct {
	Kind token.Kind
	Text string
	Num  float64
}

func invalidToken() Token { return Token{Kind: token.Invalid} }
