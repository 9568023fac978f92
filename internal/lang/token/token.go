// Package token classifies raw lexer words into the fixed set of
// operator and sequence-leader kinds the substitution engine and
// sequence dispatcher switch on.
package token

// Kind identifies what a raw word means to the substitution engine or
// the sequence dispatcher. Most STRING/NUMBER words carry no special
// kind and fall through to Other.
type Kind int

const (
	Invalid Kind = iota

	Other  // plain STRING, returned as-is by the substitution engine
	Number // a numeric result produced by a math or color operator

	Comment
	EOF
	Escape
	Filler
	Join
	VarInjection

	IfLess
	IfLessEq
	IfMore
	IfMoreEq
	IfEq
	IfNotEq

	ConstTimestamp
	ConstPi
	ConstEuler
	ConstTrue
	ConstFalse

	Sqrt
	Cbrt
	Abs
	Ceil
	Floor
	Round
	Cos
	Sin
	Tan
	Acos
	Asin
	Atan
	Cosh
	Sinh
	Ln
	Log10

	Add
	Sub
	Mul
	Div
	Mod
	Pow
	Max
	Min
	Random

	Limit
	Interpolate

	ColorRGB
	ColorRGBA
	ColorMix

	VarDeclaration
	VarAppend
	VarPrepend
	VarMerge
	EnumDeclaration
	SectionBegin
	SectionAdd
	SectionDel
	Include
	ForBegin
	ForEnd
	Seed
	Print
	Restrict

	sentinelKind
)

func (k Kind) String() string {
	return kindToDescription[k]
}

func init() {
	for k := Kind(1); k < sentinelKind; k++ {
		if kindToDescription[k] == "" {
			panic("token: kindToDescription is missing an entry")
		}
	}
}

var kindToDescription = map[Kind]string{
	Other:  "Other",
	Number: "Number",

	Comment:      "Comment",
	EOF:          "EOF",
	Escape:       "Escape",
	Filler:       "Filler",
	Join:         "Join",
	VarInjection: "VarInjection",

	IfLess:   "IfLess",
	IfLessEq: "IfLessEq",
	IfMore:   "IfMore",
	IfMoreEq: "IfMoreEq",
	IfEq:     "IfEq",
	IfNotEq:  "IfNotEq",

	ConstTimestamp: "ConstTimestamp",
	ConstPi:        "ConstPi",
	ConstEuler:     "ConstEuler",
	ConstTrue:      "ConstTrue",
	ConstFalse:     "ConstFalse",

	Sqrt:  "Sqrt",
	Cbrt:  "Cbrt",
	Abs:   "Abs",
	Ceil:  "Ceil",
	Floor: "Floor",
	Round: "Round",
	Cos:   "Cos",
	Sin:   "Sin",
	Tan:   "Tan",
	Acos:  "Acos",
	Asin:  "Asin",
	Atan:  "Atan",
	Cosh:  "Cosh",
	Sinh:  "Sinh",
	Ln:    "Ln",
	Log10: "Log10",

	Add:    "Add",
	Sub:    "Sub",
	Mul:    "Mul",
	Div:    "Div",
	Mod:    "Mod",
	Pow:    "Pow",
	Max:    "Max",
	Min:    "Min",
	Random: "Random",

	Limit:       "Limit",
	Interpolate: "Interpolate",

	ColorRGB:  "ColorRGB",
	ColorRGBA: "ColorRGBA",
	ColorMix:  "ColorMix",

	VarDeclaration:  "VarDeclaration",
	VarAppend:       "VarAppend",
	VarPrepend:      "VarPrepend",
	VarMerge:        "VarMerge",
	EnumDeclaration: "EnumDeclaration",
	SectionBegin:    "SectionBegin",
	SectionAdd:      "SectionAdd",
	SectionDel:      "SectionDel",
	Include:         "Include",
	ForBegin:        "ForBegin",
	ForEnd:          "ForEnd",
	Seed:            "Seed",
	Print:           "Print",
	Restrict:        "Restrict",
}

// keywords maps the fixed surface spelling (SPEC_FULL.md §4.8) to its
// Kind. Lookup is whole-token, never prefix or substring based.
var keywords = map[string]Kind{
	"//": Comment,
	`\`:  Escape,
	"?":  Filler,
	"~":  Join,
	"$":  VarInjection,

	"?<":  IfLess,
	"?<=": IfLessEq,
	"?>":  IfMore,
	"?>=": IfMoreEq,
	"?=":  IfEq,
	"?!=": IfNotEq,

	"TIMESTAMP": ConstTimestamp,
	"PI":        ConstPi,
	"EULER":     ConstEuler,
	"TRUE":      ConstTrue,
	"FALSE":     ConstFalse,

	"SQRT":  Sqrt,
	"CBRT":  Cbrt,
	"ABS":   Abs,
	"CEIL":  Ceil,
	"FLOOR": Floor,
	"ROUND": Round,
	"COS":   Cos,
	"SIN":   Sin,
	"TAN":   Tan,
	"ACOS":  Acos,
	"ASIN":  Asin,
	"ATAN":  Atan,
	"COSH":  Cosh,
	"SINH":  Sinh,
	"LN":    Ln,
	"LOG":   Log10,

	"ADD":    Add,
	"SUB":    Sub,
	"MUL":    Mul,
	"DIV":    Div,
	"MOD":    Mod,
	"POW":    Pow,
	"MAX":    Max,
	"MIN":    Min,
	"RANDOM": Random,

	"LIMIT":       Limit,
	"INTERPOLATE": Interpolate,

	"RGB":       ColorRGB,
	"RGBA":      ColorRGBA,
	"COLOR_MIX": ColorMix,

	"LET":         VarDeclaration,
	"APPEND":      VarAppend,
	"PREPEND":     VarPrepend,
	"MERGE":       VarMerge,
	"ENUM":        EnumDeclaration,
	"SECTION":     SectionBegin,
	"SECTION_ADD": SectionAdd,
	"SECTION_DEL": SectionDel,
	"INCLUDE":     Include,
	"FOR":         ForBegin,
	"FOR_END":     ForEnd,
	"SEED":        Seed,
	"PRINT":       Print,
	"RESTRICT":    Restrict,
}

// Classify returns the Kind of a raw word. Words not found in the
// keyword table are plain STRING tokens (Other), bare numerals
// included; the parser coerces numerals itself where an operator
// needs one (parser's getTokenNumeral).
func Classify(word string, eof bool) Kind {
	if eof {
		return EOF
	}
	if k, ok := keywords[word]; ok {
		return k
	}
	return Other
}

// Arity of math/color operators that take a fixed number of numeral
// operands, used by the substitution engine to know how many tokens
// to pull. Returns -1 for kinds that are not fixed-arity operators.
// ColorRGBA reports 3: the substitution engine reads its fourth
// (alpha) operand itself.
func Arity(k Kind) int {
	switch k {
	case ConstTimestamp, ConstPi, ConstEuler, ConstTrue, ConstFalse:
		return 0
	case Sqrt, Cbrt, Abs, Ceil, Floor, Round, Cos, Sin, Tan, Acos, Asin, Atan, Cosh, Sinh, Ln, Log10:
		return 1
	case Add, Sub, Mul, Div, Mod, Pow, Max, Min, Random:
		return 2
	case Limit, Interpolate:
		return 3
	case ColorRGB:
		return 3
	case ColorRGBA, ColorMix:
		return 3
	default:
		return -1
	}
}

// IsMath reports whether k is handled by the plain numeric math table
// (as opposed to the color table).
func IsMath(k Kind) bool {
	switch k {
	case ConstTimestamp, ConstPi, ConstEuler, ConstTrue, ConstFalse,
		Sqrt, Cbrt, Abs, Ceil, Floor, Round, Cos, Sin, Tan, Acos, Asin, Atan, Cosh, Sinh, Ln, Log10,
		Add, Sub, Mul, Div, Mod, Pow, Max, Min, Random,
		Limit, Interpolate:
		return true
	default:
		return false
	}
}

// IsColor reports whether k is one of the color-producing operators.
func IsColor(k Kind) bool {
	switch k {
	case ColorRGB, ColorRGBA, ColorMix:
		return true
	default:
		return false
	}
}

// IsComparator reports whether k is one of the IF_* comparison kinds.
func IsComparator(k Kind) bool {
	switch k {
	case IfLess, IfLessEq, IfMore, IfMoreEq, IfEq, IfNotEq:
		return true
	default:
		return false
	}
}

// IsSequenceLeader reports whether k may begin a sequence line in the
// dispatcher (parser/dispatch.go).
func IsSequenceLeader(k Kind) bool {
	switch k {
	case VarAppend, VarPrepend, VarMerge, VarDeclaration, EnumDeclaration,
		SectionBegin, SectionAdd, SectionDel, Include, ForBegin, ForEnd,
		Seed, Print, Restrict:
		return true
	default:
		return false
	}
}
