package cfgscript

import "github.com/kettlebell/cfgscript/parser"

// ErrorKind is the sticky failure state of a Config. It mirrors
// original_source/include/cassette/ccfg.h's `enum cerr`.
type ErrorKind int

const (
	ErrNone ErrorKind = iota
	ErrInvalid
	ErrOverflow
	ErrMemory
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNone:
		return "none"
	case ErrInvalid:
		return "invalid"
	case ErrOverflow:
		return "overflow"
	case ErrMemory:
		return "memory"
	default:
		return "unknown"
	}
}

func fromParserErr(k parser.ErrorKind) ErrorKind {
	switch k {
	case parser.ErrInvalid:
		return ErrInvalid
	case parser.ErrOverflow:
		return ErrOverflow
	case parser.ErrMemory:
		return ErrMemory
	default:
		return ErrNone
	}
}

// placeholder is the single shared instance returned by Placeholder:
// permanently in the ErrInvalid state, safe to call any method on.
var placeholder = newPlaceholder()

func newPlaceholder() *Config {
	cfg := &Config{ctx: parser.NewContext()}
	cfg.ctx.Invalidate()
	return cfg
}

// Placeholder returns the package-level always-invalid Config,
// grounded on ccfg.h's CCFG_PLACEHOLDER / ccfg_placeholder_instance:
// a statically available, always-safe-to-call-into default so an
// embedding program can initialize a field before a real Config is
// available without a nil check at every call site.
func Placeholder() *Config {
	return placeholder
}
