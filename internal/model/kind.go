package model

import (
	"go/types"
	"strings"
)

// Kind is the closed set of primitive field kinds a companion knows how to
// clear and copy. Anything else is KindUnsupported.
type Kind int

const (
	KindUnsupported Kind = iota // zero value: not one of the primitive kinds
	KindBoolean
	KindByte
	KindShort
	KindInt
	KindLong
	KindChar
	KindFloat
	KindDouble

	// KindTotal is the number of kinds, unsupported included
	KindTotal = int(iota)
)

var kindNames = [KindTotal]string{
	KindUnsupported: "unsupported",
	KindBoolean:     "boolean",
	KindByte:        "byte",
	KindShort:       "short",
	KindInt:         "int",
	KindLong:        "long",
	KindChar:        "char",
	KindFloat:       "float",
	KindDouble:      "double",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= KindTotal {
		return kindNames[KindUnsupported]
	}
	return kindNames[k]
}

// Supported reports whether k has an entry in the zero-value table.
func (k Kind) Supported() bool {
	_, ok := k.ZeroLiteral()
	return ok
}

// ZeroLiteral returns the Go literal a field of kind k is reset to.
// char renders as the integer literal 0, not a character literal.
func (k Kind) ZeroLiteral() (string, bool) {
	switch k {
	case KindBoolean:
		return "false", true
	case KindByte, KindShort, KindInt, KindLong, KindChar, KindFloat, KindDouble:
		return "0", true
	default:
		return "", false
	}
}

// ParseKind maps a canonical kind name (as used in schema files) to a Kind.
// Unknown names yield KindUnsupported.
func ParseKind(s string) Kind {
	s = strings.ToLower(strings.TrimSpace(s))
	for k := KindBoolean; int(k) < KindTotal; k++ {
		if kindNames[k] == s {
			return k
		}
	}
	return KindUnsupported
}

// basicKinds maps Go basic type names to kinds by width.
var basicKinds = map[string]Kind{
	"bool":    KindBoolean,
	"int8":    KindByte,
	"uint8":   KindByte,
	"byte":    KindByte,
	"int16":   KindShort,
	"uint16":  KindShort,
	"int32":   KindInt,
	"uint32":  KindInt,
	"int64":   KindLong,
	"uint64":  KindLong,
	"int":     KindLong,
	"uint":    KindLong,
	"uintptr": KindLong,
	"rune":    KindChar,
	"float32": KindFloat,
	"float64": KindDouble,
}

// KindOfIdent resolves a bare Go type identifier. It is used when no type
// information is available.
func KindOfIdent(name string) Kind {
	if k, ok := basicKinds[name]; ok {
		return k
	}
	return KindUnsupported
}

// KindOf resolves a type-checked Go type. Aliases and named types are reduced
// to their underlying basic type; everything that is not basic is unsupported.
func KindOf(t types.Type) Kind {
	if t == nil {
		return KindUnsupported
	}
	// rune and byte only survive as names on the universe aliases, so look
	// at the unaliased type before taking the underlying one.
	if b, ok := types.Unalias(t).(*types.Basic); ok {
		return KindOfIdent(b.Name())
	}
	b, ok := t.Underlying().(*types.Basic)
	if !ok {
		return KindUnsupported
	}
	return KindOfIdent(b.Name())
}
