// Package moduleid provides the ModuleId value type used by downstream chunk
// kinds to label a chunk item's runtime identifier.
package moduleid

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Kind distinguishes the two ModuleId representations.
type Kind uint8

const (
	Number Kind = iota
	String
)

// ModuleId is either a non-negative integer or an opaque string. It is a
// value type: two ModuleIds are equal iff their Kind and payload match.
type ModuleId struct {
	kind   Kind
	number uint32
	str    string
}

// Parse produces a ModuleId from its textual form. If id parses as a
// non-negative 32-bit integer it becomes a Number; otherwise it is kept
// verbatim as a String.
func Parse(id string) ModuleId {
	if n, err := strconv.ParseUint(id, 10, 32); err == nil {
		return ModuleId{kind: Number, number: uint32(n)}
	}
	return ModuleId{kind: String, str: id}
}

// NewNumber builds a Number ModuleId directly.
func NewNumber(n uint32) ModuleId {
	return ModuleId{kind: Number, number: n}
}

// NewString builds a String ModuleId directly.
func NewString(s string) ModuleId {
	return ModuleId{kind: String, str: s}
}

func (m ModuleId) Kind() Kind {
	return m.kind
}

// String renders the ModuleId: the decimal form for Number, identity for
// String. Parse(s).String() == s for every s that is the canonical decimal
// form of a uint32, and for every s that does not parse as a uint32; a
// non-canonical number such as "007" parses as Number 7 and renders as "7".
func (m ModuleId) String() string {
	if m.kind == Number {
		return strconv.FormatUint(uint64(m.number), 10)
	}
	return m.str
}

// Hash returns a deterministic digest of the ModuleId's canonical string
// form, suitable as a memoization or cache-sharding key.
func (m ModuleId) Hash() uint64 {
	return xxhash.Sum64String(m.String())
}
