// Package flags provides a typed bit-set over an enumerated flag type.
//
// Define the enumeration as power-of-two constants of an unsigned type, then hold a set of them in a
// Flags value:
//
//	type Option uint8
//
//	const (
//		OptionA Option = 1 << iota
//		OptionB
//	)
//
//	var opts flags.Flags[Option]
//	opts.Set(OptionA)
package flags

import (
	"fmt"
	"math/bits"
	"strings"

	"golang.org/x/exp/constraints"
)

// Flags is a set of flags of type E. The zero value is the empty set.
type Flags[E constraints.Unsigned] struct {
	bits E
}

// New returns a set holding the given flags.
func New[E constraints.Unsigned](flags ...E) Flags[E] {
	var f Flags[E]
	f.Set(flags...)
	return f
}

// Set adds flags to the set.
func (f *Flags[E]) Set(flags ...E) {
	for _, flag := range flags {
		f.bits |= flag
	}
}

// Clear removes flags from the set.
func (f *Flags[E]) Clear(flags ...E) {
	for _, flag := range flags {
		f.bits &^= flag
	}
}

// Toggle flips flags in the set.
func (f *Flags[E]) Toggle(flags ...E) {
	for _, flag := range flags {
		f.bits ^= flag
	}
}

// Reset empties the set.
func (f *Flags[E]) Reset() {
	f.bits = 0
}

// Test reports whether every bit of flag is set.
func (f Flags[E]) Test(flag E) bool {
	return f.bits&flag == flag
}

// Any reports whether at least one bit of mask is set.
func (f Flags[E]) Any(mask E) bool {
	return f.bits&mask != 0
}

// None reports whether the set is empty.
func (f Flags[E]) None() bool {
	return f.bits == 0
}

// Count returns the number of bits set.
func (f Flags[E]) Count() int {
	return bits.OnesCount64(uint64(f.bits))
}

// Value returns the raw bits.
func (f Flags[E]) Value() E {
	return f.bits
}

// Names lists the names of the set flags, in the order given by names. Bits with no entry in names
// are ignored.
func (f Flags[E]) Names(names []Named[E]) []string {
	var out []string
	for _, n := range names {
		if n.Flag != 0 && f.Test(n.Flag) {
			out = append(out, n.Name)
		}
	}
	return out
}

// Describe renders the set as "A|B" using names, or "0x.." for bits without a name.
func (f Flags[E]) Describe(names []Named[E]) string {
	if f.None() {
		return "none"
	}
	parts := f.Names(names)
	var known E
	for _, n := range names {
		known |= n.Flag
	}
	if rest := f.bits &^ known; rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint64(rest)))
	}
	return strings.Join(parts, "|")
}

// Named pairs a flag with its display name.
type Named[E constraints.Unsigned] struct {
	Flag E
	Name string
}
