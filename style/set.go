package style

import (
	"errors"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// Id is a stable small identifier into a Set. It is wide enough to exceed
// any single page's cell count (16 bits, up to 65535 entries).
type Id uint16

// Default is the reserved identifier for the all-default style. It is
// never returned by Add and the default style is never ref-counted.
const Default Id = 0

// ErrOutOfSpace is returned by Add when every slot is occupied by a
// distinct, still-referenced style.
var ErrOutOfSpace = errors.New("style: set is out of space")

// entry is one slot of the Set's backing arena. Its layout has no padding
// requirements beyond normal Go struct alignment: unlike Style.Pack, it is
// never hashed directly, only stored.
type entry struct {
	style    Style
	hash     uint64
	refcount uint16
	occupied bool
}

const entrySize = int(unsafe.Sizeof(entry{}))

// Layout computes the arena size, slot count, and required base alignment
// for a given capacity.
type Layout struct {
	Capacity  int
	EntrySize int
	BufSize   int
	Align     int // required base alignment of the backing buffer
}

// NewLayout computes a Layout for at least capacity distinct styles. The
// Set tolerates capacities of at least 16,384 without overflowing its
// internal (uint16-width) counters, since Id itself is 16 bits.
func NewLayout(capacity int) Layout {
	if capacity <= 0 {
		capacity = 1
	}
	if capacity > int(^Id(0)) {
		capacity = int(^Id(0))
	}
	return Layout{
		Capacity:  capacity,
		EntrySize: entrySize,
		BufSize:   capacity * entrySize,
		Align:     int(unsafe.Alignof(entry{})),
	}
}

// Config reserves room for future tuning knobs (e.g. max load factor)
// without changing Set's construction signature.
type Config struct{}

// Set is a fixed-capacity, ref-counted hash set of [Style] values, backed
// by a single contiguous buffer sized by a [Layout]. Lookup hashes the
// packed 128-bit representation of a Style with a 64-bit non-cryptographic
// hash (xxhash) and resolves collisions by linear probing with lazy
// tombstones: a slot whose refcount has reached zero is reusable by a
// later Add without disturbing the probe chains of styles still live.
type Set struct {
	layout  Layout
	entries []entry
}

// New constructs a Set in-place on buf, which must be at least
// layout.BufSize bytes (and is usually layout.BufSize exactly, as returned
// by NewLayout). It performs no dynamic allocation after construction.
func New(buf []byte, layout Layout, _ Config) (*Set, error) {
	if len(buf) < layout.BufSize {
		return nil, errors.New("style: buffer smaller than layout requires")
	}
	if layout.Align > 0 && uintptr(unsafe.Pointer(&buf[0]))%uintptr(layout.Align) != 0 {
		return nil, errors.New("style: buffer not aligned to layout requirement")
	}
	entries := unsafe.Slice((*entry)(unsafe.Pointer(&buf[0])), layout.Capacity)
	for i := range entries {
		entries[i] = entry{}
	}
	return &Set{layout: layout, entries: entries}, nil
}

func packedHash(s Style) uint64 {
	packed := s.Pack()
	return xxhash.Sum64(packed[:])
}

// Add interns style and returns its stable id. Re-adding a style equal to
// one already present increments its refcount and returns the same id.
// Callers must not call Add for the default style; doing so returns
// [Default] without touching the arena, matching the spec's sentinel
// behavior for that case.
func (s *Set) Add(style Style) (Id, error) {
	if style.IsDefault() {
		return Default, nil
	}

	h := packedHash(style)
	n := len(s.entries)
	start := int(h % uint64(n))
	tombstone := -1

	for i := 0; i < n; i++ {
		idx := (start + i) % n
		e := &s.entries[idx]
		if !e.occupied {
			// Never-used slot: the style cannot appear further down the
			// probe chain, so stop here.
			if tombstone < 0 {
				tombstone = idx
			}
			break
		}
		if e.refcount > 0 {
			if e.hash == h && e.style == style {
				e.refcount++
				return Id(idx + 1), nil
			}
			continue
		}
		if tombstone < 0 {
			tombstone = idx
		}
	}

	if tombstone < 0 {
		return Default, ErrOutOfSpace
	}
	s.entries[tombstone] = entry{style: style, hash: h, refcount: 1, occupied: true}
	return Id(tombstone + 1), nil
}

// Get returns the style stored at id by value. id must have been returned
// by a prior Add on this Set and still be referenced; an unknown id is a
// caller precondition violation and panics.
func (s *Set) Get(id Id) Style {
	if id == Default {
		return Style{}
	}
	e := s.entryFor(id)
	if !e.occupied || e.refcount == 0 {
		panic("style: Get of unknown or released id")
	}
	return e.style
}

// Release decrements id's refcount. When it reaches zero the slot becomes
// reusable by a future Add. Releasing the default id is a no-op. Releasing
// an id whose refcount is already zero is undefined, per the spec.
func (s *Set) Release(id Id) {
	if id == Default {
		return
	}
	e := s.entryFor(id)
	if e.refcount > 0 {
		e.refcount--
	}
}

// RefCount returns id's current reference count, for tests and diagnostics.
func (s *Set) RefCount(id Id) uint16 {
	if id == Default {
		return 0
	}
	return s.entryFor(id).refcount
}

func (s *Set) entryFor(id Id) *entry {
	idx := int(id) - 1
	if idx < 0 || idx >= len(s.entries) {
		panic("style: id out of range")
	}
	return &s.entries[idx]
}
