// Package themes reads palettes from a flat file of fixed-size records.
//
// Each record is five big-endian 32-bit words, one per color, whose low three
// bytes are RGB. There is no header.
package themes

import (
	"encoding/binary"
	"errors"
	"fmt"

	"ca1/internal/core"
)

const (
	// ThemeColors is the number of colors in a palette.
	ThemeColors = 5
	// RecordSize is the byte length of one palette record.
	RecordSize = ThemeColors * 4
)

var (
	// ErrIndexOutOfRange is returned for indexes outside [0, Len).
	ErrIndexOutOfRange = errors.New("theme index out of range")
	// ErrEmpty is returned when picking from a store with no records.
	ErrEmpty = errors.New("theme store is empty")
)

// Theme is one palette. Entry 4 is the background; symbols 1-3 select
// entries 1-3.
type Theme [ThemeColors]core.Color

// Background returns the palette entry painted behind every cell.
func (t Theme) Background() core.Color { return t[ThemeColors-1] }

// Picker draws uniform indexes.
type Picker interface {
	IntN(n int) int
}

// Store is a read-only view over palette records. It is safe for concurrent
// readers.
type Store struct {
	mem   []byte
	close func() error
}

// FromBytes returns a store over b. The caller must not modify b afterwards.
func FromBytes(b []byte) *Store {
	return &Store{mem: b}
}

// Open maps the theme file at path read-only.
func Open(path string) (*Store, error) {
	mem, closer, err := mapFile(path)
	if err != nil {
		return nil, fmt.Errorf("open themes %s: %w", path, err)
	}
	return &Store{mem: mem, close: closer}, nil
}

// Close releases the mapping. The store must not be used afterwards.
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	err := s.close()
	s.close = nil
	s.mem = nil
	return err
}

// Len returns the number of complete records. A trailing partial record is
// not addressable.
func (s *Store) Len() int { return len(s.mem) / RecordSize }

// IsEmpty reports whether the store holds no records.
func (s *Store) IsEmpty() bool { return s.Len() == 0 }

// Get decodes the palette at idx.
func (s *Store) Get(idx int) (Theme, error) {
	if idx < 0 || idx >= s.Len() {
		return Theme{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, idx, s.Len())
	}
	rec := s.mem[idx*RecordSize : (idx+1)*RecordSize]
	var t Theme
	for i := range t {
		t[i] = core.FromRGB32(binary.BigEndian.Uint32(rec[i*4:]))
	}
	return t, nil
}

// Pick draws a uniform index from p and returns it with its palette.
func (s *Store) Pick(p Picker) (int, Theme, error) {
	if s.IsEmpty() {
		return 0, Theme{}, ErrEmpty
	}
	idx := p.IntN(s.Len())
	t, err := s.Get(idx)
	return idx, t, err
}
