package core

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrInvalidSeed is returned when seed text is not hexadecimal.
var ErrInvalidSeed = errors.New("invalid seed")

// Clock supplies the current time for default seeds.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// Seed is the single value a run is derived from.
type Seed struct {
	v uint64
}

// NewSeed wraps v.
func NewSeed(v uint64) Seed {
	return Seed{v: v}
}

// DefaultSeed returns the clock's Unix time in seconds as a seed.
func DefaultSeed(clock Clock) Seed {
	if clock == nil {
		clock = SystemClock
	}
	return Seed{v: uint64(clock.Now().Unix())}
}

// ParseSeed parses unprefixed hexadecimal text of any case.
func ParseSeed(s string) (Seed, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return Seed{}, fmt.Errorf("%w: %s", ErrInvalidSeed, s)
	}
	return Seed{v: v}, nil
}

// Value returns the raw seed.
func (s Seed) Value() uint64 { return s.v }

// String formats the seed as lowercase hex padded to at least 8 digits.
// Values wider than 32 bits print in full.
func (s Seed) String() string {
	return fmt.Sprintf("%08x", s.v)
}

// MarshalText implements encoding.TextMarshaler.
func (s Seed) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Seed) UnmarshalText(text []byte) error {
	parsed, err := ParseSeed(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
