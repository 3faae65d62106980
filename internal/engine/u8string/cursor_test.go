package u8string

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/u8text/internal/engine/codec"
)

func TestCursorWalk(t *testing.T) {
	s := FromString("a€😀b")

	var offsets []int
	var runes []rune
	for c := s.Begin(); c.Valid(); c.Next() {
		offsets = append(offsets, c.Offset())
		runes = append(runes, c.Rune())
	}
	assert.Equal(t, []int{0, 1, 4, 8}, offsets)
	assert.Equal(t, []rune{'a', '€', '😀', 'b'}, runes)

	c := s.Begin()
	assert.Equal(t, 9, c.Remaining())
	c = c.Plus(2)
	assert.Equal(t, 4, c.Offset())
	assert.Equal(t, 5, c.Remaining())
	assert.True(t, s.Begin().Before(c))
	assert.False(t, c.Before(s.Begin()))
	assert.True(t, c.Plus(2).Equal(s.End()))
	assert.False(t, s.End().Valid())
}

func TestCursorIsMultiPass(t *testing.T) {
	s := FromString("xyz")
	first := s.Begin()
	second := first
	first.Next()
	assert.Equal(t, 'y', first.Rune())
	assert.Equal(t, 'x', second.Rune())
	assert.Equal(t, 'x', s.Begin().Rune())
}

func TestCursorAt(t *testing.T) {
	s := FromString("a€b")
	assert.Equal(t, '€', s.CursorAt(1).Rune())
	assert.Equal(t, 'b', s.CursorAt(4).Rune())
	assert.True(t, s.CursorAt(5).Equal(s.End()))
}

func TestAt(t *testing.T) {
	s := FromString("héllo")
	assert.Equal(t, 'h', s.At(0))
	assert.Equal(t, 'é', s.At(1))
	assert.Equal(t, 'o', s.At(4))
}

func TestIterators(t *testing.T) {
	s := FromString("hé😀")

	var offsets []int
	var runes []rune
	for i, r := range s.All() {
		offsets = append(offsets, i)
		runes = append(runes, r)
	}
	assert.Equal(t, []int{0, 1, 3}, offsets)
	assert.Equal(t, []rune{'h', 'é', '😀'}, runes)

	n := 0
	for range s.Runes() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)

	var want []rune
	for _, r := range "a\xFFb" {
		want = append(want, r)
	}
	assert.Equal(t, want, collect(Sanitize("a\xFFb")))
}

func TestSubstrIdentity(t *testing.T) {
	f := func(rs []rune) bool {
		s := FromRunes(rs)
		return Equal(s.Substr(s.Begin(), s.End()), s) &&
			Equal(s.SubstrFrom(s.Begin()), s) &&
			Equal(s.SubstrN(s.Begin(), s.RuneCount()), s)
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestSubstr(t *testing.T) {
	s := FromString("héllo wörld")
	first := s.Begin().Plus(1)
	last := first.Plus(4)

	assert.Equal(t, "éllo", s.Substr(first, last).String())
	assert.Equal(t, "éllo wörld", s.SubstrFrom(first).String())
	assert.Equal(t, "él", s.SubstrN(first, 2).String())
	assert.Equal(t, "éllo wörld", s.SubstrN(first, 100).String())
	assert.Equal(t, "", s.Substr(first, first).String())
	assert.Equal(t, "", s.SubstrFrom(s.End()).String())
}

func TestFind(t *testing.T) {
	s := FromString("banana 😀 bandana")

	tests := []struct {
		name string
		got  Cursor
		want int
	}{
		{"first na", s.FindString("na", s.Begin()), 2},
		{"next na", s.FindString("na", s.CursorAt(3)), 4},
		{"string", s.Find(FromString("band"), s.Begin()), 12},
		{"byte", s.FindByte('d', s.Begin()), 15},
		{"rune", s.FindRune('😀', s.Begin()), 7},
		{"empty pattern", s.FindString("", s.CursorAt(2)), 2},
		{"missing", s.FindString("xyz", s.Begin()), s.Len()},
		{"missing byte", s.FindByte('z', s.Begin()), s.Len()},
		{"missing rune", s.FindRune('€', s.Begin()), s.Len()},
		{"from end", s.FindByte('b', s.End()), s.Len()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.Offset())
		})
	}

	assert.True(t, s.FindString("xyz", s.Begin()).Equal(s.End()))
	assert.True(t, s.Contains("😀 b"))
	assert.False(t, s.Contains("nab"))
	assert.True(t, s.HasPrefix("ban"))
	assert.True(t, s.HasSuffix("dana"))
	assert.False(t, s.HasSuffix("ban"))
}

func TestFindMatchesOnlyOnBoundaries(t *testing.T) {
	// U+00A2 is C2 A2; U+20A2 is E2 82 A2. Searching for the former must
	// not match the tail of the latter.
	s := FromString("₢")
	assert.True(t, s.FindRune('¢', s.Begin()).Equal(s.End()))
}

func TestReleaseBehaviourWithoutChecks(t *testing.T) {
	if DebugChecks() {
		t.Skip("debug checks enabled")
	}

	s := FromString("ab")
	end := s.End()
	assert.Equal(t, codec.RuneError, end.Rune())
	assert.False(t, end.Next())
	assert.True(t, end.Plus(3).Equal(s.End()))
	assert.Equal(t, codec.RuneError, s.At(5))
	assert.Equal(t, codec.RuneError, s.At(-1))

	u := FromString("a€")
	assert.Equal(t, 1, u.CursorAt(2).Offset())
	assert.Equal(t, u.Len(), u.CursorAt(99).Offset())
	assert.Equal(t, 0, u.CursorAt(-3).Offset())

	// A stale cursor stays memory safe.
	c := s.Begin()
	s.AppendString("cdef")
	assert.Equal(t, 'a', c.Rune())
}
