package mahjong

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNewMeld(t *testing.T) {
	cases := []struct {
		tiles    Tiles
		external Tile
		typ      MeldType
		ok       bool
	}{
		{Tiles{Wan(3), Wan(1), Wan(2)}, NoTile, Sequence, true},
		{Tiles{Wan(2), Wan(3)}, Wan(1), Sequence, true},
		{Tiles{Wan(1), Wan(3)}, Wan(2), Sequence, true},
		{Tiles{Wan(8), Wan(9)}, Suo(1), Sequence, false},
		{Tiles{Wan(9), Suo(1), Suo(2)}, NoTile, Sequence, false},
		{Tiles{East.Tile(), South.Tile(), West.Tile()}, NoTile, Sequence, false},
		{Tiles{Zhong, Fa, Baiban}, NoTile, Sequence, false},
		{Tiles{Wan(1), Wan(2), Wan(3), Wan(4)}, NoTile, Sequence, false},
		{Tiles{Wan(1), Wan(2)}, NoTile, Sequence, false},

		{Tiles{Zhong, Zhong, Zhong}, NoTile, Triplet, true},
		{Tiles{Zhong, Zhong}, Zhong, Triplet, true},
		{Tiles{Zhong, Zhong}, Fa, Triplet, false},
		{Tiles{Cat, Cat, Cat}, NoTile, Triplet, false},

		{Tiles{Suo(5), Suo(5), Suo(5)}, Suo(5), ExposedQuad, true},
		{Tiles{Suo(5), Suo(5), Suo(5), Suo(5)}, NoTile, ExposedQuad, false},
		{Tiles{Suo(5), Suo(5), Suo(5), Suo(5)}, NoTile, ConcealedQuad, true},
		{Tiles{Suo(5), Suo(5), Suo(5)}, Suo(5), ConcealedQuad, false},

		{Tiles{Tong(7), Tong(7)}, NoTile, Pair, true},
		{Tiles{Tong(7)}, Tong(7), Pair, false},
		{Tiles{Tong(7), Tong(8)}, NoTile, Pair, false},

		{Tiles{}, Wan(1), Triplet, false},
		{Tiles{RedFlower(East), RedFlower(East)}, NoTile, Pair, false},
	}

	for i, c := range cases {
		m, err := NewMeld(c.tiles, c.external, c.typ)
		if (err == nil) != c.ok {
			t.Fatalf("index: %d, %s %v +%v, expect ok=%t, got err=%v", i, c.typ, c.tiles, c.external, c.ok, err)
		}
		if err != nil {
			if _, ok := errors.Cause(err).(*InvalidMeldError); !ok {
				t.Fatalf("index: %d, expect *InvalidMeldError, got %T", i, err)
			}
			continue
		}
		if m.Type() != c.typ || m.External() != c.external {
			t.Fatalf("index: %d, unexpected meld %v", i, m)
		}
		if m.Suit() != m.First().Suit() {
			t.Fatalf("index: %d, meld suit %v, first tile suit %v", i, m.Suit(), m.First().Suit())
		}
	}
}

func TestMeld_Tiles(t *testing.T) {
	m, err := NewMeld(Tiles{Tong(4), Tong(6)}, Tong(5), Sequence)
	if err != nil {
		t.Fatal(err)
	}

	all := m.Tiles()
	if len(all) != 3 || all[0] != Tong(4) || all[1] != Tong(5) || all[2] != Tong(6) {
		t.Fatalf("unexpected tiles: %v", all)
	}

	own := m.Own()
	if len(own) != 2 || own.Contains(Tong(5)) {
		t.Fatalf("unexpected own tiles: %v", own)
	}

	// 返回的是副本
	all[0] = Wan(1)
	if m.First() != Tong(4) {
		t.Fatalf("meld mutated through Tiles()")
	}

	same, _ := NewMeld(Tiles{Tong(6), Tong(4)}, Tong(5), Sequence)
	other, _ := NewMeld(Tiles{Tong(4), Tong(5), Tong(6)}, NoTile, Sequence)
	if !m.Equals(same) || m.Equals(other) {
		t.Fatalf("unexpected equality: %v %v %v", m, same, other)
	}
}

func TestParseMeldType(t *testing.T) {
	cases := []struct {
		name string
		typ  MeldType
	}{
		{"sequence", Sequence},
		{"chi", Sequence},
		{"Pong", Triplet},
		{"exposed_quad", ExposedQuad},
		{"angang", ConcealedQuad},
		{"eye", Pair},
	}
	for _, c := range cases {
		typ, err := ParseMeldType(c.name)
		if err != nil {
			t.Fatal(err)
		}
		if typ != c.typ {
			t.Fatalf("parse %q, expect=%v, got=%v", c.name, c.typ, typ)
		}
	}
	if _, err := ParseMeldType("kong"); errors.Cause(err) != ErrIllegalMeld {
		t.Fatalf("expect ErrIllegalMeld, got %v", err)
	}
}
