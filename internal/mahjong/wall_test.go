package mahjong

import (
	"math/rand"
	"testing"
)

func TestWall_Shuffle(t *testing.T) {
	w := NewWall()
	if w.Len() != 148 {
		t.Fatalf("expect 148 tiles, got %d", w.Len())
	}

	w.Shuffle(rand.New(rand.NewSource(1)))

	counts := map[Tile]int{}
	for w.Remaining() > 0 {
		tile, err := w.Draw()
		if err != nil {
			t.Fatal(err)
		}
		counts[tile]++
	}
	for _, tile := range AllTiles() {
		expect := 1
		if tile.IsPlayable() {
			expect = 4
		}
		if counts[tile] != expect {
			t.Fatalf("tile %v, expect=%d, got=%d", tile, expect, counts[tile])
		}
	}

	if _, err := w.Draw(); err != ErrWallExhausted {
		t.Fatalf("expect ErrWallExhausted, got %v", err)
	}
}

func TestWall_Deal(t *testing.T) {
	w := NewWall()
	w.Shuffle(rand.New(rand.NewSource(42)))

	hands := []*Hand{NewHand(), NewHand(), NewHand(), NewHand()}
	if err := w.Deal(hands, 2); err != nil {
		t.Fatal(err)
	}

	total := w.Remaining()
	for i, h := range hands {
		c := h.Concealed()
		expect := 13
		if i == 2 {
			expect = 14
		}
		if c.Len() != expect {
			t.Fatalf("hand %d, expect %d concealed tiles, got %d", i, expect, c.Len())
		}
		for _, tile := range h.Bonus() {
			if !tile.IsBonus() {
				t.Fatalf("hand %d holds %v as bonus", i, tile)
			}
		}
		total += c.Len() + len(h.Bonus())
	}
	if total != 148 {
		t.Fatalf("tiles lost while dealing: %d", total)
	}
}

func TestWall_DealExhausted(t *testing.T) {
	w := NewWall()
	hands := make([]*Hand, 12)
	for i := range hands {
		hands[i] = NewHand()
	}
	if err := w.Deal(hands, 0); err != ErrWallExhausted {
		t.Fatalf("expect ErrWallExhausted, got %v", err)
	}
}
