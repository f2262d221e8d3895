package mahjong

import (
	"github.com/pkg/errors"
)

// Hand is a player's tiles: the concealed multiset, declared melds, bonus
// tiles, and the tiles seen since the last draw. A Hand must not be mutated
// concurrently.
type Hand struct {
	concealed Concealed
	melds     []Meld
	bonus     map[Tile]struct{}
	seen      map[Tile]struct{}
}

func NewHand() *Hand {
	return &Hand{
		bonus: map[Tile]struct{}{},
		seen:  map[Tile]struct{}{},
	}
}

// Draw places a tile in the hand: bonus tiles are set aside, playable tiles
// join the concealed multiset.
func (h *Hand) Draw(t Tile) error {
	if !t.Valid() {
		return errors.Wrapf(ErrIllegalTile, "draw %d", int(t))
	}
	if t.IsBonus() {
		h.bonus[t] = struct{}{}
	} else {
		h.concealed.AddN(t, 1)
	}
	h.seen = map[Tile]struct{}{}
	return nil
}

func (h *Hand) Discard(t Tile) error {
	if err := h.concealed.RemoveN(t, 1); err != nil {
		return errors.Wrap(err, "discard")
	}
	h.seen[t] = struct{}{}
	return nil
}

// Declare exposes a meld, removing its own tiles from the concealed multiset.
// Nothing is removed if any tile is missing.
func (h *Hand) Declare(m Meld) error {
	if len(m.Tiles()) == 0 {
		return &InvalidMeldError{Type: m.Type()}
	}
	need := NewConcealed(m.Own()...)
	for _, t := range need.Distinct() {
		if have := h.concealed.Count(t); have < need.Count(t) {
			return errors.Wrapf(&TileNotInHandError{Tile: t, Want: need.Count(t), Have: have}, "declare %v", m)
		}
	}
	for _, t := range need.Distinct() {
		// counts checked above
		if err := h.concealed.RemoveN(t, need.Count(t)); err != nil {
			panic(err)
		}
	}
	h.melds = append(h.melds, m)
	return nil
}

// ClaimOptions lists every meld the hand could declare with the discarded
// tile t: triplet, exposed quad and each sequence.
func (h *Hand) ClaimOptions(t Tile) []Meld {
	if !t.IsPlayable() {
		return nil
	}

	var (
		options []Meld
		count   = h.concealed.Count(t)
	)

	if count >= 2 {
		if m, err := NewMeld(Tiles{t, t}, t, Triplet); err == nil {
			options = append(options, m)
		}
	}
	if count >= 3 {
		if m, err := NewMeld(Tiles{t, t, t}, t, ExposedQuad); err == nil {
			options = append(options, m)
		}
	}
	for _, w := range sequenceWindows(t) {
		if !h.concealed.Contains(w[0]) || !h.concealed.Contains(w[1]) {
			continue
		}
		if m, err := NewMeld(Tiles{w[0], w[1]}, t, Sequence); err == nil {
			options = append(options, m)
		}
	}
	return options
}

// ConcealedQuads lists a concealed quad for every tile held four times.
func (h *Hand) ConcealedQuads() []Meld {
	var quads []Meld
	for _, t := range h.concealed.Distinct() {
		if h.concealed.Count(t) != 4 {
			continue
		}
		if m, err := NewMeld(Tiles{t, t, t, t}, NoTile, ConcealedQuad); err == nil {
			quads = append(quads, m)
		}
	}
	return quads
}

// Concealed returns a copy of the concealed multiset.
func (h *Hand) Concealed() Concealed {
	return h.concealed
}

func (h *Hand) Melds() []Meld {
	ret := make([]Meld, len(h.melds))
	copy(ret, h.melds)
	return ret
}

func (h *Hand) Bonus() Tiles {
	return setTiles(h.bonus)
}

func (h *Hand) Seen() Tiles {
	return setTiles(h.seen)
}

func setTiles(set map[Tile]struct{}) Tiles {
	tiles := make(Tiles, 0, len(set))
	for t := range set {
		tiles = append(tiles, t)
	}
	tiles.Sort()
	return tiles
}

// sequenceWindows returns the neighbour pairs {-2,-1}, {-1,+1}, {+1,+2} of t
// that exist within its suit.
func sequenceWindows(t Tile) [][2]Tile {
	var (
		prev     = t.Prev()
		prevPrev = prev.Prev()
		next     = t.Next()
		nextNext = next.Next()
	)

	var windows [][2]Tile
	for _, w := range [][2]Tile{{prevPrev, prev}, {prev, next}, {next, nextNext}} {
		if w[0] == NoTile || w[1] == NoTile {
			continue
		}
		windows = append(windows, w)
	}
	return windows
}
