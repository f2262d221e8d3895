package mahjong

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Wall is the full tile set: four of every playable tile plus one of each
// animal and flower.
type Wall struct {
	tiles Tiles
	next  int
}

func NewWall() *Wall {
	w := &Wall{}
	for _, t := range AllTiles() {
		copies := 1
		if t.IsPlayable() {
			copies = 4
		}
		for i := 0; i < copies; i++ {
			w.tiles = append(w.tiles, t)
		}
	}
	return w
}

// Shuffle reorders the wall and starts drawing from the front again.
func (w *Wall) Shuffle(s Shuffler) {
	s.Shuffle(len(w.tiles), func(i, j int) {
		w.tiles[i], w.tiles[j] = w.tiles[j], w.tiles[i]
	})
	w.next = 0
}

func (w *Wall) Draw() (Tile, error) {
	if w.next >= len(w.tiles) {
		return NoTile, ErrWallExhausted
	}
	t := w.tiles[w.next]
	w.next++
	return t, nil
}

func (w *Wall) Remaining() int {
	return len(w.tiles) - w.next
}

func (w *Wall) Len() int {
	return len(w.tiles)
}

// Deal gives every hand 13 playable tiles and the dealer a 14th. Bonus tiles
// are set aside and replaced from the wall.
func (w *Wall) Deal(hands []*Hand, dealer int) error {
	for _, h := range hands {
		for i := 0; i < 13; i++ {
			if err := w.drawPlayable(h); err != nil {
				return err
			}
		}
	}
	if dealer >= 0 && dealer < len(hands) {
		return w.drawPlayable(hands[dealer])
	}
	return nil
}

func (w *Wall) drawPlayable(h *Hand) error {
	for {
		t, err := w.Draw()
		if err != nil {
			return err
		}
		if err := h.Draw(t); err != nil {
			return err
		}
		if t.IsPlayable() {
			return nil
		}
	}
}
