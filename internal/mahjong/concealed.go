package mahjong

import (
	"bytes"
	"fmt"
)

// Concealed counts the tiles held privately, indexed by Tile. A zero count
// means the tile is absent. Being an array, assignment copies it, so search
// branches never share state.
type Concealed [MaxTileIndex + 1]int

func NewConcealed(tiles ...Tile) Concealed {
	c := Concealed{}
	for _, t := range tiles {
		c.AddN(t, 1)
	}
	return c
}

func (c *Concealed) String() string {
	buf := &bytes.Buffer{}

	for i, count := range c {
		if count == 0 {
			continue
		}
		fmt.Fprintf(buf, "%s:%d ", Tile(i), count)
	}

	return buf.String()
}

// AddN adds n copies of t. Tiles outside the index range are ignored.
func (c *Concealed) AddN(t Tile, n int) {
	if t <= NoTile || int(t) > MaxTileIndex || n <= 0 {
		return
	}
	c[t] += n
}

// RemoveN removes n copies of t, or nothing at all if fewer than n are held
// or n is not positive.
func (c *Concealed) RemoveN(t Tile, n int) error {
	have := c.Count(t)
	if n <= 0 || have < n {
		return &TileNotInHandError{Tile: t, Want: n, Have: have}
	}
	c[t] -= n
	return nil
}

func (c *Concealed) Count(t Tile) int {
	if t <= NoTile || int(t) > MaxTileIndex {
		return 0
	}
	return c[t]
}

func (c *Concealed) Contains(t Tile) bool {
	return c.Count(t) > 0
}

// Len returns the total number of tiles.
func (c *Concealed) Len() int {
	n := 0
	for _, count := range c {
		n += count
	}
	return n
}

func (c *Concealed) Empty() bool {
	for _, count := range c {
		if count > 0 {
			return false
		}
	}
	return true
}

// First returns the lowest tile held, or NoTile.
func (c *Concealed) First() Tile {
	for i, count := range c {
		if count > 0 {
			return Tile(i)
		}
	}
	return NoTile
}

// Distinct returns each held tile once, ascending.
func (c *Concealed) Distinct() Tiles {
	tiles := Tiles{}
	for i, count := range c {
		if count > 0 {
			tiles = append(tiles, Tile(i))
		}
	}
	return tiles
}

// Tiles returns every held tile with multiplicity, ascending.
func (c *Concealed) Tiles() Tiles {
	tiles := Tiles{}
	for i, count := range c {
		for j := 0; j < count; j++ {
			tiles = append(tiles, Tile(i))
		}
	}
	return tiles
}
