package mahjong

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrIllegalTile   = errors.New("illegal tile")
	ErrWallExhausted = errors.New("no more tiles in wall")
	ErrIllegalMeld   = errors.New("illegal meld type")
)

// InvalidMeldError is returned when a tile group cannot satisfy the shape of
// the meld type it was declared as.
type InvalidMeldError struct {
	Type     MeldType
	Tiles    Tiles
	External Tile
}

func (e *InvalidMeldError) Error() string {
	if e.External == NoTile {
		return fmt.Sprintf("invalid %s meld: tiles=[%v]", e.Type, e.Tiles)
	}
	return fmt.Sprintf("invalid %s meld: tiles=[%v] external=%v", e.Type, e.Tiles, e.External)
}

// TileNotInHandError is returned when more copies of a tile are removed than
// are held.
type TileNotInHandError struct {
	Tile Tile
	Want int
	Have int
}

func (e *TileNotInHandError) Error() string {
	return fmt.Sprintf("tile %v not in hand: want=%d have=%d", e.Tile, e.Want, e.Have)
}
