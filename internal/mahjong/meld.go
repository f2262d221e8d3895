package mahjong

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type MeldType int

const (
	Sequence      MeldType = iota // 吃
	Triplet                       // 碰
	ExposedQuad                   // 明杠
	ConcealedQuad                 // 暗杠
	Pair                          // 将
)

var meldTypeNames = [...]string{
	Sequence:      "sequence",
	Triplet:       "triplet",
	ExposedQuad:   "exposed_quad",
	ConcealedQuad: "concealed_quad",
	Pair:          "pair",
}

// 别名, 方便命令行输入
var meldTypeAliases = map[string]MeldType{
	"chi":    Sequence,
	"pong":   Triplet,
	"gang":   ExposedQuad,
	"angang": ConcealedQuad,
	"eye":    Pair,
}

func (mt MeldType) String() string {
	if mt < Sequence || mt > Pair {
		return fmt.Sprintf("meld(%d)", int(mt))
	}
	return meldTypeNames[mt]
}

func ParseMeldType(s string) (MeldType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for mt, name := range meldTypeNames {
		if name == s {
			return MeldType(mt), nil
		}
	}
	if mt, ok := meldTypeAliases[s]; ok {
		return mt, nil
	}
	return 0, errors.Wrapf(ErrIllegalMeld, "%q", s)
}

// Meld is an immutable, validated tile group. Tiles are kept sorted and
// include the external tile when one was claimed.
type Meld struct {
	tiles    Tiles
	external Tile
	typ      MeldType
	suit     Suit
}

// NewMeld validates tiles (plus the optional external tile, NoTile when
// absent) against the shape of typ.
func NewMeld(tiles []Tile, external Tile, typ MeldType) (Meld, error) {
	own := make(Tiles, len(tiles))
	copy(own, tiles)
	own.Sort()

	invalid := &InvalidMeldError{Type: typ, Tiles: own, External: external}
	if len(own) == 0 || !own[0].IsPlayable() {
		return Meld{}, invalid
	}

	all := own
	if external != NoTile {
		all = make(Tiles, 0, len(own)+1)
		all = append(all, own...)
		all = append(all, external)
		all.Sort()
	}

	var ok bool
	switch typ {
	case Sequence:
		ok = len(all) == 3 && consecutive(all)
	case Triplet:
		ok = len(all) == 3 && identical(all)
	case ExposedQuad:
		ok = external != NoTile && len(all) == 4 && identical(all)
	case ConcealedQuad:
		ok = external == NoTile && len(all) == 4 && identical(all)
	case Pair:
		ok = external == NoTile && len(all) == 2 && identical(all)
	}
	if !ok {
		return Meld{}, invalid
	}

	return Meld{tiles: all, external: external, typ: typ, suit: all[0].Suit()}, nil
}

func consecutive(ts Tiles) bool {
	for i := 0; i < len(ts)-1; i++ {
		if n := ts[i].Next(); n == NoTile || n != ts[i+1] {
			return false
		}
	}
	return true
}

func identical(ts Tiles) bool {
	for i := 1; i < len(ts); i++ {
		if ts[i] != ts[0] || !ts[i].IsPlayable() {
			return false
		}
	}
	return true
}

func (m Meld) Type() MeldType { return m.typ }
func (m Meld) Suit() Suit     { return m.suit }

// External returns the claimed discard that completed the meld, or NoTile.
func (m Meld) External() Tile { return m.external }

func (m Meld) First() Tile {
	if len(m.tiles) == 0 {
		return NoTile
	}
	return m.tiles[0]
}

// Tiles returns every tile of the meld, external tile included.
func (m Meld) Tiles() Tiles {
	ret := make(Tiles, len(m.tiles))
	copy(ret, m.tiles)
	return ret
}

// Own returns the tiles that came from the hand, i.e. Tiles without the
// external tile.
func (m Meld) Own() Tiles {
	ret := make(Tiles, 0, len(m.tiles))
	skipped := m.external == NoTile
	for _, t := range m.tiles {
		if !skipped && t == m.external {
			skipped = true
			continue
		}
		ret = append(ret, t)
	}
	return ret
}

func (m Meld) Contains(t Tile) bool {
	return m.tiles.Contains(t)
}

func (m Meld) Equals(o Meld) bool {
	if m.typ != o.typ || m.external != o.external || len(m.tiles) != len(o.tiles) {
		return false
	}
	for i := range m.tiles {
		if m.tiles[i] != o.tiles[i] {
			return false
		}
	}
	return true
}

func (m Meld) String() string {
	if m.external == NoTile {
		return fmt.Sprintf("%s(%v)", m.typ, m.tiles)
	}
	return fmt.Sprintf("%s(%v +%v)", m.typ, m.tiles, m.external)
}
