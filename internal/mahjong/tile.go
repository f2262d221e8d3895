package mahjong

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// 牌的索引: 花色*10 + 点数
// 1-9: 万
// 11-19: 索
// 21-29: 筒
// 31-34: 东南西北
// 41-43: 中发白
// 51-54: 猫鼠鸡蜈蚣
// 61-64: 红花, 71-74: 蓝花
const MaxTileIndex = 74

// NoTile is the zero Tile, used where a tile is absent (no discard, no
// external tile, no neighbour past the end of a suit).
const NoTile Tile = 0

type Tile int

type Suit int

const (
	SuitWan Suit = iota
	SuitSuo
	SuitTong
	SuitWind
	SuitDragon
	SuitAnimal
	SuitFlower
)

var suitNames = [...]string{
	SuitWan:    "wan",
	SuitSuo:    "suo",
	SuitTong:   "tong",
	SuitWind:   "wind",
	SuitDragon: "dragon",
	SuitAnimal: "animal",
	SuitFlower: "flower",
}

func (s Suit) String() string {
	if s < SuitWan || s > SuitFlower {
		return fmt.Sprintf("suit(%d)", int(s))
	}
	return suitNames[s]
}

// IsNumber reports whether the suit holds ranked tiles.
func (s Suit) IsNumber() bool {
	return s == SuitWan || s == SuitSuo || s == SuitTong
}

func (s Suit) IsHonour() bool {
	return s == SuitWind || s == SuitDragon
}

const (
	Zhong  Tile = 41 + iota // 红中
	Fa                      // 发财
	Baiban                  // 白板
)

const (
	Cat Tile = 51 + iota
	Rat
	Chicken
	Centipede
)

type Wind int

const (
	East Wind = iota + 1
	South
	West
	North
)

var windNames = [...]string{East: "east", South: "south", West: "west", North: "north"}

func (w Wind) Tile() Tile {
	return Tile(30 + int(w))
}

func (w Wind) String() string {
	if w < East || w > North {
		return fmt.Sprintf("wind(%d)", int(w))
	}
	return windNames[w]
}

func ParseWind(s string) (Wind, error) {
	for w := East; w <= North; w++ {
		if strings.EqualFold(windNames[w], s) {
			return w, nil
		}
	}
	return 0, errors.Wrapf(ErrIllegalTile, "wind %q", s)
}

func Wan(rank int) Tile  { return Tile(rank) }
func Suo(rank int) Tile  { return Tile(10 + rank) }
func Tong(rank int) Tile { return Tile(20 + rank) }

func RedFlower(seat Wind) Tile  { return Tile(60 + int(seat)) }
func BlueFlower(seat Wind) Tile { return Tile(70 + int(seat)) }

func (t Tile) Rank() int {
	return int(t) % 10
}

func (t Tile) Suit() Suit {
	switch int(t) / 10 {
	case 0:
		return SuitWan
	case 1:
		return SuitSuo
	case 2:
		return SuitTong
	case 3:
		return SuitWind
	case 4:
		return SuitDragon
	case 5:
		return SuitAnimal
	default:
		return SuitFlower
	}
}

func (t Tile) Valid() bool {
	if t <= 0 || int(t) > MaxTileIndex {
		return false
	}
	rank := t.Rank()
	switch int(t) / 10 {
	case 0, 1, 2:
		return rank >= 1 && rank <= 9
	case 4:
		return rank >= 1 && rank <= 3
	default:
		return rank >= 1 && rank <= 4
	}
}

// IsPlayable reports whether the tile may take part in a meld. Bonus tiles
// (animals and flowers) never do.
func (t Tile) IsPlayable() bool {
	if !t.Valid() {
		return false
	}
	switch t.Suit() {
	case SuitWan, SuitSuo, SuitTong, SuitWind, SuitDragon:
		return true
	default:
		return false
	}
}

func (t Tile) IsBonus() bool {
	return t.Valid() && !t.IsPlayable()
}

func (t Tile) IsTerminal() bool {
	return t.Valid() && t.Suit().IsNumber() && (t.Rank() == 1 || t.Rank() == 9)
}

func (t Tile) IsHonour() bool {
	return t.Valid() && t.Suit().IsHonour()
}

// Next returns the tile one rank higher in the same suit, or NoTile.
func (t Tile) Next() Tile {
	if !t.Valid() || !t.Suit().IsNumber() || t.Rank() == 9 {
		return NoTile
	}
	return t + 1
}

// Prev returns the tile one rank lower in the same suit, or NoTile.
func (t Tile) Prev() Tile {
	if !t.Valid() || !t.Suit().IsNumber() || t.Rank() == 1 {
		return NoTile
	}
	return t - 1
}

// Seat returns the seat wind a flower belongs to.
func (t Tile) Seat() Wind {
	if !t.Valid() || t.Suit() != SuitFlower {
		return 0
	}
	return Wind(t.Rank())
}

var (
	dragonNames = [...]string{1: "zhong", 2: "fa", 3: "baiban"}
	animalNames = [...]string{1: "cat", 2: "rat", 3: "chicken", 4: "centipede"}
	numberMarks = [...]string{SuitWan: "w", SuitSuo: "s", SuitTong: "t"}
)

func (t Tile) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tile(%d)", int(t))
	}
	switch t.Suit() {
	case SuitWan, SuitSuo, SuitTong:
		return fmt.Sprintf("%d%s", t.Rank(), numberMarks[t.Suit()])
	case SuitWind:
		return windNames[t.Rank()]
	case SuitDragon:
		return dragonNames[t.Rank()]
	case SuitAnimal:
		return animalNames[t.Rank()]
	default:
		if int(t)/10 == 6 {
			return fmt.Sprintf("red%d", t.Rank())
		}
		return fmt.Sprintf("blue%d", t.Rank())
	}
}

var (
	allTiles    Tiles
	tileByName  = map[string]Tile{}
	orphanTiles = Tiles{Wan(1), Wan(9), Suo(1), Suo(9), Tong(1), Tong(9),
		East.Tile(), South.Tile(), West.Tile(), North.Tile(), Zhong, Fa, Baiban}
)

func init() {
	for i := 1; i <= MaxTileIndex; i++ {
		if t := Tile(i); t.Valid() {
			allTiles = append(allTiles, t)
			tileByName[t.String()] = t
		}
	}
}

// AllTiles returns one of every distinct tile in ascending order.
func AllTiles() Tiles {
	ret := make(Tiles, len(allTiles))
	copy(ret, allTiles)
	return ret
}

func ParseTile(s string) (Tile, error) {
	t, ok := tileByName[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return NoTile, errors.Wrapf(ErrIllegalTile, "%q", s)
	}
	return t, nil
}

// ParseTiles parses a comma or space separated tile list.
func ParseTiles(s string) (Tiles, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	tiles := make(Tiles, 0, len(fields))
	for _, f := range fields {
		t, err := ParseTile(f)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

type Tiles []Tile

func (ts Tiles) Len() int           { return len(ts) }
func (ts Tiles) Swap(i, j int)      { ts[i], ts[j] = ts[j], ts[i] }
func (ts Tiles) Less(i, j int) bool { return ts[i] < ts[j] }

func (ts Tiles) Sort() {
	sort.Sort(ts)
}

func (ts Tiles) Contains(t Tile) bool {
	for _, x := range ts {
		if x == t {
			return true
		}
	}
	return false
}

func (ts Tiles) Strings() []string {
	res := make([]string, len(ts))
	for i := range ts {
		res[i] = ts[i].String()
	}
	return res
}

func (ts Tiles) String() string {
	return strings.Join(ts.Strings(), " ")
}
