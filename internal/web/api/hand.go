package api

import (
	"github.com/lonng/taiserver/internal/mahjong"
	"github.com/lonng/taiserver/pkg/errutil"
	"github.com/lonng/taiserver/protocol"
	"github.com/pkg/errors"
)

// 每种牌最多4张
const maxCopies = 4

// BuildHand turns a request into a Hand: bonus and concealed tiles are drawn,
// then each meld's own tiles are drawn and declared.
func BuildHand(req *protocol.EvaluateRequest) (*mahjong.Hand, error) {
	var (
		hand   = mahjong.NewHand()
		counts = map[mahjong.Tile]int{}
	)

	draw := func(tiles ...mahjong.Tile) error {
		for _, t := range tiles {
			if err := hand.Draw(t); err != nil {
				return err
			}
			if counts[t]++; counts[t] > maxCopies || (t.IsBonus() && counts[t] > 1) {
				return errors.Wrapf(errutil.ErrDismatchTileNum, "tile %v", t)
			}
		}
		return nil
	}

	tiles, err := parseTiles(req.Concealed)
	if err != nil {
		return nil, err
	}
	if err := draw(tiles...); err != nil {
		return nil, err
	}

	bonus, err := parseTiles(req.Bonus)
	if err != nil {
		return nil, err
	}
	for _, t := range bonus {
		if !t.IsBonus() {
			return nil, errors.Wrapf(errutil.ErrIllegalTile, "%v is not a bonus tile", t)
		}
	}
	if err := draw(bonus...); err != nil {
		return nil, err
	}

	for _, info := range req.Melds {
		m, err := parseMeld(info)
		if err != nil {
			return nil, err
		}
		if err := draw(m.Own()...); err != nil {
			return nil, err
		}
		if m.External() != mahjong.NoTile {
			if counts[m.External()]++; counts[m.External()] > maxCopies {
				return nil, errors.Wrapf(errutil.ErrDismatchTileNum, "tile %v", m.External())
			}
		}
		if err := hand.Declare(m); err != nil {
			return nil, translate(err)
		}
	}

	if req.Discard != "" {
		t, err := mahjong.ParseTile(req.Discard)
		if err != nil {
			return nil, translate(err)
		}
		if counts[t]+1 > maxCopies {
			return nil, errors.Wrapf(errutil.ErrDismatchTileNum, "tile %v", t)
		}
	}

	return hand, nil
}

// NewContext builds the evaluation context of a request, table excluded.
func NewContext(req *protocol.EvaluateRequest) (*mahjong.Context, error) {
	ctx := &mahjong.Context{
		SeatWind:       mahjong.East,
		PrevailingWind: mahjong.East,
	}

	if req.Discard != "" {
		t, err := mahjong.ParseTile(req.Discard)
		if err != nil {
			return nil, translate(err)
		}
		ctx.Discard = t
	}

	if req.SeatWind != "" {
		w, err := mahjong.ParseWind(req.SeatWind)
		if err != nil {
			return nil, errors.Wrap(errutil.ErrIllegalWind, err.Error())
		}
		ctx.SeatWind = w
	}
	if req.Prevailing != "" {
		w, err := mahjong.ParseWind(req.Prevailing)
		if err != nil {
			return nil, errors.Wrap(errutil.ErrIllegalWind, err.Error())
		}
		ctx.PrevailingWind = w
	}

	for _, name := range req.BaseScores {
		s, err := mahjong.ParseScore(name)
		if err != nil {
			return nil, translate(err)
		}
		ctx.BaseScores = append(ctx.BaseScores, s)
	}

	return ctx, nil
}

// DescribeHand is the inverse of BuildHand.
func DescribeHand(h *mahjong.Hand, seat mahjong.Wind) protocol.EvaluateRequest {
	concealed := h.Concealed()
	req := protocol.EvaluateRequest{
		Concealed: concealed.Tiles().Strings(),
		Bonus:     h.Bonus().Strings(),
		SeatWind:  seat.String(),
	}
	for _, m := range h.Melds() {
		req.Melds = append(req.Melds, meldInfo(m))
	}
	return req
}

func parseTiles(names []string) (mahjong.Tiles, error) {
	tiles := make(mahjong.Tiles, 0, len(names))
	for _, name := range names {
		t, err := mahjong.ParseTile(name)
		if err != nil {
			return nil, translate(err)
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

func parseMeld(info protocol.MeldInfo) (mahjong.Meld, error) {
	typ, err := mahjong.ParseMeldType(info.Type)
	if err != nil {
		return mahjong.Meld{}, translate(err)
	}

	tiles, err := parseTiles(info.Tiles)
	if err != nil {
		return mahjong.Meld{}, err
	}

	external := mahjong.NoTile
	if info.External != "" {
		if external, err = mahjong.ParseTile(info.External); err != nil {
			return mahjong.Meld{}, translate(err)
		}
	}

	m, err := mahjong.NewMeld(tiles, external, typ)
	if err != nil {
		return mahjong.Meld{}, translate(err)
	}
	return m, nil
}

func meldInfo(m mahjong.Meld) protocol.MeldInfo {
	info := protocol.MeldInfo{
		Type:  m.Type().String(),
		Tiles: m.Own().Strings(),
	}
	if m.External() != mahjong.NoTile {
		info.External = m.External().String()
	}
	return info
}

// translate maps errors of the mahjong package onto service errors so they
// carry an error code.
func translate(err error) error {
	switch e := errors.Cause(err).(type) {
	case *mahjong.InvalidMeldError:
		return errors.Wrap(errutil.ErrInvalidMeld, e.Error())
	case *mahjong.TileNotInHandError:
		return errors.Wrap(errutil.ErrTileNotInHand, e.Error())
	}

	switch errors.Cause(err) {
	case mahjong.ErrIllegalTile:
		return errors.Wrap(errutil.ErrIllegalTile, err.Error())
	case mahjong.ErrIllegalMeld:
		return errors.Wrap(errutil.ErrInvalidMeld, err.Error())
	case mahjong.ErrUnknownScore:
		return errors.Wrap(errutil.ErrUnknownScore, err.Error())
	}
	return err
}
