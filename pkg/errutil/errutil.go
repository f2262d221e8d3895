package errutil

import (
	"github.com/pkg/errors"
)

var (
	ErrBadRoute          = errors.New("bad route")
	ErrNotFound          = errors.New("not found")
	ErrIllegalParameter  = errors.New("illegal parameter")
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrDBOperation       = errors.New("database opertaion failed")
	ErrServerInternal    = errors.New("server internal error")
	ErrNotImplemented    = errors.New("not implemented")
	ErrRulesetNotFound   = errors.New("ruleset not found")
	ErrIllegalTile       = errors.New("illegal tile")
	ErrInvalidMeld       = errors.New("invalid meld")
	ErrTileNotInHand     = errors.New("tile not in hand")
	ErrDismatchTileNum   = errors.New("a shortage or surplus of tiles")
	ErrIllegalWind       = errors.New("illegal wind")
	ErrUnknownScore      = errors.New("unknown score")
	ErrIllegalRuleSource = errors.New("illegal rule source")
	ErrPermissionDenied  = errors.New("permission denied")
)

// Code returns the numeric code of err, looking through wrapped errors.
func Code(err error) int {
	if c, ok := errs[errors.Cause(err)]; ok {
		return c
	}
	return Unknown
}
