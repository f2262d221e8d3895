package errutil

const (
	codeBase = 1000
)

const (
	Unknown = codeBase + iota
	tsBadRoute
	tsNotFound
	tsIllegalParameter
	tsInvalidParameter
	tsDBOperation
	tsServerInternal
	tsNotImplemented

	tsRulesetNotFound
	tsIllegalTile
	tsInvalidMeld
	tsTileNotInHand
	tsDismatchTileNum
	tsIllegalWind
	tsUnknownScore
	tsIllegalRuleSource
	tsPermissionDenied
)

var errs = map[error]int{
	ErrBadRoute:          tsBadRoute,
	ErrNotFound:          tsNotFound,
	ErrIllegalParameter:  tsIllegalParameter,
	ErrInvalidParameter:  tsInvalidParameter,
	ErrDBOperation:       tsDBOperation,
	ErrServerInternal:    tsServerInternal,
	ErrNotImplemented:    tsNotImplemented,
	ErrRulesetNotFound:   tsRulesetNotFound,
	ErrIllegalTile:       tsIllegalTile,
	ErrInvalidMeld:       tsInvalidMeld,
	ErrTileNotInHand:     tsTileNotInHand,
	ErrDismatchTileNum:   tsDismatchTileNum,
	ErrIllegalWind:       tsIllegalWind,
	ErrUnknownScore:      tsUnknownScore,
	ErrIllegalRuleSource: tsIllegalRuleSource,
	ErrPermissionDenied:  tsPermissionDenied,
}
