package rank

import "errors"

var (
	ErrUnknownTier     = errors.New("unknown tier")
	ErrUnknownDivision = errors.New("unknown division")
)

const (
	divisionWidth = 100
	tierWidth     = 400

	// Legacy apex readings carried an extra "I" division weight.
	legacyApexDivision = 3 * divisionWidth
	legacyApexBase     = 7*tierWidth + legacyApexDivision
)

// Ordered lowest to highest; the index is the packed weight.
var tierNames = []string{"iron", "bronze", "silver", "gold", "platinum", "emerald", "diamond", "master", "grandmaster", "challenger"}
var divisionNames = []string{"IV", "III", "II", "I"}

// Apex tiers have no divisions in game. The API still reports "I" for them.
var apexTiers = map[string]bool{
	"master":      true,
	"grandmaster": true,
	"challenger":  true,
}

// LeagueCodec packs a standing as points + division*100 + tier*400.
type LeagueCodec struct{}
