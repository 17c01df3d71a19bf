package rank

import (
	"fmt"
	"slices"
	"strings"
)

var _ Codec = LeagueCodec{}

// NewCodec returns the packing used by every stored rank history.
func NewCodec() LeagueCodec {
	return LeagueCodec{}
}

// Encode packs tier, division and league points into one integer.
// Points of 100 or more are not clamped and will overlap the next division.
func (LeagueCodec) Encode(tier, division string, leaguePoints int) (int, error) {
	tier = strings.ToLower(strings.TrimSpace(tier))
	tierIndex := slices.Index(tierNames, tier)
	if tierIndex < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}

	divisionIndex := 0
	if !apexTiers[tier] {
		division = strings.ToUpper(strings.TrimSpace(division))
		divisionIndex = slices.Index(divisionNames, division)
		if divisionIndex < 0 {
			return 0, fmt.Errorf("%w: %q", ErrUnknownDivision, division)
		}
	}

	return leaguePoints + divisionIndex*divisionWidth + tierIndex*tierWidth, nil
}

// Format turns a packed value back into e.g. "GOLD II 45 LP".
// Apex tiers share one band per tier, so apex LP of 400 or more reads as the
// next tier: Master at 500 LP formats as "GRANDMASTER 100 LP". Use FormatTier
// when the reading's tier is known.
func (LeagueCodec) Format(value int) string {
	if value < 0 {
		value = 0
	}
	tierIndex := min(value/tierWidth, len(tierNames)-1)
	tier := tierNames[tierIndex]
	remainder := value - tierIndex*tierWidth

	if apexTiers[tier] {
		return fmt.Sprintf("%s %d LP", strings.ToUpper(tier), remainder)
	}

	divisionIndex := min(remainder/divisionWidth, len(divisionNames)-1)
	points := remainder - divisionIndex*divisionWidth
	return fmt.Sprintf("%s %s %d LP", strings.ToUpper(tier), divisionNames[divisionIndex], points)
}

// FormatTier formats value as a standing in tier. It falls back to Format when
// tier is empty or unknown.
func (c LeagueCodec) FormatTier(tier string, value int) string {
	tier = strings.ToLower(strings.TrimSpace(tier))
	tierIndex := slices.Index(tierNames, tier)
	if tierIndex < 0 || !apexTiers[tier] {
		return c.Format(value)
	}
	return fmt.Sprintf("%s %d LP", strings.ToUpper(tier), max(value-tierIndex*tierWidth, 0))
}

// FromLegacy converts a value packed by the first tracker release, which
// weighted the "I" division reported for apex tiers like any other division.
// Non-apex values are unchanged.
func FromLegacy(value int) int {
	if value >= legacyApexBase {
		return value - legacyApexDivision
	}
	return value
}
