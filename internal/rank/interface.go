package rank

// Codec converts a league standing into a single ordered integer and back into
// a readable label. Reconciliation only ever compares the integers, so the
// packing scheme can change behind this interface.
type Codec interface {
	Encode(tier, division string, leaguePoints int) (int, error)
	Format(value int) string
	// FormatTier formats value knowing the reading's tier, which resolves
	// apex readings above 400 LP.
	FormatTier(tier string, value int) string
}
