package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	codec := NewCodec()

	tests := []struct {
		name     string
		tier     string
		division string
		lp       int
		want     int
	}{
		{"lowest possible", "IRON", "IV", 0, 0},
		{"gold two", "GOLD", "II", 45, 1445},
		{"lower case tier", "gold", "II", 45, 1445},
		{"padded input", " Platinum ", " i ", 99, 1999},
		{"emerald four", "EMERALD", "IV", 12, 2012},
		{"master ignores division", "MASTER", "I", 120, 2920},
		{"challenger without division", "CHALLENGER", "", 1000, 4600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Encode(tt.tier, tt.division, tt.lp)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_Errors(t *testing.T) {
	codec := NewCodec()

	_, err := codec.Encode("wood", "IV", 10)
	assert.ErrorIs(t, err, ErrUnknownTier)

	_, err = codec.Encode("gold", "V", 10)
	assert.ErrorIs(t, err, ErrUnknownDivision)

	_, err = codec.Encode("gold", "", 10)
	assert.ErrorIs(t, err, ErrUnknownDivision)
}

func TestEncode_Monotonic(t *testing.T) {
	codec := NewCodec()
	previous := -1
	for _, tier := range tierNames[:7] {
		for _, division := range divisionNames {
			for lp := 0; lp < 100; lp += 33 {
				value, err := codec.Encode(tier, division, lp)
				require.NoError(t, err)
				assert.Greater(t, value, previous, "%s %s %d", tier, division, lp)
				previous = value
			}
		}
	}
}

func TestFormat(t *testing.T) {
	codec := NewCodec()

	assert.Equal(t, "GOLD II 45 LP", codec.Format(1445))
	assert.Equal(t, "IRON IV 0 LP", codec.Format(0))
	assert.Equal(t, "DIAMOND I 0 LP", codec.Format(2700))
	assert.Equal(t, "MASTER 120 LP", codec.Format(2920))
	assert.Equal(t, "CHALLENGER 1000 LP", codec.Format(4600))
	assert.Equal(t, "IRON IV 0 LP", codec.Format(-5))

	for _, value := range []int{0, 399, 1445, 2012, 2799} {
		assert.NotEmpty(t, codec.Format(value))
	}
}

func TestFormatTier(t *testing.T) {
	codec := NewCodec()

	master500, err := codec.Encode("MASTER", "I", 500)
	require.NoError(t, err)
	assert.Equal(t, "GRANDMASTER 100 LP", codec.Format(master500), "apex bands overlap without the tier")
	assert.Equal(t, "MASTER 500 LP", codec.FormatTier("MASTER", master500))

	assert.Equal(t, "GOLD II 45 LP", codec.FormatTier("GOLD", 1445), "divisions come from the value")
	assert.Equal(t, "GOLD II 45 LP", codec.FormatTier("", 1445))
	assert.Equal(t, "MASTER 120 LP", codec.FormatTier("wood", 2920))
}

func TestFromLegacy(t *testing.T) {
	codec := NewCodec()

	tests := []struct {
		name     string
		tier     string
		division string
		lp       int
		legacy   int
	}{
		{"gold is unchanged", "GOLD", "II", 45, 1445},
		{"diamond one is unchanged", "DIAMOND", "I", 99, 2799},
		{"master one", "MASTER", "I", 0, 3100},
		{"master with points", "MASTER", "I", 57, 3157},
		{"grandmaster", "GRANDMASTER", "I", 20, 3520},
		{"challenger", "CHALLENGER", "I", 900, 4800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fresh, err := codec.Encode(tt.tier, tt.division, tt.lp)
			require.NoError(t, err)
			assert.Equal(t, fresh, FromLegacy(tt.legacy), "a converted legacy reading equals a fresh one")
		})
	}
}
