package weather

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyCode(t *testing.T) {
	cases := []struct {
		name string
		code float64
		want Category
	}{
		{"thunderstorm", 200, CategoryThunderstorm},
		{"thunderstorm upper", 232, CategoryThunderstorm},
		{"drizzle", 300, CategoryDrizzle},
		{"rain", 500, CategoryRain},
		{"snow", 600, CategorySnow},
		{"atmosphere", 741, CategoryAtmosphere},
		{"clear is exactly 800", 800, CategoryClear},
		{"clouds just above clear", 801, CategoryClouds},
		{"clouds anywhere in 8xx band", 850, CategoryClouds},
		{"9xx collapses to unknown", 900, CategoryUnknown},
		{"1xx collapses to unknown", 100, CategoryUnknown},
		{"4xx collapses to unknown", 400, CategoryUnknown},
		{"zero", 0, CategoryUnknown},
		{"negative", -200, CategoryUnknown},
		{"NaN", math.NaN(), CategoryUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ClassifyCode(tc.code))
		})
	}
}
