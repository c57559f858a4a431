// Package color derives stable accent colors for reader profiles.
// Clients show the color behind a user's avatar while the image loads.
package color

import (
	"fmt"
	"hash/fnv"
	"math"
)

// Saturation and lightness are fixed so every accent color sits in the
// same muted band; only the hue varies per user.
const (
	accentSaturation = 0.45
	accentLightness  = 0.62
)

// ForUser returns the avatar accent color for a user as "#RRGGBB".
// The hue is hashed from the user ID, so a reader keeps the same color
// across restarts even though all server state is reseeded.
func ForUser(userID string) string {
	h := fnv.New32a()
	h.Write([]byte(userID))
	hue := float64(h.Sum32() % 360)

	r, g, b := rgbFromHSL(hue, accentSaturation, accentLightness)
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// rgbFromHSL converts hue (degrees) plus saturation and lightness (both
// in [0,1]) to 8-bit RGB channels, using the chroma form of the
// conversion: chroma is the color intensity, x its second-largest
// component, and m the lightness offset added to all three channels.
func rgbFromHSL(hue, sat, light float64) (uint8, uint8, uint8) {
	chroma := (1 - math.Abs(2*light-1)) * sat
	sector := hue / 60
	x := chroma * (1 - math.Abs(math.Mod(sector, 2)-1))

	var r, g, b float64
	switch {
	case sector < 1:
		r, g, b = chroma, x, 0
	case sector < 2:
		r, g, b = x, chroma, 0
	case sector < 3:
		r, g, b = 0, chroma, x
	case sector < 4:
		r, g, b = 0, x, chroma
	case sector < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	m := light - chroma/2
	return channel(r + m), channel(g + m), channel(b + m)
}

func channel(v float64) uint8 {
	return uint8(math.Round(v * 255))
}
