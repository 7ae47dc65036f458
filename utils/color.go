// File: utils/color.go
package utils

import (
	"fmt"
	"hash/fnv"
)

// ColorForID derives a stable display color from an opaque ID.
// The same ID always yields the same color across sessions, so teachers
// without a stored color preference still render consistently.
func ColorForID(id string) string {
	h := fnv.New32a()
	h.Write([]byte(id))
	sum := h.Sum32()

	// Spread hues across the wheel; keep saturation and lightness in a
	// band that stays readable on a white card background.
	hue := int(sum % 360)
	sat := 55 + int((sum>>9)%25)  // 55..79
	lig := 38 + int((sum>>17)%17) // 38..54

	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hue, sat, lig)
}
