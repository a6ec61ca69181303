// Package sample caps point sets with uniform random sampling so large
// occurrence collections stay renderable client-side without skewing the
// spatial distribution.
package sample

import (
	"math/rand"

	"github.com/evyataryagoni/bio-explorer/internal/models"
)

// Points returns at most capSize points from pts.
//
// When pts already fits, the input slice is returned as is. Otherwise a
// uniform random subset of exactly capSize distinct elements is chosen
// (partial Fisher-Yates over a copy); the result's order is unspecified.
// Truncating to the first capSize elements instead would bias the result
// toward whatever order the upstream returned, which ruins the density
// visualization the points feed.
func Points(pts []models.Point, capSize int) []models.Point {
	if len(pts) <= capSize {
		return pts
	}

	shuffled := make([]models.Point, len(pts))
	copy(shuffled, pts)

	// Only the first capSize positions need to be settled.
	for i := 0; i < capSize; i++ {
		j := i + rand.Intn(len(shuffled)-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled[:capSize]
}
