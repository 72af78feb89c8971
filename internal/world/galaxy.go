package world

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// ErrGenerationExhausted means a star could not be placed within its retry budget.
var ErrGenerationExhausted = errors.New("star placement exhausted retry budget")

// GalaxyParams configures star placement in the unit disk.
type GalaxyParams struct {
	Count         int
	MinSeparation float64 // map units
	MaxRetries    int     // resamples allowed per star after the first candidate
}

// GenerateStars places p.Count stars by rejection sampling. A candidate is
// rejected when it lies within MinSeparation of any star already placed.
// Running out of retries for any single star fails the whole generation.
func GenerateStars(rng *rand.Rand, p GalaxyParams, names NameSource, nextID func() ID) ([]*Star, error) {
	if p.Count < 0 || p.MaxRetries < 0 || p.MinSeparation < 0 {
		return nil, fmt.Errorf("invalid galaxy params %+v", p)
	}

	stars := make([]*Star, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		pt := samplePolar(rng)
		retries := 0
		for tooClose(stars, pt, p.MinSeparation) {
			retries++
			if retries > p.MaxRetries {
				return nil, fmt.Errorf("star %d of %d, %d attempts: %w",
					i+1, p.Count, retries, ErrGenerationExhausted)
			}
			pt = samplePolar(rng)
		}
		stars = append(stars, &Star{
			ID:       nextID(),
			Name:     names.Next(),
			Location: pt,
		})
	}
	return stars, nil
}

// samplePolar draws angle and radius independently and uniformly, so
// candidates cluster toward the center of the disk.
func samplePolar(rng *rand.Rand) Point {
	theta := 2 * math.Pi * rng.Float64()
	dist := rng.Float64()
	return Point{dist * math.Cos(theta), dist * math.Sin(theta)}
}

func tooClose(stars []*Star, p Point, minDist float64) bool {
	for _, s := range stars {
		if s.Location.Collides(p, minDist) {
			return true
		}
	}
	return false
}
