package model

import (
	"slices"

	perlin "github.com/aquilax/go-perlin"
)

const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
	// cells per noise lattice unit
	noiseScale = 0.15
)

// FillNoise seeds the grid from 2D Perlin noise, giving clustered rather than
// uniform live regions. The threshold is taken at the probability quantile of
// the sampled field, so about probability of the cells come out alive whatever
// the spread of the noise. The same seed always produces the same pattern.
func (g *Grid) FillNoise(probability float64, seed int64) error {
	if err := checkProbability("Grid.FillNoise", probability); err != nil {
		return err
	}

	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	field := make([]float64, 0, g.width*g.height)
	for y := range g.height {
		for x := range g.width {
			field = append(field, p.Noise2D(float64(x)*noiseScale, float64(y)*noiseScale))
		}
	}

	sorted := slices.Clone(field)
	slices.Sort(sorted)
	k := int(probability * float64(len(sorted)))

	for y := range g.height {
		for x := range g.width {
			switch {
			case k <= 0:
				g.cells[y][x] = false
			case k >= len(sorted):
				g.cells[y][x] = true
			default:
				g.cells[y][x] = field[y*g.width+x] < sorted[k]
			}
		}
	}
	return nil
}
