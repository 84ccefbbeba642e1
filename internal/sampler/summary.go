package sampler

import (
	"math"

	"github.com/driftline/rbcore/vecmath"
)

// Summary aggregates distribution statistics over a sampled batch. It
// exists so callers can sanity-check the sampler's documented shape:
// magnitudes uniform in [0, MaxNorm) and directions centered on zero.
type Summary struct {
	Count   int          `json:"count"`
	MeanMag float64      `json:"mean_mag"`
	MinMag  float64      `json:"min_mag"`
	MaxMag  float64      `json:"max_mag"`
	MeanDir vecmath.Vec3 `json:"mean_dir"`
}

// Summarize computes batch statistics. An empty batch yields a zero-count
// Summary with NaN magnitude stats, mirroring vecmath.Mean on empty input.
func Summarize(batch []vecmath.Vec3) Summary {
	sum := Summary{
		Count:  len(batch),
		MinMag: math.NaN(),
		MaxMag: math.NaN(),
	}

	mags := make([]float64, len(batch))
	var dir vecmath.Vec3
	for i, v := range batch {
		m := v.Mag()
		mags[i] = m
		if i == 0 || m < sum.MinMag {
			sum.MinMag = m
		}
		if i == 0 || m > sum.MaxMag {
			sum.MaxMag = m
		}
		dir = dir.Add(v)
	}

	sum.MeanMag = vecmath.Mean(mags)
	if len(batch) > 0 {
		sum.MeanDir = dir.Scale(1.0 / float64(len(batch)))
	}
	return sum
}
