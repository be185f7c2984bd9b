package wavecollapse

import "math"

// SpatialBias is an immutable per-cell additive preference that shapes
// observation order: cells nearer (startX, startY) (as a fraction of the
// grid) get a smaller bias and are preferred when entropy ties.
type SpatialBias struct {
	values []float64
}

// NewSpatialBias precomputes P[i] = bias * sqrt((x-cx)^2 + (y-cy)^2) for
// every cell, where cx = (width-1)*startX and cy = (height-1)*startY.
func NewSpatialBias(width, height int, bias, startX, startY float64) *SpatialBias {
	n := width * height
	values := make([]float64, n)

	cx := float64(width-1) * startX
	cy := float64(height-1) * startY

	for i := 0; i < n; i++ {
		x := float64(i % width)
		y := float64(i / width)
		dx := x - cx
		dy := y - cy
		values[i] = bias * math.Sqrt(dx*dx+dy*dy)
	}

	return &SpatialBias{values: values}
}

// Bias returns P[i].
func (b *SpatialBias) Bias(i int) float64 {
	return b.values[i]
}
