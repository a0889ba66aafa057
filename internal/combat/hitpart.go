package combat

import "github.com/udisondev/ttkbench/internal/model"

// Float64Source yields uniform floats in [0, 1). *rng.Source implements it.
type Float64Source interface {
	Float64() float64
}

// SampleHitPart draws one value from src and walks head, chest, stomach,
// limbs accumulating probability; the first part whose cumulative
// probability reaches the draw wins. Falls back to chest when rounding
// leaves the draw above the total.
func SampleHitPart(src Float64Source, prob model.HitProbability) model.BodyPart {
	r := src.Float64()
	sum := 0.0
	for _, part := range model.BodyParts {
		sum += prob.Of(part)
		if r <= sum {
			return part
		}
	}
	return model.PartChest
}
