package score

import "fmt"

// Policy is a named scoring configuration. The engine evolved through
// several weight sets; each survives as a named policy so the pipeline
// never hard-codes one. Default() is canonical.
type Policy struct {
	Name    string
	Weights Weights

	// CapCorrection clamps the carbon correction multiplier to
	// ±CorrectionCap. The canonical policy leaves it uncapped; the floor
	// in the estimator already prevents negative footprints.
	CapCorrection bool
	CorrectionCap float64

	// OrganicWeight is an optional preference hint. It is recognized but
	// does not modulate the weighted sum until product intent is settled.
	OrganicWeight float64
}

// DefaultPolicy returns the canonical scoring policy.
func DefaultPolicy() Policy {
	return Policy{
		Name:    "default",
		Weights: DefaultWeights(),
	}
}

// FlatPolicy is a superseded revision with a flatter spread across factors.
func FlatPolicy() Policy {
	return Policy{
		Name: "flat",
		Weights: Weights{
			Carbon:     0.35,
			Keywords:   0.25,
			Rating:     0.15,
			Reviews:    0.10,
			Price:      0.10,
			Durability: 0.05,
		},
	}
}

// EnvironmentalPolicy is a superseded revision that split weight between
// environmental, socio-economic and quality factors 60/30/10 and capped
// the carbon correction.
func EnvironmentalPolicy() Policy {
	return Policy{
		Name: "environmental",
		Weights: Weights{
			Carbon:     0.45,
			Keywords:   0.15,
			Rating:     0.20,
			Reviews:    0.10,
			Price:      0.05,
			Durability: 0.05,
		},
		CapCorrection: true,
		CorrectionCap: 0.8,
	}
}

// PolicyByName resolves a policy name from configuration.
func PolicyByName(name string) (Policy, error) {
	switch name {
	case "", "default":
		return DefaultPolicy(), nil
	case "flat":
		return FlatPolicy(), nil
	case "environmental":
		return EnvironmentalPolicy(), nil
	default:
		return Policy{}, fmt.Errorf("unknown scoring policy %q", name)
	}
}
