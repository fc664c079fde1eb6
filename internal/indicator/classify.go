package indicator

import (
	"github.com/jwalitptl/health-indicators/internal/model"
)

// Intner is the slice of *rand.Rand the generator needs.
type Intner interface {
	Intn(n int) int
}

// randInt returns a uniform integer in [lo, hi].
func randInt(r Intner, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// ClassifyGlobal applies the fixed cut points used for CSV-driven records,
// regardless of disease: above 140 is critical, above 100 warning.
func ClassifyGlobal(value int) model.IndicatorStatus {
	switch {
	case value > 140:
		return model.StatusCritical
	case value > 100:
		return model.StatusWarning
	default:
		return model.StatusNormal
	}
}

// ClassifySample applies the per-disease bands of the sample dataset.
// Hypertension and Diabetes values below their warning band, and every
// other disease, get a random normal/warning status; never critical.
func ClassifySample(disease string, value int, r Intner) model.IndicatorStatus {
	switch {
	case disease == DiseaseHypertension && value > 140:
		return model.StatusCritical
	case disease == DiseaseHypertension && value > 120:
		return model.StatusWarning
	case disease == DiseaseDiabetes && value > 200:
		return model.StatusCritical
	case disease == DiseaseDiabetes && value > 140:
		return model.StatusWarning
	}
	if r.Intn(2) == 0 {
		return model.StatusNormal
	}
	return model.StatusWarning
}

// csvValue draws a value using the CSV-path ranges.
func csvValue(disease string, r Intner) int {
	switch disease {
	case DiseaseHypertension:
		return randInt(r, 90, 180)
	case DiseaseDiabetes:
		return randInt(r, 80, 400)
	default:
		return randInt(r, 1, 20)
	}
}

// sampleValue draws a value using the sample-dataset ranges.
func sampleValue(disease string, r Intner) int {
	switch disease {
	case DiseaseHypertension, DiseaseHeartRate:
		return randInt(r, 80, 180)
	case DiseaseDiabetes:
		return randInt(r, 80, 400)
	default:
		return randInt(r, 1, 50)
	}
}
