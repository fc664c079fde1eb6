package indicator

// BarangayDiseases lists the surveilled diseases of one barangay.
type BarangayDiseases struct {
	Barangay string
	Diseases []string
}

// Disease/health indicators from the Naga City situational analysis, in the
// order the sample dataset is emitted.
var DiseasesByBarangay = []BarangayDiseases{
	{"Abella", []string{"Hypertension", "Diabetes", "Respiratory Infection", "Gastroenteritis", "Dengue"}},
	{"Bagumbayan Norte", []string{"Pneumonia", "Malaria", "Diarrhea", "Hypertension", "Asthma"}},
	{"Bagumbayan Sur", []string{"Tuberculosis", "Typhoid", "Skin Infection", "Bronchitis", "Measles"}},
	{"Balao", []string{"Diabetes", "Hypertension", "Pneumonia", "Malaria", "Dengue"}},
	{"Cararayan", []string{"Respiratory Infection", "Gastroenteritis", "Hepatitis A", "Measles", "Typhoid"}},
	{"Mabini", []string{"Hypertension", "Heart Disease", "Stroke", "Chronic Kidney Disease", "COPD"}},
	{"Sabang", []string{"Malaria", "Dengue", "Leptospirosis", "Typhoid", "Pneumonia"}},
}

var IndicatorUnits = map[string]string{
	"Hypertension":           "mmHg",
	"Diabetes":               "mg/dL",
	"Heart Rate":             "bpm",
	"Respiratory Infection":  "count",
	"Gastroenteritis":        "cases",
	"Dengue":                 "cases",
	"Pneumonia":              "cases",
	"Malaria":                "cases",
	"Diarrhea":               "cases",
	"Asthma":                 "cases",
	"Tuberculosis":           "cases",
	"Typhoid":                "cases",
	"Skin Infection":         "cases",
	"Bronchitis":             "cases",
	"Measles":                "cases",
	"Hepatitis A":            "cases",
	"Heart Disease":          "count",
	"Stroke":                 "count",
	"Chronic Kidney Disease": "count",
	"COPD":                   "count",
	"Leptospirosis":          "cases",
}

const (
	DiseaseHypertension = "Hypertension"
	DiseaseDiabetes     = "Diabetes"
	DiseaseHeartRate    = "Heart Rate"

	// DefaultDisease is used for barangays missing from DiseasesByBarangay.
	DefaultDisease = "General Illness"

	DefaultUnit       = "units"
	DefaultSampleUnit = "cases"
)

// DiseasesFor returns the diseases tracked for barangay, or a single
// DefaultDisease entry when the barangay is unknown.
func DiseasesFor(barangay string) []string {
	for _, entry := range DiseasesByBarangay {
		if entry.Barangay == barangay {
			return entry.Diseases
		}
	}
	return []string{DefaultDisease}
}

// UnitFor resolves the unit of a disease, falling back to fallback.
func UnitFor(disease, fallback string) string {
	if unit, ok := IndicatorUnits[disease]; ok {
		return unit
	}
	return fallback
}

// PairCount is the number of (barangay, disease) pairs in DiseasesByBarangay.
func PairCount() int {
	n := 0
	for _, entry := range DiseasesByBarangay {
		n += len(entry.Diseases)
	}
	return n
}
