package indicator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/health-indicators/internal/model"
)

const (
	CSVLookbackDays    = 90
	SampleLookbackDays = 365

	CSVNote    = "Recorded from CY 2023-2024 disease surveillance"
	SampleNote = "Disease surveillance record from Naga City CY 2023-2024"

	sampleIDPrefix = "550e8400-e29b-41d4-a716-44665544"
)

var (
	// SampleRecorderID is the admin user credited with every sample record.
	SampleRecorderID = uuid.MustParse("550e8400-e29b-41d4-a716-446655440001")

	// SampleResidentIDs must exist before the sample document is loaded.
	SampleResidentIDs = []uuid.UUID{
		uuid.MustParse("550e8400-e29b-41d4-a716-446655440010"),
		uuid.MustParse("550e8400-e29b-41d4-a716-446655440011"),
		uuid.MustParse("550e8400-e29b-41d4-a716-446655440012"),
		uuid.MustParse("550e8400-e29b-41d4-a716-446655440013"),
		uuid.MustParse("550e8400-e29b-41d4-a716-446655440014"),
	}

	CSVBanner = []string{
		"HEALTH INDICATORS INSERT STATEMENTS",
		"Generated from disease surveillance data",
	}
	SampleBanner = []string{
		"SAMPLE HEALTH INDICATORS DATA",
		"Based on CY 2023-2024 Disease Surveillance Data for Naga City",
	}
)

// Generator fabricates synthetic health indicator records and renders them
// as INSERT statements. It is not safe for concurrent use.
type Generator struct {
	rng                *rand.Rand
	now                func() time.Time
	newID              func() uuid.UUID
	csvLookbackDays    int
	sampleLookbackDays int
}

type Option func(*Generator)

// WithRand injects the random source.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// WithSeed makes a run reproducible. A zero seed keeps time seeding.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		if seed != 0 {
			g.rng = rand.New(rand.NewSource(seed))
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func WithIDFunc(fn func() uuid.UUID) Option {
	return func(g *Generator) { g.newID = fn }
}

func WithCSVLookback(days int) Option {
	return func(g *Generator) { g.csvLookbackDays = days }
}

func WithSampleLookback(days int) Option {
	return func(g *Generator) { g.sampleLookbackDays = days }
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rng:                rand.New(rand.NewSource(time.Now().UnixNano())),
		now:                time.Now,
		newID:              uuid.New,
		csvLookbackDays:    CSVLookbackDays,
		sampleLookbackDays: SampleLookbackDays,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewID returns a fresh identifier from the generator's id source.
func (g *Generator) NewID() uuid.UUID {
	return g.newID()
}

// Records builds count records for barangay. Residents are drawn from
// residentIDs, or freshly generated when the pool is empty.
func (g *Generator) Records(barangay string, residentIDs []uuid.UUID, recorderID uuid.UUID, count int) []model.HealthIndicator {
	if count <= 0 {
		return []model.HealthIndicator{}
	}

	diseases := DiseasesFor(barangay)
	records := make([]model.HealthIndicator, 0, count)
	for i := 0; i < count; i++ {
		var residentID uuid.UUID
		if len(residentIDs) > 0 {
			residentID = residentIDs[g.rng.Intn(len(residentIDs))]
		} else {
			residentID = g.newID()
		}

		disease := diseases[g.rng.Intn(len(diseases))]
		value := csvValue(disease, g.rng)

		records = append(records, model.HealthIndicator{
			ID:            g.newID(),
			ResidentID:    residentID,
			IndicatorType: disease,
			Value:         value,
			Unit:          UnitFor(disease, DefaultUnit),
			Status:        ClassifyGlobal(value),
			Notes:         CSVNote,
			RecordedBy:    recorderID,
			RecordedAt:    g.recordedAt(g.csvLookbackDays),
		})
	}
	return records
}

// Generate renders Records as standalone INSERT statements.
func (g *Generator) Generate(barangay string, residentIDs []uuid.UUID, recorderID uuid.UUID, count int) []string {
	return RenderAll(g.Records(barangay, residentIDs, recorderID, count))
}

// SampleRecords walks every (barangay, disease) pair of DiseasesByBarangay
// in order, producing one record each.
func (g *Generator) SampleRecords() []model.HealthIndicator {
	records := make([]model.HealthIndicator, 0, PairCount())
	seq := 1
	for _, entry := range DiseasesByBarangay {
		for _, disease := range entry.Diseases {
			residentID := SampleResidentIDs[g.rng.Intn(len(SampleResidentIDs))]
			value := sampleValue(disease, g.rng)

			records = append(records, model.HealthIndicator{
				ID:            sampleID(seq),
				ResidentID:    residentID,
				IndicatorType: disease,
				Value:         value,
				Unit:          UnitFor(disease, DefaultSampleUnit),
				Status:        ClassifySample(disease, value, g.rng),
				Notes:         SampleNote,
				RecordedBy:    SampleRecorderID,
				RecordedAt:    g.recordedAt(g.sampleLookbackDays),
			})
			seq++
		}
	}
	return records
}

// GenerateSample renders the whole sample dataset as one SQL document.
func (g *Generator) GenerateSample() string {
	return RenderDocument(SampleBanner, g.SampleRecords())
}

func (g *Generator) recordedAt(lookbackDays int) time.Time {
	days := 0
	if lookbackDays > 0 {
		days = g.rng.Intn(lookbackDays + 1)
	}
	return g.now().AddDate(0, 0, -days)
}

// sampleID keeps the sample record ids stable across runs.
func sampleID(seq int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("%s%04d", sampleIDPrefix, seq))
}
