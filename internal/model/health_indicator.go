package model

import (
	"time"

	"github.com/google/uuid"
)

type IndicatorStatus string

const (
	StatusNormal   IndicatorStatus = "normal"
	StatusWarning  IndicatorStatus = "warning"
	StatusCritical IndicatorStatus = "critical"
)

// HealthIndicator is one row of public.health_indicators. created_at is left
// to the database (now()) and therefore has no field here.
type HealthIndicator struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	ResidentID    uuid.UUID       `json:"resident_id" db:"resident_id"`
	IndicatorType string          `json:"indicator_type" db:"indicator_type"`
	Value         int             `json:"value" db:"value"`
	Unit          string          `json:"unit" db:"unit"`
	Status        IndicatorStatus `json:"status" db:"status"`
	Notes         string          `json:"notes" db:"notes"`
	RecordedBy    uuid.UUID       `json:"recorded_by" db:"recorded_by"`
	RecordedAt    time.Time       `json:"recorded_at" db:"recorded_at"`
}
