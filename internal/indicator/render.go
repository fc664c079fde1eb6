package indicator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"

	"github.com/jwalitptl/health-indicators/internal/model"
)

const (
	// TableName is the target of every rendered statement.
	TableName = "public.health_indicators"

	// RecordedAtLayout is ISO-8601 without a zone, microsecond precision.
	RecordedAtLayout = "2006-01-02T15:04:05.000000"

	insertKeyword = "INSERT INTO"
	bannerRule    = "-- ============================================================================"
)

// Columns lists the inserted columns in their fixed order.
var Columns = []string{
	"id",
	"resident_id",
	"indicator_type",
	"value",
	"unit",
	"status",
	"notes",
	"recorded_by",
	"recorded_at",
	"created_at",
}

// RenderInsert renders one standalone INSERT statement. created_at is always
// the server-side now().
func RenderInsert(rec model.HealthIndicator) string {
	values := []string{
		pq.QuoteLiteral(rec.ID.String()),
		pq.QuoteLiteral(rec.ResidentID.String()),
		pq.QuoteLiteral(rec.IndicatorType),
		strconv.Itoa(rec.Value),
		pq.QuoteLiteral(rec.Unit),
		pq.QuoteLiteral(string(rec.Status)),
		pq.QuoteLiteral(rec.Notes),
		pq.QuoteLiteral(rec.RecordedBy.String()),
		pq.QuoteLiteral(rec.RecordedAt.Format(RecordedAtLayout)),
		"now()",
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (\n  %s\n) VALUES (\n  %s\n);",
		insertKeyword,
		TableName,
		strings.Join(Columns, ",\n  "),
		strings.Join(values, ",\n  "),
	)
	return b.String()
}

// Banner renders the comment header that opens every document.
func Banner(lines ...string) []string {
	out := make([]string, 0, len(lines)+2)
	out = append(out, bannerRule)
	for _, line := range lines {
		out = append(out, "-- "+line)
	}
	return append(out, bannerRule+"\n")
}

// Document joins banner and statements into one newline separated document.
func Document(banner []string, statements []string) string {
	parts := make([]string, 0, len(banner)+len(statements))
	parts = append(parts, banner...)
	parts = append(parts, statements...)
	return strings.Join(parts, "\n")
}

// RenderAll renders each record as a standalone INSERT statement.
func RenderAll(records []model.HealthIndicator) []string {
	statements := make([]string, 0, len(records))
	for _, rec := range records {
		statements = append(statements, RenderInsert(rec))
	}
	return statements
}

// RenderDocument renders records under a banner built from bannerLines.
func RenderDocument(bannerLines []string, records []model.HealthIndicator) string {
	return Document(Banner(bannerLines...), RenderAll(records))
}

// CountInserts counts the INSERT statements of a document.
func CountInserts(doc string) int {
	return strings.Count(doc, insertKeyword)
}
