package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/civicdesk/civicdesk/internal/domain/complaint"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/models"
	"github.com/civicdesk/civicdesk/internal/shared/db"
)

// ComplaintIDGenerator proposes PREFIX-YYYY-NNN identifiers from the highest stored
// sequence of the year. It holds no in-process counter: collisions between concurrent
// requests surface as unique violations and are retried by the caller.
type ComplaintIDGenerator struct {
	db     *gorm.DB
	prefix string
}

func NewComplaintIDGenerator(db *gorm.DB, prefix string) *ComplaintIDGenerator {
	if prefix == "" {
		prefix = complaint.DefaultIDPrefix
	}
	return &ComplaintIDGenerator{db: db, prefix: prefix}
}

func (g *ComplaintIDGenerator) Next(ctx context.Context, year int) (string, error) {
	yearPrefix := complaint.YearPrefix(g.prefix, year)

	// Longer suffixes are larger numbers, so HA-2025-1000 sorts above HA-2025-999.
	var latest []string
	err := db.GetTxFromContext(ctx, g.db).
		Model(&models.ComplaintModel{}).
		Where("complaint_id LIKE ?", yearPrefix+"%").
		Order("LENGTH(complaint_id) DESC").
		Order("complaint_id DESC").
		Limit(1).
		Pluck("complaint_id", &latest).Error
	if err != nil {
		return "", fmt.Errorf("failed to get latest complaint id: %w", err)
	}

	seq := 1
	if len(latest) > 0 {
		last, ok := complaint.ParseSequence(latest[0], g.prefix, year)
		if !ok {
			return "", fmt.Errorf("malformed complaint id in store: %s", latest[0])
		}
		seq = last + 1
	}

	return complaint.FormatComplaintID(g.prefix, year, seq), nil
}
