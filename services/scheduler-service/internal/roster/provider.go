// Package roster abstracts where a day's duty roster comes from: the local
// database, or a central crew system over gRPC when built with protogen.
package roster

import (
	"context"

	"github.com/flightops/flightline/services/scheduler-service/internal/model"
	"github.com/flightops/flightline/services/scheduler-service/internal/storage"
)

// Provider supplies the roster rules for one duty date ("2006-01-02").
// Rules are returned as stored; filtering of inactive/voided/malformed rules
// happens in the availability index.
type Provider interface {
	RulesForDate(ctx context.Context, dutyDate string) ([]model.RosterRule, error)
}

type dbProvider struct {
	repo *storage.RosterRepository
}

// NewDBProvider serves roster rules from the service's own database.
func NewDBProvider(repo *storage.RosterRepository) Provider {
	return &dbProvider{repo: repo}
}

func (p *dbProvider) RulesForDate(ctx context.Context, dutyDate string) ([]model.RosterRule, error) {
	return p.repo.ListForDate(ctx, dutyDate)
}
