// Package memory holds an in-process SimulationRepository used by the
// offline CLI and tests. Nothing survives a restart.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"ppcsim/internal/core/domain"
	"ppcsim/internal/core/port"
	"ppcsim/internal/report"
)

// SimulationRepository implements port.SimulationRepository with in-memory
// maps guarded by a RWMutex. Reads return copies.
type SimulationRepository struct {
	mu        sync.RWMutex
	campaigns map[string][]domain.Campaign
	runs      map[uuid.UUID]domain.SimulationRun
	records   []domain.DailyPerformanceRecord
}

// NewSimulationRepository creates an empty store.
func NewSimulationRepository() *SimulationRepository {
	return &SimulationRepository{
		campaigns: make(map[string][]domain.Campaign),
		runs:      make(map[uuid.UUID]domain.SimulationRun),
	}
}

// PutCampaigns replaces the owner's campaigns.
func (s *SimulationRepository) PutCampaigns(ownerID string, campaigns []domain.Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.campaigns[ownerID] = slices.Clone(campaigns)
}

func (s *SimulationRepository) ListCampaigns(_ context.Context, ownerID string) ([]domain.Campaign, error) {
	if ownerID == "" {
		return nil, port.ErrOwnerRequired
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.campaigns[ownerID]), nil
}

func (s *SimulationRepository) SaveRun(_ context.Context, run domain.SimulationRun, records []domain.DailyPerformanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[run.ID]; ok {
		return fmt.Errorf("run %s: %w", run.ID, port.ErrRunExists)
	}
	s.runs[run.ID] = run
	s.records = append(s.records, records...)
	return nil
}

func (s *SimulationRepository) GetCampaignSummaries(_ context.Context, req port.SummaryReq) ([]domain.CampaignSummary, error) {
	if req.OwnerID == "" {
		return nil, port.ErrOwnerRequired
	}
	return report.SummarizeCampaigns(s.Records(req)), nil
}

// Records returns a copy of the stored records matching req in insertion
// order.
func (s *SimulationRepository) Records(req port.SummaryReq) []domain.DailyPerformanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.DailyPerformanceRecord
	for _, r := range s.records {
		if r.OwnerID != req.OwnerID {
			continue
		}
		if !req.From.IsZero() && r.Date.Before(req.From) {
			continue
		}
		if !req.To.IsZero() && r.Date.After(req.To) {
			continue
		}
		out = append(out, r)
	}
	return out
}
