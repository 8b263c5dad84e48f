package port

import (
	"context"
	"errors"
	"time"

	"ppcsim/internal/core/domain"
)

var (
	ErrOwnerRequired = errors.New("owner id is required")
	ErrNoCampaigns   = errors.New("owner has no campaigns")
	ErrRunExists     = errors.New("simulation run already stored")
)

// SimulationRepository defines the persistence layer the simulator reads
// configuration from and writes results to. It is an outbound port in
// hexagonal architecture. Implementations must be safe for concurrent use.
type SimulationRepository interface {
	// ListCampaigns returns every campaign of the owner with advertised
	// products, ad groups, keywords and product targets populated in
	// declaration order.
	ListCampaigns(ctx context.Context, ownerID string) ([]domain.Campaign, error)
	// SaveRun stores the run header and all of its records atomically.
	// On error nothing is stored.
	SaveRun(ctx context.Context, run domain.SimulationRun, records []domain.DailyPerformanceRecord) error
	// GetCampaignSummaries aggregates stored records per campaign.
	GetCampaignSummaries(ctx context.Context, req SummaryReq) ([]domain.CampaignSummary, error)
}

// SummaryReq filters records by owner and an inclusive date range. Zero
// From or To leaves that side open.
type SummaryReq struct {
	OwnerID string
	From    time.Time
	To      time.Time
}
