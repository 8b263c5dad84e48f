package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ppcsim/internal/core/domain"
)

// SimulationUseCase defines the business operations exposed by the
// simulator. This interface is the primary port into the application.
type SimulationUseCase interface {
	// RunWeek advances one owner's marketplace by one simulated week and
	// persists the outcome. Nothing is stored when it returns an error.
	RunWeek(ctx context.Context, req RunReq) (*RunResp, error)

	// RunWeeks runs several owners concurrently. Owners are independent;
	// the first failure cancels the remaining runs.
	RunWeeks(ctx context.Context, reqs []RunReq) ([]*RunResp, error)

	// GetCampaignSummaries returns aggregated performance per campaign.
	GetCampaignSummaries(ctx context.Context, req SummaryReq) ([]domain.CampaignSummary, error)
}

// RunReq asks for one simulated week. A nil Seed lets the service pick one;
// the chosen seed is reported back so the run can be replayed.
type RunReq struct {
	OwnerID   string
	StartDate time.Time
	Seed      *int64
}

// RunResp describes a stored run. Skipped lists entities left out because
// of their configuration.
type RunResp struct {
	RunID     uuid.UUID                       `json:"run_id"`
	OwnerID   string                          `json:"owner_id"`
	StartDate time.Time                       `json:"start_date"`
	Seed      int64                           `json:"seed"`
	Records   []domain.DailyPerformanceRecord `json:"records"`
	Skipped   []string                        `json:"skipped,omitempty"`
}
