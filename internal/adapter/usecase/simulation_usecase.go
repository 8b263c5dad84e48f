package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"ppcsim/internal/core/domain"
	"ppcsim/internal/core/engine"
	"ppcsim/internal/core/port"
	"ppcsim/internal/metrics"
)

// SimulationUseCase drives the engine for one owner at a time and stores
// the results. It implements port.SimulationUseCase.
type SimulationUseCase struct {
	repo   port.SimulationRepository
	cfg    engine.Config
	logger *slog.Logger

	// seed is used for requests without their own seed. Nil means a
	// time-derived seed per run.
	seed    *int64
	workers int

	now   func() time.Time
	newID func() uuid.UUID
}

// Option customises a SimulationUseCase.
type Option func(*SimulationUseCase)

// WithSeed fixes the seed used when a request carries none.
func WithSeed(seed int64) Option {
	return func(u *SimulationUseCase) { u.seed = &seed }
}

// WithWorkers bounds the number of owners RunWeeks simulates concurrently.
func WithWorkers(n int) Option {
	return func(u *SimulationUseCase) {
		if n > 0 {
			u.workers = n
		}
	}
}

// WithLogger sets the logger passed down to the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(u *SimulationUseCase) {
		if logger != nil {
			u.logger = logger
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(u *SimulationUseCase) { u.now = now }
}

// NewSimulationUseCase creates the use case on top of repo.
func NewSimulationUseCase(repo port.SimulationRepository, cfg engine.Config, opts ...Option) *SimulationUseCase {
	u := &SimulationUseCase{
		repo:    repo,
		cfg:     cfg,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		workers: 1,
		now:     time.Now,
		newID:   uuid.New,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// RunWeek loads the owner's campaigns, simulates one week starting at
// req.StartDate and persists the run. The owner's stream is derived from
// the seed and the owner id, so replaying the same pair yields the same
// records.
func (u *SimulationUseCase) RunWeek(ctx context.Context, req port.RunReq) (*port.RunResp, error) {
	if req.OwnerID == "" {
		return nil, port.ErrOwnerRequired
	}
	campaigns, err := u.repo.ListCampaigns(ctx, req.OwnerID)
	if err != nil {
		metrics.SimulationRunsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("listing campaigns: %w", err)
	}
	if len(campaigns) == 0 {
		return nil, port.ErrNoCampaigns
	}

	seed := u.pickSeed(req.Seed)
	start := req.StartDate
	if start.IsZero() {
		start = u.now()
	}
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	run := domain.SimulationRun{
		ID:        u.newID(),
		OwnerID:   req.OwnerID,
		StartDate: start,
		Days:      u.cfg.Days,
		Seed:      seed,
		CreatedAt: u.now().UTC(),
	}

	logger := u.logger.With(slog.String("run_id", run.ID.String()), slog.String("owner_id", req.OwnerID))
	sim := engine.New(u.cfg, engine.NewSource(engine.DeriveSeed(seed, req.OwnerID)), logger)

	timer := prometheus.NewTimer(metrics.SimulationDuration)
	res := sim.Run(run.ID, req.OwnerID, start, campaigns)
	timer.ObserveDuration()

	if err = u.repo.SaveRun(ctx, run, res.Records); err != nil {
		metrics.SimulationRunsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("saving run %s: %w", run.ID, err)
	}

	metrics.SimulationRunsTotal.WithLabelValues("ok").Inc()
	metrics.SkippedEntitiesTotal.Add(float64(len(res.Skipped)))
	for _, r := range res.Records {
		metrics.RecordsTotal.WithLabelValues(string(r.EntityType)).Inc()
		metrics.SpendTotal.Add(r.Spend.InexactFloat64())
	}

	logger.Info("simulation stored",
		slog.Int64("seed", seed),
		slog.Int("records", len(res.Records)),
		slog.Int("skipped", len(res.Skipped)),
	)

	resp := &port.RunResp{
		RunID:     run.ID,
		OwnerID:   run.OwnerID,
		StartDate: run.StartDate,
		Seed:      seed,
		Records:   res.Records,
	}
	for _, s := range res.Skipped {
		resp.Skipped = append(resp.Skipped, s.Error())
	}
	return resp, nil
}

// RunWeeks simulates several owners concurrently, at most u.workers at a
// time. Responses keep the order of reqs. The first failure cancels the
// context handed to the remaining runs.
func (u *SimulationUseCase) RunWeeks(ctx context.Context, reqs []port.RunReq) ([]*port.RunResp, error) {
	out := make([]*port.RunResp, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)
	for i, req := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			resp, err := u.RunWeek(gctx, req)
			if err != nil {
				return fmt.Errorf("owner %q: %w", req.OwnerID, err)
			}
			out[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCampaignSummaries returns aggregated performance per campaign.
func (u *SimulationUseCase) GetCampaignSummaries(ctx context.Context, req port.SummaryReq) ([]domain.CampaignSummary, error) {
	if req.OwnerID == "" {
		return nil, port.ErrOwnerRequired
	}
	return u.repo.GetCampaignSummaries(ctx, req)
}

func (u *SimulationUseCase) pickSeed(requested *int64) int64 {
	switch {
	case requested != nil:
		return *requested
	case u.seed != nil:
		return *u.seed
	default:
		return u.now().UnixNano()
	}
}
