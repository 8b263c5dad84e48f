package engine

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ppcsim/internal/core/domain"
)

// Simulator turns campaign configuration into daily performance records.
// It owns its random source, so one Simulator serves one run at a time.
type Simulator struct {
	cfg    Config
	src    Source
	logger *slog.Logger
}

// New creates a simulator. A nil logger discards output.
func New(cfg Config, src Source, logger *slog.Logger) *Simulator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Days <= 0 {
		cfg.Days = DefaultConfig().Days
	}
	return &Simulator{cfg: cfg, src: src, logger: logger}
}

// WeekResult is the output of Run. Skipped lists the entities that were
// left out because of their configuration; they never abort a run.
type WeekResult struct {
	Records []domain.DailyPerformanceRecord
	Skipped []*ConfigurationError
}

// Run simulates cfg.Days consecutive days starting at start for every
// campaign. Records are ordered by day, then campaign, ad group, keywords
// before product targets, each in declaration order.
func (s *Simulator) Run(runID uuid.UUID, ownerID string, start time.Time, campaigns []domain.Campaign) WeekResult {
	var res WeekResult
	for i := 0; i < s.cfg.Days; i++ {
		day := start.AddDate(0, 0, i)
		for _, c := range campaigns {
			recs, skipped := s.SimulateDay(runID, ownerID, day, c)
			res.Records = append(res.Records, recs...)
			res.Skipped = append(res.Skipped, skipped...)
		}
	}
	s.logger.Debug("simulation finished",
		slog.String("run_id", runID.String()),
		slog.String("owner_id", ownerID),
		slog.Int("records", len(res.Records)),
		slog.Int("skipped", len(res.Skipped)),
	)
	return res
}

// SimulateDay runs one campaign for one day. An inactive campaign yields
// nothing. The campaign's spend counter starts at zero and is threaded
// through every entity in processing order.
func (s *Simulator) SimulateDay(runID uuid.UUID, ownerID string, day time.Time, c domain.Campaign) ([]domain.DailyPerformanceRecord, []*ConfigurationError) {
	if !c.ActiveOn(day) {
		return nil, nil
	}
	if len(c.Products) == 0 {
		return nil, []*ConfigurationError{s.skip(c.ID, 0, 0, ErrNoAdvertisedProducts)}
	}

	var (
		records []domain.DailyPerformanceRecord
		skipped []*ConfigurationError
		spent   = decimal.Zero
	)
	for _, ag := range c.AdGroups {
		if ag.Status != domain.StatusEnabled {
			continue
		}
		for _, kw := range ag.Keywords {
			if kw.Status != domain.StatusEnabled {
				continue
			}
			if !kw.Bid.IsPositive() {
				skipped = append(skipped, s.skip(c.ID, ag.ID, kw.ID, ErrNoBid))
				continue
			}
			var rec domain.DailyPerformanceRecord
			rec, spent = s.simulateTarget(day, c, ag.ID, KeywordTarget(kw), spent)
			rec.RunID, rec.OwnerID = runID, ownerID
			records = append(records, rec)
		}
		for _, pt := range ag.ProductTargets {
			if pt.Status != domain.StatusEnabled {
				continue
			}
			t, err := ProductTargetTarget(pt, ag, s.cfg.FloorBid)
			if err != nil {
				skipped = append(skipped, s.skip(c.ID, ag.ID, pt.ID, err))
				continue
			}
			var rec domain.DailyPerformanceRecord
			rec, spent = s.simulateTarget(day, c, ag.ID, t, spent)
			rec.RunID, rec.OwnerID = runID, ownerID
			records = append(records, rec)
		}
	}
	return records, skipped
}

// simulateTarget runs demand, auction, pacing and conversion for one entity
// and returns its record together with the campaign's new daily spend.
func (s *Simulator) simulateTarget(day time.Time, c domain.Campaign, adGroupID int64, t Target, spent decimal.Decimal) (domain.DailyPerformanceRecord, decimal.Decimal) {
	product := c.Products[s.src.IntN(len(c.Products))]
	benchmark := BenchmarkBid(product.CompetitiveIntensity)

	demand := PotentialDemand(s.src, s.cfg, t, product, benchmark)
	cpc := decimal.Zero
	if demand.Clicks > 0 {
		cpc = SimulateCPC(s.src, t.Bid, benchmark, product.CompetitiveIntensity)
	}
	alloc := Allocate(demand.Impressions, demand.Clicks, cpc, c.DailyBudget, spent)

	var orders int64
	if alloc.Clicks > 0 {
		var relevance float64
		if t.Kind == domain.EntityKeyword {
			relevance = TargetRelevanceForConversion(t.Label, product, IsNegativeLike(t.Label, product))
		} else {
			relevance = ProductTargetRelevanceForConversion(t.TargetingType)
		}
		cvr := DynamicCVR(product.BaselineCVR, ProductQualityForConversion(product), relevance)
		orders = SimulateConversions(s.src, s.cfg.Conversion, alloc.Clicks, cvr)
	}
	sales := product.AvgSellingPrice.Mul(decimal.NewFromInt(orders))

	rec := domain.DailyPerformanceRecord{
		Date:        day,
		CampaignID:  c.ID,
		AdGroupID:   adGroupID,
		EntityType:  t.Kind,
		EntityID:    t.ID,
		ProductID:   product.ID,
		Placement:   domain.Placements[s.src.IntN(len(domain.Placements))],
		Impressions: alloc.Impressions,
		Clicks:      alloc.Clicks,
		Spend:       alloc.Spend,
		Orders:      orders,
		Sales:       sales,
		Metrics:     Derive(alloc.Impressions, alloc.Clicks, alloc.Spend, orders, sales),
	}
	return rec, alloc.SpentSoFar
}

func (s *Simulator) skip(campaignID, adGroupID, entityID int64, err error) *ConfigurationError {
	ce := &ConfigurationError{CampaignID: campaignID, AdGroupID: adGroupID, EntityID: entityID, Err: err}
	s.logger.Warn("skipping misconfigured entity",
		slog.Int64("campaign_id", campaignID),
		slog.Int64("ad_group_id", adGroupID),
		slog.Int64("entity_id", entityID),
		slog.Any("error", err),
	)
	return ce
}
