// Package redis wraps a SimulationRepository with a Redis read-through
// cache for campaign summaries.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ppcsim/internal/core/domain"
	"ppcsim/internal/core/port"
	"ppcsim/internal/metrics"
)

// CachedRepository caches GetCampaignSummaries per owner and date range.
// SaveRun writes to the primary store and then drops every cached summary
// of the owner; the next read repopulates. Campaign listings are not
// cached because the simulator must see configuration changes at once.
type CachedRepository struct {
	primary port.SimulationRepository
	rdb     *redis.Client
	ttl     time.Duration
}

// NewCachedRepository creates a cached wrapper around a primary store.
func NewCachedRepository(primary port.SimulationRepository, rdb *redis.Client, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		primary: primary,
		rdb:     rdb,
		ttl:     ttl,
	}
}

// --- Write-through (write to primary, invalidate cache) ---

func (s *CachedRepository) SaveRun(ctx context.Context, run domain.SimulationRun, records []domain.DailyPerformanceRecord) error {
	if err := s.primary.SaveRun(ctx, run, records); err != nil {
		return err
	}
	s.invalidate(ctx, run.OwnerID)
	return nil
}

// --- Read-through (check cache first) ---

func (s *CachedRepository) GetCampaignSummaries(ctx context.Context, req port.SummaryReq) ([]domain.CampaignSummary, error) {
	key := summaryKey(req)
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var rows []domain.CampaignSummary
		if json.Unmarshal(data, &rows) == nil {
			metrics.SummaryCacheTotal.WithLabelValues("hit").Inc()
			return rows, nil
		}
	}
	metrics.SummaryCacheTotal.WithLabelValues("miss").Inc()

	rows, err := s.primary.GetCampaignSummaries(ctx, req)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(rows); err == nil {
		pipe := s.rdb.TxPipeline()
		pipe.Set(ctx, key, data, s.ttl)
		pipe.SAdd(ctx, ownerKeysKey(req.OwnerID), key)
		pipe.Expire(ctx, ownerKeysKey(req.OwnerID), s.ttl)
		_, _ = pipe.Exec(ctx)
	}
	return rows, nil
}

// --- Passthrough (not cached) ---

func (s *CachedRepository) ListCampaigns(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	return s.primary.ListCampaigns(ctx, ownerID)
}

// --- Cache helpers ---

func (s *CachedRepository) invalidate(ctx context.Context, ownerID string) {
	set := ownerKeysKey(ownerID)
	keys, err := s.rdb.SMembers(ctx, set).Result()
	if err != nil {
		return
	}
	s.rdb.Del(ctx, append(keys, set)...)
}

func summaryKey(req port.SummaryReq) string {
	return fmt.Sprintf("summaries:%s:%s:%s", req.OwnerID, dateKey(req.From), dateKey(req.To))
}

func ownerKeysKey(ownerID string) string { return fmt.Sprintf("summaries:%s:keys", ownerID) }

func dateKey(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
