package redis

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ppcsim/internal/core/domain"
	"ppcsim/internal/core/port"
	"ppcsim/internal/core/port/mocks"
)

// unreachable returns a client whose every command fails fast.
func unreachable(t *testing.T) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestSummaryKey(t *testing.T) {
	from := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "summaries:s1:2024-03-04:-", summaryKey(port.SummaryReq{OwnerID: "s1", From: from}))
	assert.Equal(t, "summaries:s1:-:-", summaryKey(port.SummaryReq{OwnerID: "s1"}))
	assert.Equal(t, "summaries:s1:keys", ownerKeysKey("s1"))
}

func TestCachedRepository_FallsBackWhenRedisDown(t *testing.T) {
	req := port.SummaryReq{OwnerID: "s1"}
	want := []domain.CampaignSummary{{CampaignID: 3, Clicks: 9}}

	primary := mocks.NewMockSimulationRepository(t)
	primary.EXPECT().GetCampaignSummaries(mock.Anything, req).Return(want, nil)

	repo := NewCachedRepository(primary, unreachable(t), time.Minute)
	got, err := repo.GetCampaignSummaries(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCachedRepository_SaveRunGoesToPrimary(t *testing.T) {
	run := domain.SimulationRun{ID: uuid.New(), OwnerID: "s1"}
	recs := []domain.DailyPerformanceRecord{{OwnerID: "s1", CampaignID: 1}}

	primary := mocks.NewMockSimulationRepository(t)
	primary.EXPECT().SaveRun(mock.Anything, run, recs).Return(nil)

	repo := NewCachedRepository(primary, unreachable(t), time.Minute)
	require.NoError(t, repo.SaveRun(context.Background(), run, recs))
}

func TestCachedRepository_SaveRunErrorSkipsInvalidation(t *testing.T) {
	run := domain.SimulationRun{ID: uuid.New(), OwnerID: "s1"}

	primary := mocks.NewMockSimulationRepository(t)
	primary.EXPECT().SaveRun(mock.Anything, run, mock.Anything).Return(port.ErrRunExists)

	repo := NewCachedRepository(primary, unreachable(t), time.Minute)
	assert.ErrorIs(t, repo.SaveRun(context.Background(), run, nil), port.ErrRunExists)
}

func TestCachedRepository_ListCampaignsPassthrough(t *testing.T) {
	primary := mocks.NewMockSimulationRepository(t)
	primary.EXPECT().ListCampaigns(mock.Anything, "s1").Return([]domain.Campaign{{ID: 1}}, nil)

	repo := NewCachedRepository(primary, unreachable(t), time.Minute)
	got, err := repo.ListCampaigns(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
