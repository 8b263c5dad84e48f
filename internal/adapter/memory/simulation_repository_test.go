package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppcsim/internal/core/domain"
	"ppcsim/internal/core/port"
)

var day = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

func rec(owner string, campaignID int64, date time.Time, spend string) domain.DailyPerformanceRecord {
	return domain.DailyPerformanceRecord{
		OwnerID:     owner,
		CampaignID:  campaignID,
		Date:        date,
		EntityType:  domain.EntityKeyword,
		Impressions: 100,
		Clicks:      2,
		Spend:       decimal.RequireFromString(spend),
	}
}

func TestListCampaigns_ReturnsCopy(t *testing.T) {
	repo := NewSimulationRepository()
	repo.PutCampaigns("s1", []domain.Campaign{{ID: 1, Name: "A"}})

	got, err := repo.ListCampaigns(context.Background(), "s1")
	require.NoError(t, err)
	got[0].Name = "mutated"

	again, err := repo.ListCampaigns(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "A", again[0].Name)

	_, err = repo.ListCampaigns(context.Background(), "")
	assert.ErrorIs(t, err, port.ErrOwnerRequired)
}

func TestSaveRun_RejectsDuplicate(t *testing.T) {
	repo := NewSimulationRepository()
	run := domain.SimulationRun{ID: uuid.New(), OwnerID: "s1"}

	require.NoError(t, repo.SaveRun(context.Background(), run, []domain.DailyPerformanceRecord{rec("s1", 1, day, "1.00")}))
	err := repo.SaveRun(context.Background(), run, []domain.DailyPerformanceRecord{rec("s1", 1, day, "1.00")})
	require.ErrorIs(t, err, port.ErrRunExists)

	// the rejected batch left nothing behind
	assert.Len(t, repo.Records(port.SummaryReq{OwnerID: "s1"}), 1)
}

func TestGetCampaignSummaries_FiltersOwnerAndDates(t *testing.T) {
	repo := NewSimulationRepository()
	require.NoError(t, repo.SaveRun(context.Background(), domain.SimulationRun{ID: uuid.New()}, []domain.DailyPerformanceRecord{
		rec("s1", 1, day, "1.00"),
		rec("s1", 1, day.AddDate(0, 0, 1), "2.00"),
		rec("s1", 2, day.AddDate(0, 0, 5), "4.00"),
		rec("s2", 1, day, "8.00"),
	}))

	all, err := repo.GetCampaignSummaries(context.Background(), port.SummaryReq{OwnerID: "s1"})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[0].Spend.Equal(decimal.RequireFromString("3.00")))

	window, err := repo.GetCampaignSummaries(context.Background(), port.SummaryReq{OwnerID: "s1", From: day.AddDate(0, 0, 1), To: day.AddDate(0, 0, 1)})
	require.NoError(t, err)
	require.Len(t, window, 1)
	assert.True(t, window[0].Spend.Equal(decimal.RequireFromString("2.00")))
}

func TestSaveRun_Concurrent(t *testing.T) {
	repo := NewSimulationRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.SaveRun(context.Background(), domain.SimulationRun{ID: uuid.New()}, []domain.DailyPerformanceRecord{rec("s1", 1, day, "1.00")})
		}()
	}
	wg.Wait()

	sum, err := repo.GetCampaignSummaries(context.Background(), port.SummaryReq{OwnerID: "s1"})
	require.NoError(t, err)
	require.Len(t, sum, 1)
	assert.Equal(t, int64(5000), sum[0].Impressions)
}
