// Package report aggregates daily performance records. Ratios are always
// re-derived from summed counters, never averaged.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"ppcsim/internal/core/domain"
	"ppcsim/internal/core/engine"
)

// TargetSummary aggregates one targeting entity over a period.
type TargetSummary struct {
	CampaignID  int64             `json:"campaign_id"`
	AdGroupID   int64             `json:"ad_group_id"`
	EntityType  domain.EntityType `json:"entity_type"`
	EntityID    int64             `json:"entity_id"`
	Impressions int64             `json:"impressions"`
	Clicks      int64             `json:"clicks"`
	Spend       decimal.Decimal   `json:"spend"`
	Orders      int64             `json:"orders"`
	Sales       decimal.Decimal   `json:"sales"`
	domain.Metrics
}

type totals struct {
	impressions int64
	clicks      int64
	spend       decimal.Decimal
	orders      int64
	sales       decimal.Decimal
}

func (t *totals) add(r domain.DailyPerformanceRecord) {
	t.impressions += r.Impressions
	t.clicks += r.Clicks
	t.spend = t.spend.Add(r.Spend)
	t.orders += r.Orders
	t.sales = t.sales.Add(r.Sales)
}

func (t totals) metrics() domain.Metrics {
	return engine.Derive(t.impressions, t.clicks, t.spend, t.orders, t.sales)
}

// Totals sums every record into one owner-wide summary. CampaignID is zero.
func Totals(records []domain.DailyPerformanceRecord) domain.CampaignSummary {
	var t totals
	for _, r := range records {
		t.add(r)
	}
	return domain.CampaignSummary{
		Impressions: t.impressions,
		Clicks:      t.clicks,
		Spend:       t.spend,
		Orders:      t.orders,
		Sales:       t.sales,
		Metrics:     t.metrics(),
	}
}

// SummarizeCampaigns groups records by campaign, ordered by campaign id.
func SummarizeCampaigns(records []domain.DailyPerformanceRecord) []domain.CampaignSummary {
	byCampaign := map[int64]*totals{}
	for _, r := range records {
		t, ok := byCampaign[r.CampaignID]
		if !ok {
			t = &totals{}
			byCampaign[r.CampaignID] = t
		}
		t.add(r)
	}

	out := make([]domain.CampaignSummary, 0, len(byCampaign))
	for id, t := range byCampaign {
		out = append(out, domain.CampaignSummary{
			CampaignID:  id,
			Impressions: t.impressions,
			Clicks:      t.clicks,
			Spend:       t.spend,
			Orders:      t.orders,
			Sales:       t.sales,
			Metrics:     t.metrics(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CampaignID < out[j].CampaignID })
	return out
}

type targetKey struct {
	campaignID int64
	adGroupID  int64
	entityType domain.EntityType
	entityID   int64
}

// SummarizeTargets groups records by targeting entity, ordered by campaign,
// ad group, entity type and entity id.
func SummarizeTargets(records []domain.DailyPerformanceRecord) []TargetSummary {
	byTarget := map[targetKey]*totals{}
	for _, r := range records {
		k := targetKey{r.CampaignID, r.AdGroupID, r.EntityType, r.EntityID}
		t, ok := byTarget[k]
		if !ok {
			t = &totals{}
			byTarget[k] = t
		}
		t.add(r)
	}

	out := make([]TargetSummary, 0, len(byTarget))
	for k, t := range byTarget {
		out = append(out, TargetSummary{
			CampaignID:  k.campaignID,
			AdGroupID:   k.adGroupID,
			EntityType:  k.entityType,
			EntityID:    k.entityID,
			Impressions: t.impressions,
			Clicks:      t.clicks,
			Spend:       t.spend,
			Orders:      t.orders,
			Sales:       t.sales,
			Metrics:     t.metrics(),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.CampaignID != b.CampaignID {
			return a.CampaignID < b.CampaignID
		}
		if a.AdGroupID != b.AdGroupID {
			return a.AdGroupID < b.AdGroupID
		}
		if a.EntityType != b.EntityType {
			return a.EntityType < b.EntityType
		}
		return a.EntityID < b.EntityID
	})
	return out
}
