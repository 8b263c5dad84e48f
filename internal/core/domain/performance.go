package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntityType tells which kind of targeting entity a record belongs to.
type EntityType string

const (
	EntityKeyword       EntityType = "keyword"
	EntityProductTarget EntityType = "product_target"
)

// Placement is where on the marketplace an ad was shown.
type Placement string

const (
	PlacementTopOfSearch  Placement = "top_of_search"
	PlacementProductPage  Placement = "product_page"
	PlacementRestOfSearch Placement = "rest_of_search"
)

// Placements lists the placements a record can be attributed to.
var Placements = []Placement{PlacementTopOfSearch, PlacementProductPage, PlacementRestOfSearch}

// Metrics are the ratios derived from raw counters. CTR, CVR and ACOS are
// percentages; ROAS is a plain ratio.
type Metrics struct {
	CPC  decimal.Decimal `json:"cpc"`
	CTR  float64         `json:"ctr"`
	CVR  float64         `json:"cvr"`
	ACOS float64         `json:"acos"`
	ROAS float64         `json:"roas"`
}

// DailyPerformanceRecord is the outcome of one targeting entity on one
// simulated day. Records are created by the engine and never mutated.
type DailyPerformanceRecord struct {
	RunID       uuid.UUID       `json:"run_id"`
	OwnerID     string          `json:"owner_id"`
	Date        time.Time       `json:"date"`
	CampaignID  int64           `json:"campaign_id"`
	AdGroupID   int64           `json:"ad_group_id"`
	EntityType  EntityType      `json:"entity_type"`
	EntityID    int64           `json:"entity_id"`
	ProductID   int64           `json:"product_id"`
	Placement   Placement       `json:"placement"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	Spend       decimal.Decimal `json:"spend"`
	Orders      int64           `json:"orders"`
	Sales       decimal.Decimal `json:"sales"`
	Metrics
}

// SimulationRun is the header persisted alongside a batch of records.
type SimulationRun struct {
	ID        uuid.UUID
	OwnerID   string
	StartDate time.Time
	Days      int
	Seed      int64
	CreatedAt time.Time
}

// CampaignSummary aggregates records of one campaign over a period.
type CampaignSummary struct {
	CampaignID  int64           `json:"campaign_id"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	Spend       decimal.Decimal `json:"spend"`
	Orders      int64           `json:"orders"`
	Sales       decimal.Decimal `json:"sales"`
	Metrics
}
