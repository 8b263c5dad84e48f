package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is shared by campaigns, ad groups and targeting entities.
type Status string

const (
	StatusEnabled  Status = "enabled"
	StatusPaused   Status = "paused"
	StatusArchived Status = "archived"
)

// MatchType is the keyword match type.
type MatchType string

const (
	MatchBroad  MatchType = "broad"
	MatchPhrase MatchType = "phrase"
	MatchExact  MatchType = "exact"
)

// TargetingType is the kind of product target.
type TargetingType string

const (
	TargetASINSameAs     TargetingType = "asin_same_as"
	TargetCategorySameAs TargetingType = "category_same_as"
)

// Campaign represents a sponsored products campaign owned by one student.
// Budgets and bids are decimal currency amounts. EndDate is optional.
type Campaign struct {
	ID          int64
	OwnerID     string
	Name        string
	DailyBudget decimal.Decimal
	StartDate   time.Time
	EndDate     *time.Time
	Status      Status
	Products    []Product
	AdGroups    []AdGroup
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ActiveOn reports whether the campaign runs on the given calendar day.
// Only the date part of day and of the campaign window is compared.
func (c Campaign) ActiveOn(day time.Time) bool {
	if c.Status != StatusEnabled {
		return false
	}
	d := truncateDay(day)
	if truncateDay(c.StartDate).After(d) {
		return false
	}
	if c.EndDate != nil && truncateDay(*c.EndDate).Before(d) {
		return false
	}
	return true
}

// AdGroup groups targeting entities inside a campaign. DefaultBid is used by
// product targets that carry no bid of their own.
type AdGroup struct {
	ID             int64
	CampaignID     int64
	Name           string
	Status         Status
	DefaultBid     *decimal.Decimal
	Keywords       []Keyword
	ProductTargets []ProductTarget
}

// Keyword is a bid on a search phrase.
type Keyword struct {
	ID        int64
	AdGroupID int64
	Text      string
	MatchType MatchType
	Bid       decimal.Decimal
	Status    Status
}

// ProductTarget is a bid on a product detail page or a category.
type ProductTarget struct {
	ID            int64
	AdGroupID     int64
	TargetingType TargetingType
	Value         string
	Bid           *decimal.Decimal
	Status        Status
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
