package engine

import (
	"github.com/shopspring/decimal"

	"ppcsim/internal/core/domain"
)

// Target is a keyword or product target flattened into the fields the
// models need. Bid is already resolved.
type Target struct {
	Kind          domain.EntityType
	ID            int64
	Label         string
	MatchType     domain.MatchType
	TargetingType domain.TargetingType
	Bid           decimal.Decimal
}

// KeywordTarget wraps an enabled keyword.
func KeywordTarget(k domain.Keyword) Target {
	return Target{
		Kind:      domain.EntityKeyword,
		ID:        k.ID,
		Label:     k.Text,
		MatchType: k.MatchType,
		Bid:       k.Bid,
	}
}

// ProductTargetTarget resolves the bid of a product target: its own bid,
// then the ad group default, then the floor. It fails with ErrNoBid when
// none of them is positive.
func ProductTargetTarget(pt domain.ProductTarget, ag domain.AdGroup, floor decimal.Decimal) (Target, error) {
	bid, ok := resolveBid(pt.Bid, ag.DefaultBid, floor)
	if !ok {
		return Target{}, ErrNoBid
	}
	return Target{
		Kind:          domain.EntityProductTarget,
		ID:            pt.ID,
		Label:         pt.Value,
		TargetingType: pt.TargetingType,
		Bid:           bid,
	}, nil
}

func resolveBid(own, groupDefault *decimal.Decimal, floor decimal.Decimal) (decimal.Decimal, bool) {
	if own != nil && own.IsPositive() {
		return *own, true
	}
	if groupDefault != nil && groupDefault.IsPositive() {
		return *groupDefault, true
	}
	if floor.IsPositive() {
		return floor, true
	}
	return decimal.Zero, false
}
