package engine

import (
	"github.com/shopspring/decimal"
)

// Allocation is what the pacer admits for one entity. SpentSoFar is the
// campaign's running daily spend after this entity, to be passed to the
// next Allocate call of the same campaign and day.
type Allocation struct {
	Impressions int64
	Clicks      int64
	Spend       decimal.Decimal
	SpentSoFar  decimal.Decimal
}

// Allocate clips an entity's potential traffic to the campaign's remaining
// daily budget. Entities are admitted first come, first served: whoever is
// allocated first may exhaust the budget for everyone after it.
//
// When clicks are clipped, impressions shrink by the same ratio so the CTR
// of the stored record matches what was billed. Once nothing is billable no
// impressions are reported either. Total spend never exceeds dailyBudget.
func Allocate(potentialImpressions, potentialClicks int64, cpc, dailyBudget, spentSoFar decimal.Decimal) Allocation {
	if spentSoFar.GreaterThanOrEqual(dailyBudget) {
		return Allocation{Spend: decimal.Zero, SpentSoFar: spentSoFar}
	}
	if potentialClicks <= 0 {
		return Allocation{Impressions: potentialImpressions, Spend: decimal.Zero, SpentSoFar: spentSoFar}
	}

	remaining := dailyBudget.Sub(spentSoFar)
	potentialSpend := cpc.Mul(decimal.NewFromInt(potentialClicks))
	if potentialSpend.LessThanOrEqual(remaining) {
		return Allocation{
			Impressions: potentialImpressions,
			Clicks:      potentialClicks,
			Spend:       potentialSpend,
			SpentSoFar:  spentSoFar.Add(potentialSpend),
		}
	}

	var clicks int64
	if cpc.IsPositive() {
		clicks = remaining.Div(cpc).Floor().IntPart()
	}
	if clicks > potentialClicks {
		clicks = potentialClicks
	}
	spend := cpc.Mul(decimal.NewFromInt(clicks))
	impressions := potentialImpressions * clicks / potentialClicks
	if clicks == 0 && spend.IsZero() {
		impressions = 0
	}
	return Allocation{
		Impressions: impressions,
		Clicks:      clicks,
		Spend:       spend,
		SpentSoFar:  spentSoFar.Add(spend),
	}
}
