package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"ppcsim/internal/core/domain"
)

func seedTargets(ctx context.Context, tx pgx.Tx, adGroupID int64, keywords []domain.Keyword, targets []domain.ProductTarget) error {
	batch := &pgx.Batch{}
	for _, kw := range keywords {
		batch.Queue(`INSERT INTO keywords (ad_group_id, text, match_type, bid, status)
VALUES ($1,$2,$3,$4::NUMERIC,$5)`, adGroupID, kw.Text, string(kw.MatchType), kw.Bid.String(), string(kw.Status))
	}
	for _, pt := range targets {
		batch.Queue(`INSERT INTO product_targets (ad_group_id, targeting_type, value, bid, status)
VALUES ($1,$2,$3,$4::NUMERIC,$5)`, adGroupID, string(pt.TargetingType), pt.Value, optionalText(pt.Bid), string(pt.Status))
	}
	if batch.Len() == 0 {
		return nil
	}
	return tx.SendBatch(ctx, batch).Close()
}

func optionalText(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
