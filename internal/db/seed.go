package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"ppcsim/internal/scenario"
)

// Seed inserts the scenario's catalog and campaigns. Products are upserted
// by ASIN; campaigns are only created when the owner has none yet, so
// running Seed twice is harmless.
func Seed(ctx context.Context, db *pgxpool.Pool, sc *scenario.Scenario) error {
	products, err := sc.Catalog()
	if err != nil {
		return err
	}
	campaigns, err := sc.Build()
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	productIDs := make(map[string]int64, len(products))
	for _, p := range products {
		var keywords []byte
		if keywords, err = json.Marshal(p.Keywords); err != nil {
			return err
		}
		var id int64
		err = tx.QueryRow(ctx, `INSERT INTO products
    (asin, name, category, avg_selling_price, cost_of_goods_sold, baseline_cvr, review_count,
     star_rating, competitive_intensity, seasonality, keywords, created_at, updated_at)
VALUES ($1,$2,$3,$4::NUMERIC,$5::NUMERIC,$6,$7,$8,$9,$10,$11,now(),now())
ON CONFLICT (asin) DO UPDATE SET
    name = EXCLUDED.name,
    category = EXCLUDED.category,
    avg_selling_price = EXCLUDED.avg_selling_price,
    cost_of_goods_sold = EXCLUDED.cost_of_goods_sold,
    baseline_cvr = EXCLUDED.baseline_cvr,
    review_count = EXCLUDED.review_count,
    star_rating = EXCLUDED.star_rating,
    competitive_intensity = EXCLUDED.competitive_intensity,
    seasonality = EXCLUDED.seasonality,
    keywords = EXCLUDED.keywords,
    updated_at = now()
RETURNING id`,
			p.ASIN, p.Name, p.Category, p.AvgSellingPrice.String(), p.CostOfGoodsSold.String(),
			p.BaselineCVR, p.ReviewCount, p.StarRating, string(p.CompetitiveIntensity), p.Seasonality, keywords).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed product %s: %w", p.ASIN, err)
		}
		productIDs[p.ASIN] = id
	}

	var existing int
	if err = tx.QueryRow(ctx, `SELECT count(*) FROM campaigns WHERE owner_id = $1`, sc.OwnerID).Scan(&existing); err != nil {
		return err
	}
	if existing > 0 {
		err = tx.Commit(ctx)
		return err
	}

	for _, c := range campaigns {
		var campaignID int64
		err = tx.QueryRow(ctx, `INSERT INTO campaigns
    (owner_id, name, daily_budget, start_date, end_date, status, created_at, updated_at)
VALUES ($1,$2,$3::NUMERIC,$4,$5,$6,now(),now()) RETURNING id`,
			c.OwnerID, c.Name, c.DailyBudget.String(), c.StartDate, c.EndDate, string(c.Status)).Scan(&campaignID)
		if err != nil {
			return fmt.Errorf("seed campaign %q: %w", c.Name, err)
		}
		for pos, p := range c.Products {
			if _, err = tx.Exec(ctx, `INSERT INTO campaign_products (campaign_id, product_id, position)
VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`, campaignID, productIDs[p.ASIN], pos); err != nil {
				return err
			}
		}
		for _, ag := range c.AdGroups {
			var adGroupID int64
			err = tx.QueryRow(ctx, `INSERT INTO ad_groups (campaign_id, name, status, default_bid)
VALUES ($1,$2,$3,$4::NUMERIC) RETURNING id`,
				campaignID, ag.Name, string(ag.Status), optionalText(ag.DefaultBid)).Scan(&adGroupID)
			if err != nil {
				return fmt.Errorf("seed ad group %q: %w", ag.Name, err)
			}
			if err = seedTargets(ctx, tx, adGroupID, ag.Keywords, ag.ProductTargets); err != nil {
				return err
			}
		}
	}

	err = tx.Commit(ctx)
	return err
}
