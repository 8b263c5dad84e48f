package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"ppcsim/internal/core/domain"
	"ppcsim/internal/core/engine"
	"ppcsim/internal/core/port"
)

// SimulationRepository implements port.SimulationRepository using pgxpool
// for PostgreSQL. Money columns are NUMERIC and travel as text on reads.
type SimulationRepository struct {
	pool *pgxpool.Pool
}

// NewSimulationRepository returns a new repository instance.
func NewSimulationRepository(pool *pgxpool.Pool) *SimulationRepository {
	return &SimulationRepository{pool: pool}
}

var recordColumns = []string{
	"run_id", "owner_id", "date", "campaign_id", "ad_group_id",
	"entity_type", "entity_id", "product_id", "placement",
	"impressions", "clicks", "spend", "orders", "sales",
	"cpc", "ctr", "cvr", "acos", "roas",
}

// ListCampaigns loads the owner's campaigns and their children with one
// query per table, then stitches them together in id order.
func (r *SimulationRepository) ListCampaigns(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	if ownerID == "" {
		return nil, port.ErrOwnerRequired
	}

	rows, err := r.pool.Query(ctx, `
        SELECT id, owner_id, name, daily_budget::TEXT, start_date, end_date, status, created_at, updated_at
        FROM campaigns
        WHERE owner_id = $1
        ORDER BY id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query campaigns: %w", err)
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var (
			c      domain.Campaign
			budget string
		)
		err := row.Scan(&c.ID, &c.OwnerID, &c.Name, &budget, &c.StartDate, &c.EndDate, &c.Status, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return c, err
		}
		c.DailyBudget, err = decimal.NewFromString(budget)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan campaigns: %w", err)
	}
	if len(campaigns) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(campaigns))
	index := make(map[int64]int, len(campaigns))
	for i, c := range campaigns {
		ids[i] = c.ID
		index[c.ID] = i
	}

	if err = r.attachProducts(ctx, ids, campaigns, index); err != nil {
		return nil, err
	}
	if err = r.attachAdGroups(ctx, ids, campaigns, index); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *SimulationRepository) attachProducts(ctx context.Context, ids []int64, campaigns []domain.Campaign, index map[int64]int) error {
	rows, err := r.pool.Query(ctx, `
        SELECT cp.campaign_id, p.id, p.asin, p.name, p.category,
               p.avg_selling_price::TEXT, p.cost_of_goods_sold::TEXT,
               p.baseline_cvr, p.review_count, p.star_rating,
               p.competitive_intensity, p.seasonality, p.keywords,
               p.created_at, p.updated_at
        FROM campaign_products cp
        JOIN products p ON p.id = cp.product_id
        WHERE cp.campaign_id = ANY($1)
        ORDER BY cp.campaign_id, cp.position, p.id`, ids)
	if err != nil {
		return fmt.Errorf("query campaign products: %w", err)
	}
	type rawProduct struct {
		CampaignID int64
		Product    domain.Product
	}
	raw, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (rawProduct, error) {
		var (
			rp          rawProduct
			price, cogs string
			keywordsRaw []byte
			reviewCount int32
		)
		p := &rp.Product
		err := row.Scan(&rp.CampaignID, &p.ID, &p.ASIN, &p.Name, &p.Category,
			&price, &cogs,
			&p.BaselineCVR, &reviewCount, &p.StarRating,
			&p.CompetitiveIntensity, &p.Seasonality, &keywordsRaw,
			&p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return rp, err
		}
		p.ReviewCount = int(reviewCount)
		if p.AvgSellingPrice, err = decimal.NewFromString(price); err != nil {
			return rp, err
		}
		if p.CostOfGoodsSold, err = decimal.NewFromString(cogs); err != nil {
			return rp, err
		}
		if len(keywordsRaw) > 0 {
			if err = json.Unmarshal(keywordsRaw, &p.Keywords); err != nil {
				return rp, fmt.Errorf("product %d keywords: %w", p.ID, err)
			}
		}
		return rp, nil
	})
	if err != nil {
		return fmt.Errorf("scan campaign products: %w", err)
	}
	for _, rp := range raw {
		c := &campaigns[index[rp.CampaignID]]
		c.Products = append(c.Products, rp.Product)
	}
	return nil
}

func (r *SimulationRepository) attachAdGroups(ctx context.Context, ids []int64, campaigns []domain.Campaign, index map[int64]int) error {
	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign_id, name, status, default_bid::TEXT
        FROM ad_groups
        WHERE campaign_id = ANY($1)
        ORDER BY id`, ids)
	if err != nil {
		return fmt.Errorf("query ad groups: %w", err)
	}
	groups, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdGroup, error) {
		var (
			ag  domain.AdGroup
			bid *string
		)
		if err := row.Scan(&ag.ID, &ag.CampaignID, &ag.Name, &ag.Status, &bid); err != nil {
			return ag, err
		}
		var err error
		ag.DefaultBid, err = optionalDecimal(bid)
		return ag, err
	})
	if err != nil {
		return fmt.Errorf("scan ad groups: %w", err)
	}
	if len(groups) == 0 {
		return nil
	}

	groupIDs := make([]int64, len(groups))
	groupIndex := make(map[int64]int, len(groups))
	for i, ag := range groups {
		groupIDs[i] = ag.ID
		groupIndex[ag.ID] = i
	}

	if err = r.attachKeywords(ctx, groupIDs, groups, groupIndex); err != nil {
		return err
	}
	if err = r.attachProductTargets(ctx, groupIDs, groups, groupIndex); err != nil {
		return err
	}

	for _, ag := range groups {
		c := &campaigns[index[ag.CampaignID]]
		c.AdGroups = append(c.AdGroups, ag)
	}
	return nil
}

func (r *SimulationRepository) attachKeywords(ctx context.Context, ids []int64, groups []domain.AdGroup, index map[int64]int) error {
	rows, err := r.pool.Query(ctx, `
        SELECT id, ad_group_id, text, match_type, bid::TEXT, status
        FROM keywords
        WHERE ad_group_id = ANY($1)
        ORDER BY id`, ids)
	if err != nil {
		return fmt.Errorf("query keywords: %w", err)
	}
	keywords, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Keyword, error) {
		var (
			kw  domain.Keyword
			bid string
		)
		if err := row.Scan(&kw.ID, &kw.AdGroupID, &kw.Text, &kw.MatchType, &bid, &kw.Status); err != nil {
			return kw, err
		}
		var err error
		kw.Bid, err = decimal.NewFromString(bid)
		return kw, err
	})
	if err != nil {
		return fmt.Errorf("scan keywords: %w", err)
	}
	for _, kw := range keywords {
		ag := &groups[index[kw.AdGroupID]]
		ag.Keywords = append(ag.Keywords, kw)
	}
	return nil
}

func (r *SimulationRepository) attachProductTargets(ctx context.Context, ids []int64, groups []domain.AdGroup, index map[int64]int) error {
	rows, err := r.pool.Query(ctx, `
        SELECT id, ad_group_id, targeting_type, value, bid::TEXT, status
        FROM product_targets
        WHERE ad_group_id = ANY($1)
        ORDER BY id`, ids)
	if err != nil {
		return fmt.Errorf("query product targets: %w", err)
	}
	targets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ProductTarget, error) {
		var (
			pt  domain.ProductTarget
			bid *string
		)
		if err := row.Scan(&pt.ID, &pt.AdGroupID, &pt.TargetingType, &pt.Value, &bid, &pt.Status); err != nil {
			return pt, err
		}
		var err error
		pt.Bid, err = optionalDecimal(bid)
		return pt, err
	})
	if err != nil {
		return fmt.Errorf("scan product targets: %w", err)
	}
	for _, pt := range targets {
		ag := &groups[index[pt.AdGroupID]]
		ag.ProductTargets = append(ag.ProductTargets, pt)
	}
	return nil
}

// SaveRun writes the run header and streams the records with COPY inside a
// single serializable transaction. Any failure rolls everything back.
func (r *SimulationRepository) SaveRun(ctx context.Context, run domain.SimulationRun, records []domain.DailyPerformanceRecord) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `INSERT INTO simulation_runs (id, owner_id, start_date, days, seed, created_at)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT (id) DO NOTHING`,
		run.ID, run.OwnerID, run.StartDate, run.Days, run.Seed, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		err = fmt.Errorf("run %s: %w", run.ID, port.ErrRunExists)
		return err
	}

	_, err = tx.CopyFrom(ctx, pgx.Identifier{"daily_performance"}, recordColumns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			rec := records[i]
			return []any{
				rec.RunID, rec.OwnerID, rec.Date, rec.CampaignID, rec.AdGroupID,
				string(rec.EntityType), rec.EntityID, rec.ProductID, string(rec.Placement),
				rec.Impressions, rec.Clicks, numeric(rec.Spend), rec.Orders, numeric(rec.Sales),
				numeric(rec.CPC), rec.CTR, rec.CVR, rec.ACOS, rec.ROAS,
			}, nil
		}))
	if err != nil {
		return fmt.Errorf("copy records: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

// GetCampaignSummaries sums stored counters per campaign and re-derives the
// ratios from the sums.
func (r *SimulationRepository) GetCampaignSummaries(ctx context.Context, req port.SummaryReq) ([]domain.CampaignSummary, error) {
	if req.OwnerID == "" {
		return nil, port.ErrOwnerRequired
	}
	rows, err := r.pool.Query(ctx, `
        SELECT campaign_id,
               COALESCE(sum(impressions), 0)::BIGINT,
               COALESCE(sum(clicks), 0)::BIGINT,
               COALESCE(sum(spend), 0)::TEXT,
               COALESCE(sum(orders), 0)::BIGINT,
               COALESCE(sum(sales), 0)::TEXT
        FROM daily_performance
        WHERE owner_id = $1
          AND ($2::DATE IS NULL OR date >= $2::DATE)
          AND ($3::DATE IS NULL OR date <= $3::DATE)
        GROUP BY campaign_id
        ORDER BY campaign_id`, req.OwnerID, nullableDate(req.From), nullableDate(req.To))
	if err != nil {
		return nil, fmt.Errorf("query summaries: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignSummary, error) {
		var (
			s            domain.CampaignSummary
			spend, sales string
		)
		if err := row.Scan(&s.CampaignID, &s.Impressions, &s.Clicks, &spend, &s.Orders, &sales); err != nil {
			return s, err
		}
		var err error
		if s.Spend, err = decimal.NewFromString(spend); err != nil {
			return s, err
		}
		if s.Sales, err = decimal.NewFromString(sales); err != nil {
			return s, err
		}
		s.Metrics = engine.Derive(s.Impressions, s.Clicks, s.Spend, s.Orders, s.Sales)
		return s, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan summaries: %w", err)
	}
	return out, nil
}

// numeric converts a decimal into the pgtype binary representation COPY
// needs, without going through float64.
func numeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func optionalDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func nullableDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	u := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &u
}
