// Package scenario reads marketplace setups (catalog products plus one
// owner's campaigns) from YAML and turns them into domain values.
package scenario

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"ppcsim/internal/core/domain"
)

const dateLayout = "2006-01-02"

//go:embed demo.yaml
var demoYAML []byte

// Scenario is the top-level YAML document.
type Scenario struct {
	OwnerID   string         `yaml:"owner_id"`
	Products  []ProductSpec  `yaml:"products"`
	Campaigns []CampaignSpec `yaml:"campaigns"`
}

// ProductSpec describes a catalog product. Money is written as strings or
// plain numbers and parsed as decimals.
type ProductSpec struct {
	ASIN                 string      `yaml:"asin"`
	Name                 string      `yaml:"name"`
	Category             string      `yaml:"category"`
	AvgSellingPrice      string      `yaml:"avg_selling_price"`
	CostOfGoodsSold      string      `yaml:"cost_of_goods_sold"`
	BaselineCVR          float64     `yaml:"baseline_cvr"`
	ReviewCount          int         `yaml:"review_count"`
	StarRating           float64     `yaml:"star_rating"`
	CompetitiveIntensity string      `yaml:"competitive_intensity"`
	Seasonality          string      `yaml:"seasonality"`
	Keywords             KeywordSpec `yaml:"keywords"`
}

// KeywordSpec is the product's search vocabulary.
type KeywordSpec struct {
	Primary  []string `yaml:"primary"`
	General  []string `yaml:"general"`
	Negative []string `yaml:"negative"`
}

// CampaignSpec describes one campaign. Products lists advertised ASINs.
type CampaignSpec struct {
	Name        string        `yaml:"name"`
	DailyBudget string        `yaml:"daily_budget"`
	StartDate   string        `yaml:"start_date"`
	EndDate     string        `yaml:"end_date"`
	Status      string        `yaml:"status"`
	Products    []string      `yaml:"products"`
	AdGroups    []AdGroupSpec `yaml:"ad_groups"`
}

type AdGroupSpec struct {
	Name           string              `yaml:"name"`
	Status         string              `yaml:"status"`
	DefaultBid     string              `yaml:"default_bid"`
	Keywords       []KeywordBidSpec    `yaml:"keywords"`
	ProductTargets []ProductTargetSpec `yaml:"product_targets"`
}

type KeywordBidSpec struct {
	Text      string `yaml:"text"`
	MatchType string `yaml:"match_type"`
	Bid       string `yaml:"bid"`
	Status    string `yaml:"status"`
}

type ProductTargetSpec struct {
	Type   string `yaml:"type"`
	Value  string `yaml:"value"`
	Bid    string `yaml:"bid"`
	Status string `yaml:"status"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes a scenario strictly: unknown fields are errors.
func Parse(r io.Reader) (*Scenario, error) {
	var s Scenario
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Demo returns the built-in classroom scenario: the ten catalog products
// and a starter campaign for ownerID.
func Demo(ownerID string) (*Scenario, error) {
	s, err := Parse(bytes.NewReader(demoYAML))
	if err != nil {
		return nil, err
	}
	if ownerID != "" {
		s.OwnerID = ownerID
	}
	return s, nil
}

var (
	validIntensities = map[string]bool{"low": true, "medium": true, "high": true}
	validStatuses    = map[string]bool{"": true, "enabled": true, "paused": true, "archived": true}
	validMatchTypes  = map[string]bool{"broad": true, "phrase": true, "exact": true}
	validTargetTypes = map[string]bool{"asin_same_as": true, "category_same_as": true}
)

// Validate checks field values without building domain objects.
func (s *Scenario) Validate() error {
	if s.OwnerID == "" {
		return fmt.Errorf("owner_id is required")
	}
	asins := make(map[string]bool, len(s.Products))
	for i, p := range s.Products {
		prefix := fmt.Sprintf("products[%d]", i)
		if p.ASIN == "" {
			return fmt.Errorf("%s: asin is required", prefix)
		}
		if asins[p.ASIN] {
			return fmt.Errorf("%s: duplicate asin %q", prefix, p.ASIN)
		}
		asins[p.ASIN] = true
		if p.CompetitiveIntensity != "" && !validIntensities[p.CompetitiveIntensity] {
			return fmt.Errorf("%s: unknown competitive_intensity %q; valid: low, medium, high", prefix, p.CompetitiveIntensity)
		}
		if p.BaselineCVR < 0 || p.BaselineCVR > 1 {
			return fmt.Errorf("%s: baseline_cvr must be a fraction in [0,1], got %f", prefix, p.BaselineCVR)
		}
		if p.StarRating < 0 || p.StarRating > 5 {
			return fmt.Errorf("%s: star_rating must be in [0,5], got %f", prefix, p.StarRating)
		}
		if p.ReviewCount < 0 {
			return fmt.Errorf("%s: review_count must not be negative", prefix)
		}
		if err := requirePositivePrice(p.AvgSellingPrice); err != nil {
			return fmt.Errorf("%s: avg_selling_price: %w", prefix, err)
		}
	}
	for i, c := range s.Campaigns {
		prefix := fmt.Sprintf("campaigns[%d]", i)
		if !validStatuses[c.Status] {
			return fmt.Errorf("%s: unknown status %q", prefix, c.Status)
		}
		for _, asin := range c.Products {
			if !asins[asin] {
				return fmt.Errorf("%s: advertised asin %q is not in products", prefix, asin)
			}
		}
		for j, ag := range c.AdGroups {
			agPrefix := fmt.Sprintf("%s.ad_groups[%d]", prefix, j)
			if !validStatuses[ag.Status] {
				return fmt.Errorf("%s: unknown status %q", agPrefix, ag.Status)
			}
			for k, kw := range ag.Keywords {
				if !validMatchTypes[kw.MatchType] {
					return fmt.Errorf("%s.keywords[%d]: unknown match_type %q; valid: broad, phrase, exact", agPrefix, k, kw.MatchType)
				}
				if !validStatuses[kw.Status] {
					return fmt.Errorf("%s.keywords[%d]: unknown status %q", agPrefix, k, kw.Status)
				}
			}
			for k, pt := range ag.ProductTargets {
				if !validTargetTypes[pt.Type] {
					return fmt.Errorf("%s.product_targets[%d]: unknown type %q; valid: asin_same_as, category_same_as", agPrefix, k, pt.Type)
				}
				if !validStatuses[pt.Status] {
					return fmt.Errorf("%s.product_targets[%d]: unknown status %q", agPrefix, k, pt.Status)
				}
			}
		}
	}
	return nil
}

// Catalog converts the product specs. IDs follow declaration order
// starting at 1.
func (s *Scenario) Catalog() ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(s.Products))
	for i, p := range s.Products {
		prefix := fmt.Sprintf("products[%d]", i)
		if err := requirePositivePrice(p.AvgSellingPrice); err != nil {
			return nil, fmt.Errorf("%s: avg_selling_price: %w", prefix, err)
		}
		price, _ := parseMoney(p.AvgSellingPrice)
		cogs, err := parseMoney(p.CostOfGoodsSold)
		if err != nil {
			return nil, fmt.Errorf("%s: cost_of_goods_sold: %w", prefix, err)
		}
		intensity := domain.CompetitiveIntensity(p.CompetitiveIntensity)
		if intensity == "" {
			intensity = domain.IntensityMedium
		}
		seasonality := p.Seasonality
		if seasonality == "" {
			seasonality = "evergreen"
		}
		out = append(out, domain.Product{
			ID:                   int64(i + 1),
			ASIN:                 p.ASIN,
			Name:                 p.Name,
			Category:             p.Category,
			AvgSellingPrice:      price,
			CostOfGoodsSold:      cogs,
			BaselineCVR:          p.BaselineCVR,
			ReviewCount:          p.ReviewCount,
			StarRating:           p.StarRating,
			CompetitiveIntensity: intensity,
			Seasonality:          seasonality,
			Keywords: domain.KeywordProfile{
				Primary:  p.Keywords.Primary,
				General:  p.Keywords.General,
				Negative: p.Keywords.Negative,
			},
		})
	}
	return out, nil
}

// Build converts the whole scenario. Campaign, ad group, keyword and
// product target IDs are assigned sequentially in declaration order, so a
// scenario always yields the same IDs.
func (s *Scenario) Build() ([]domain.Campaign, error) {
	products, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	byASIN := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byASIN[p.ASIN] = p
	}

	var agSeq, kwSeq, ptSeq int64
	campaigns := make([]domain.Campaign, 0, len(s.Campaigns))
	for i, cs := range s.Campaigns {
		prefix := fmt.Sprintf("campaigns[%d]", i)
		c := domain.Campaign{
			ID:      int64(i + 1),
			OwnerID: s.OwnerID,
			Name:    cs.Name,
			Status:  statusOrDefault(cs.Status),
		}
		if c.DailyBudget, err = parseMoney(cs.DailyBudget); err != nil {
			return nil, fmt.Errorf("%s: daily_budget: %w", prefix, err)
		}
		if c.StartDate, err = time.Parse(dateLayout, cs.StartDate); err != nil {
			return nil, fmt.Errorf("%s: start_date: %w", prefix, err)
		}
		if cs.EndDate != "" {
			end, err := time.Parse(dateLayout, cs.EndDate)
			if err != nil {
				return nil, fmt.Errorf("%s: end_date: %w", prefix, err)
			}
			c.EndDate = &end
		}
		for _, asin := range cs.Products {
			c.Products = append(c.Products, byASIN[asin])
		}

		for j, ags := range cs.AdGroups {
			agPrefix := fmt.Sprintf("%s.ad_groups[%d]", prefix, j)
			agSeq++
			ag := domain.AdGroup{
				ID:         agSeq,
				CampaignID: c.ID,
				Name:       ags.Name,
				Status:     statusOrDefault(ags.Status),
			}
			if ag.DefaultBid, err = parseOptionalMoney(ags.DefaultBid); err != nil {
				return nil, fmt.Errorf("%s: default_bid: %w", agPrefix, err)
			}
			for k, ks := range ags.Keywords {
				kwSeq++
				bid, err := parseMoney(ks.Bid)
				if err != nil {
					return nil, fmt.Errorf("%s.keywords[%d]: bid: %w", agPrefix, k, err)
				}
				ag.Keywords = append(ag.Keywords, domain.Keyword{
					ID:        kwSeq,
					AdGroupID: ag.ID,
					Text:      ks.Text,
					MatchType: domain.MatchType(ks.MatchType),
					Bid:       bid,
					Status:    statusOrDefault(ks.Status),
				})
			}
			for k, ps := range ags.ProductTargets {
				ptSeq++
				bid, err := parseOptionalMoney(ps.Bid)
				if err != nil {
					return nil, fmt.Errorf("%s.product_targets[%d]: bid: %w", agPrefix, k, err)
				}
				ag.ProductTargets = append(ag.ProductTargets, domain.ProductTarget{
					ID:            ptSeq,
					AdGroupID:     ag.ID,
					TargetingType: domain.TargetingType(ps.Type),
					Value:         ps.Value,
					Bid:           bid,
					Status:        statusOrDefault(ps.Status),
				})
			}
			c.AdGroups = append(c.AdGroups, ag)
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, nil
}

func statusOrDefault(s string) domain.Status {
	if s == "" {
		return domain.StatusEnabled
	}
	return domain.Status(s)
}

func parseMoney(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative amount %s", s)
	}
	return d, nil
}

// requirePositivePrice rejects missing, zero and negative prices.
func requirePositivePrice(s string) error {
	d, err := parseMoney(s)
	if err != nil {
		return err
	}
	if !d.IsPositive() {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}

func parseOptionalMoney(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := parseMoney(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
