package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppcsim/internal/core/domain"
)

const minimal = `
owner_id: s1
products:
  - asin: B0TEST0001
    name: Test Chair
    avg_selling_price: "100.00"
    cost_of_goods_sold: "40.00"
    baseline_cvr: 0.05
    review_count: 120
    star_rating: 4.2
campaigns:
  - name: Test
    daily_budget: "12.50"
    start_date: "2024-03-01"
    end_date: "2024-03-31"
    products: [B0TEST0001]
    ad_groups:
      - name: G1
        default_bid: "0.70"
        keywords:
          - {text: test chair, match_type: exact, bid: "1.05"}
          - {text: chair, match_type: broad, bid: "0.50", status: paused}
        product_targets:
          - {type: category_same_as, value: Chairs}
      - name: G2
        keywords:
          - {text: desk chair, match_type: phrase, bid: "0.80"}
`

func TestParse_Build(t *testing.T) {
	s, err := Parse(strings.NewReader(minimal))
	require.NoError(t, err)

	campaigns, err := s.Build()
	require.NoError(t, err)
	require.Len(t, campaigns, 1)

	c := campaigns[0]
	assert.Equal(t, int64(1), c.ID)
	assert.Equal(t, "s1", c.OwnerID)
	assert.Equal(t, domain.StatusEnabled, c.Status)
	assert.True(t, c.DailyBudget.Equal(decimal.RequireFromString("12.50")))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), c.StartDate)
	require.NotNil(t, c.EndDate)
	require.Len(t, c.Products, 1)
	assert.Equal(t, domain.IntensityMedium, c.Products[0].CompetitiveIntensity)
	assert.Equal(t, "evergreen", c.Products[0].Seasonality)

	require.Len(t, c.AdGroups, 2)
	g1, g2 := c.AdGroups[0], c.AdGroups[1]
	require.NotNil(t, g1.DefaultBid)
	assert.True(t, g1.DefaultBid.Equal(decimal.RequireFromString("0.70")))
	assert.Nil(t, g2.DefaultBid)

	require.Len(t, g1.Keywords, 2)
	assert.Equal(t, domain.StatusPaused, g1.Keywords[1].Status)
	assert.Equal(t, domain.MatchExact, g1.Keywords[0].MatchType)
	// ids continue across ad groups
	assert.Equal(t, int64(3), g2.Keywords[0].ID)

	require.Len(t, g1.ProductTargets, 1)
	assert.Nil(t, g1.ProductTargets[0].Bid)
	assert.Equal(t, domain.TargetCategorySameAs, g1.ProductTargets[0].TargetingType)
}

func TestParse_UnknownFieldRejected(t *testing.T) {
	_, err := Parse(strings.NewReader("owner_id: s1\nbudget: 10\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing scenario")
}

func TestParse_ValidationErrors(t *testing.T) {
	cases := map[string]string{
		"missing owner":     "products: []\n",
		"bad intensity":     "owner_id: s\nproducts:\n  - {asin: A, avg_selling_price: \"10\", competitive_intensity: extreme}\n",
		"duplicate asin":    "owner_id: s\nproducts:\n  - {asin: A, avg_selling_price: \"10\"}\n  - {asin: A, avg_selling_price: \"10\"}\n",
		"cvr out of range":  "owner_id: s\nproducts:\n  - {asin: A, avg_selling_price: \"10\", baseline_cvr: 5}\n",
		"unknown asin":      "owner_id: s\ncampaigns:\n  - {name: c, products: [Z]}\n",
		"bad match type":    "owner_id: s\ncampaigns:\n  - name: c\n    ad_groups:\n      - keywords: [{text: x, match_type: fuzzy, bid: \"1\"}]\n",
		"bad targeting":     "owner_id: s\ncampaigns:\n  - name: c\n    ad_groups:\n      - product_targets: [{type: brand, value: x}]\n",
		"bad campaign stat": "owner_id: s\ncampaigns:\n  - {name: c, status: running}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestParse_SellingPriceMustBePositive(t *testing.T) {
	for name, price := range map[string]string{"zero": `"0.00"`, "missing": `""`, "negative": `"-5"`} {
		t.Run(name, func(t *testing.T) {
			doc := "owner_id: s\nproducts:\n  - {asin: A, avg_selling_price: " + price + "}\n"
			_, err := Parse(strings.NewReader(doc))
			assert.ErrorContains(t, err, "products[0]: avg_selling_price")
		})
	}

	s := &Scenario{OwnerID: "s", Products: []ProductSpec{{ASIN: "A", AvgSellingPrice: "0"}}}
	_, err := s.Catalog()
	assert.ErrorContains(t, err, "greater than zero")
}

func TestBuild_BadValues(t *testing.T) {
	s := &Scenario{
		OwnerID:   "s",
		Campaigns: []CampaignSpec{{Name: "c", DailyBudget: "ten", StartDate: "2024-01-01"}},
	}
	_, err := s.Build()
	assert.ErrorContains(t, err, "daily_budget")

	s.Campaigns[0].DailyBudget = "-1"
	_, err = s.Build()
	assert.ErrorContains(t, err, "negative")

	s.Campaigns[0].DailyBudget = "10"
	s.Campaigns[0].StartDate = "01/01/2024"
	_, err = s.Build()
	assert.ErrorContains(t, err, "start_date")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimal), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "s1", s.OwnerID)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading scenario")
}

func TestDemo(t *testing.T) {
	s, err := Demo("student-9")
	require.NoError(t, err)
	assert.Equal(t, "student-9", s.OwnerID)

	products, err := s.Catalog()
	require.NoError(t, err)
	require.Len(t, products, 10)
	for _, p := range products {
		assert.False(t, p.Keywords.Empty(), p.ASIN)
		assert.Positive(t, p.BreakEvenACOS(), p.ASIN)
	}

	campaigns, err := s.Build()
	require.NoError(t, err)
	require.NotEmpty(t, campaigns)
	for _, c := range campaigns {
		assert.NotEmpty(t, c.Products, c.Name)
		assert.Equal(t, "student-9", c.OwnerID)
	}
}
