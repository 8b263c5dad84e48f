package report

import (
	"fmt"
	"strings"

	"ppcsim/internal/core/domain"
)

// RenderCSV renders daily records as CSV string, one row per record in
// the order given.
func RenderCSV(records []domain.DailyPerformanceRecord) string {
	var sb strings.Builder

	// Header
	sb.WriteString("date,campaign_id,ad_group_id,entity_type,entity_id,product_id,placement,")
	sb.WriteString("impressions,clicks,spend,orders,sales,")
	sb.WriteString("cpc,ctr,cvr,acos,roas\n")

	// Rows
	for _, r := range records {
		sb.WriteString(fmt.Sprintf("%s,%d,%d,%s,%d,%d,%s,%d,%d,%s,%d,%s,%s,%.4f,%.4f,%.4f,%.4f\n",
			r.Date.Format("2006-01-02"),
			r.CampaignID,
			r.AdGroupID,
			r.EntityType,
			r.EntityID,
			r.ProductID,
			r.Placement,
			r.Impressions,
			r.Clicks,
			r.Spend.StringFixed(2),
			r.Orders,
			r.Sales.StringFixed(2),
			r.CPC.StringFixed(2),
			r.CTR,
			r.CVR,
			r.ACOS,
			r.ROAS,
		))
	}

	return sb.String()
}

// RenderSummaryCSV renders campaign summaries as CSV string.
func RenderSummaryCSV(rows []domain.CampaignSummary) string {
	var sb strings.Builder

	sb.WriteString("campaign_id,impressions,clicks,spend,orders,sales,cpc,ctr,cvr,acos,roas\n")
	for _, s := range rows {
		sb.WriteString(fmt.Sprintf("%d,%d,%d,%s,%d,%s,%s,%.4f,%.4f,%.4f,%.4f\n",
			s.CampaignID,
			s.Impressions,
			s.Clicks,
			s.Spend.StringFixed(2),
			s.Orders,
			s.Sales.StringFixed(2),
			s.CPC.StringFixed(2),
			s.CTR,
			s.CVR,
			s.ACOS,
			s.ROAS,
		))
	}

	return sb.String()
}
