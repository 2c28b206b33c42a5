package handler

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/vfg2006/fb-ads-mcp-server/internal/usecases/reporting"
)

func Reports(service *reporting.Service) []Tool {
	return []Tool{
		{
			Definition: mcp.NewTool("get_comprehensive_ad_report",
				mcp.WithDescription("Comprehensive per-ad performance report: identity, status, asset URL, "+
					"reach/impressions/frequency, purchases and cost per purchase, clicks, CTR/CPC/CPM, "+
					"video completion metrics, conversions (add to cart, content views, checkouts), "+
					"engagement and amount spent. Only ads with spend above min_spend are returned."),
				mcp.WithString("act_id",
					mcp.Required(),
					mcp.Description("Ad account ID (format: act_1234567890)"),
				),
				mcp.WithString("date_preset",
					mcp.Description("Date range preset (default: 'last_30d'). Options: 'today', 'yesterday', 'last_7d', 'last_14d', 'last_30d', 'last_90d', 'lifetime'"),
				),
				mcp.WithObject("time_range",
					mcp.Description(`Custom date range, e.g. {"since":"2024-01-01","until":"2024-01-31"}. Takes precedence over date_preset`),
				),
				mcp.WithString("campaign_id",
					mcp.Description("Optional campaign ID to scope the report to a single campaign"),
				),
				mcp.WithNumber("limit",
					mcp.Description("Max number of ads to retrieve (default: 100)"),
				),
				mcp.WithNumber("min_spend",
					mcp.Description("Minimum spend threshold; only ads with spend strictly greater than this value are returned (default: 0)"),
				),
			),
			Handler: comprehensiveReport(service),
		},
		{
			Definition: mcp.NewTool("get_summary_report",
				mcp.WithDescription("Lightweight summary report with only key metrics per ad (spend, impressions, "+
					"clicks, CTR, CPC, CPM, conversions, CPA) plus account totals. On fetch failure this tool "+
					"returns a structured {error, date_range} payload instead of failing."),
				mcp.WithString("act_id",
					mcp.Required(),
					mcp.Description("Ad account ID (format: act_1234567890)"),
				),
				mcp.WithString("date_preset",
					mcp.Description("Date range preset (default: 'last_30d')"),
				),
				mcp.WithObject("time_range",
					mcp.Description(`Custom date range, e.g. {"since":"2024-01-01","until":"2024-01-31"}. Takes precedence over date_preset`),
				),
				mcp.WithNumber("limit",
					mcp.Description("Max number of ads to retrieve (default: 50)"),
				),
			),
			Handler: summaryReport(service),
		},
	}
}

func comprehensiveReport(service *reporting.Service) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		actID, err := request.RequireString("act_id")
		if err != nil {
			return mcp.NewToolResultError("act_id argument is required"), nil
		}

		timeRange, err := timeRangeParam(request)
		if err != nil {
			return errorResult(err)
		}

		report, err := service.GetComprehensiveAdReport(ctx, reporting.ComprehensiveReportInput{
			AccountID:  actID,
			DatePreset: request.GetString("date_preset", ""),
			TimeRange:  timeRange,
			CampaignID: request.GetString("campaign_id", ""),
			Limit:      limitParam(request),
			MinSpend:   floatParam(request, "min_spend"),
		})
		if err != nil {
			return errorResult(err)
		}
		return textResult(report)
	}
}

func summaryReport(service *reporting.Service) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		actID, err := request.RequireString("act_id")
		if err != nil {
			return mcp.NewToolResultError("act_id argument is required"), nil
		}

		timeRange, err := timeRangeParam(request)
		if err != nil {
			return errorResult(err)
		}

		// Esta operação nunca falha: erros viram payload estruturado
		report := service.GetSummaryReport(ctx, reporting.SummaryReportInput{
			AccountID:  actID,
			DatePreset: request.GetString("date_preset", ""),
			TimeRange:  timeRange,
			Limit:      limitParam(request),
		})
		return textResult(report)
	}
}
