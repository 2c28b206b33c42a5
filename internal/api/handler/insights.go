package handler

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/vfg2006/fb-ads-mcp-server/infrastructure/integrator/meta"
)

func Insights(service *meta.MetaIntegrator) []Tool {
	return []Tool{
		{
			Definition: insightToolDefinition("get_campaign_insights",
				"Get performance insights for a campaign",
				"campaign_id", "Campaign ID",
				"Defaults to: impressions, clicks, spend, cpc, cpm, ctr, reach"),
			Handler: campaignInsights(service),
		},
		{
			Definition: insightToolDefinition("get_adset_insights",
				"Get performance insights for an ad set",
				"adset_id", "Ad set ID",
				"Defaults to: impressions, clicks, spend, cpc, ctr"),
			Handler: adsetInsights(service),
		},
		{
			Definition: insightToolDefinition("get_ad_insights",
				"Get performance insights for a specific ad",
				"ad_id", "Ad ID",
				"Defaults to: impressions, clicks, spend, cpc, ctr"),
			Handler: adInsights(service),
		},
	}
}

func insightToolDefinition(name, description, idArg, idDescription, fieldsDefault string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithString(idArg,
			mcp.Required(),
			mcp.Description(idDescription),
		),
		mcp.WithArray("fields",
			mcp.Description("Metrics to retrieve. "+fieldsDefault),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("date_preset",
			mcp.Description("Date range preset, e.g. 'last_7d', 'last_30d', 'lifetime' (default: last_30d)"),
		),
		mcp.WithObject("time_range",
			mcp.Description(`Custom date range, e.g. {"since":"2024-01-01","until":"2024-01-31"}. Takes precedence over date_preset`),
		),
	)
}

func campaignInsights(service *meta.MetaIntegrator) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return insightsHandler("campaign_id", service.GetCampaignInsights)
}

func adsetInsights(service *meta.MetaIntegrator) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return insightsHandler("adset_id", service.GetAdSetInsights)
}

func adInsights(service *meta.MetaIntegrator) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return insightsHandler("ad_id", service.GetAdInsights)
}

func insightsHandler(
	idArg string,
	fetch func(context.Context, string, meta.InsightOptions) (map[string]interface{}, error),
) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		objectID, err := request.RequireString(idArg)
		if err != nil {
			return mcp.NewToolResultError(idArg + " argument is required"), nil
		}

		timeRange, err := timeRangeParam(request)
		if err != nil {
			return errorResult(err)
		}

		resp, err := fetch(ctx, objectID, meta.InsightOptions{
			Fields:     fieldsParam(request),
			DatePreset: request.GetString("date_preset", ""),
			TimeRange:  timeRange,
		})
		if err != nil {
			return errorResult(err)
		}
		return textResult(resp)
	}
}
