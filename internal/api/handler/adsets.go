package handler

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/vfg2006/fb-ads-mcp-server/infrastructure/integrator/meta"
)

func AdSets(service *meta.MetaIntegrator) []Tool {
	return []Tool{
		{
			Definition: mcp.NewTool("get_adsets_by_campaign",
				mcp.WithDescription("Retrieve ad sets within a campaign"),
				mcp.WithString("campaign_id",
					mcp.Required(),
					mcp.Description("Campaign ID"),
				),
				mcp.WithArray("fields",
					mcp.Description("Fields to retrieve. Defaults to: name, effective_status, daily_budget, lifetime_budget, targeting"),
					mcp.Items(map[string]any{"type": "string"}),
				),
				mcp.WithNumber("limit",
					mcp.Description("Max results per page (default: 25)"),
				),
			),
			Handler: getAdSetsByCampaign(service),
		},
		{
			Definition: mcp.NewTool("get_adset_by_id",
				mcp.WithDescription("Get details for a specific ad set"),
				mcp.WithString("adset_id",
					mcp.Required(),
					mcp.Description("Ad set ID"),
				),
				mcp.WithArray("fields",
					mcp.Description("Fields to retrieve. When omitted the API's own default field set is used"),
					mcp.Items(map[string]any{"type": "string"}),
				),
			),
			Handler: getAdSetByID(service),
		},
	}
}

func getAdSetsByCampaign(service *meta.MetaIntegrator) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		campaignID, err := request.RequireString("campaign_id")
		if err != nil {
			return mcp.NewToolResultError("campaign_id argument is required"), nil
		}

		resp, err := service.GetAdSetsByCampaignID(ctx, campaignID, meta.ListOptions{
			Fields: fieldsParam(request),
			Limit:  limitParam(request),
		})
		if err != nil {
			return errorResult(err)
		}
		return textResult(resp)
	}
}

func getAdSetByID(service *meta.MetaIntegrator) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		adsetID, err := request.RequireString("adset_id")
		if err != nil {
			return mcp.NewToolResultError("adset_id argument is required"), nil
		}

		resp, err := service.GetAdSetByID(ctx, adsetID, fieldsParam(request))
		if err != nil {
			return errorResult(err)
		}
		return textResult(resp)
	}
}
