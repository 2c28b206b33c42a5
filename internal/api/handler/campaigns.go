package handler

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/vfg2006/fb-ads-mcp-server/infrastructure/integrator/meta"
)

func Campaigns(service *meta.MetaIntegrator) []Tool {
	return []Tool{
		{
			Definition: mcp.NewTool("get_campaigns_by_adaccount",
				mcp.WithDescription("Retrieve campaigns for an ad account"),
				mcp.WithString("act_id",
					mcp.Required(),
					mcp.Description("Ad account ID (format: act_1234567890)"),
				),
				mcp.WithArray("fields",
					mcp.Description("Fields to retrieve. Defaults to: name, objective, status, effective_status, daily_budget, lifetime_budget"),
					mcp.Items(map[string]any{"type": "string"}),
				),
				mcp.WithNumber("limit",
					mcp.Description("Max results per page (default: 25)"),
				),
				mcp.WithArray("filtering",
					mcp.Description(`Filters as {field, operator, value} triples. Example: [{"field":"effective_status","operator":"IN","value":["ACTIVE"]}]`),
					mcp.Items(map[string]any{"type": "object"}),
				),
			),
			Handler: getCampaignsByAccount(service),
		},
		{
			Definition: mcp.NewTool("get_campaign_by_id",
				mcp.WithDescription("Get details for a specific campaign"),
				mcp.WithString("campaign_id",
					mcp.Required(),
					mcp.Description("Campaign ID"),
				),
				mcp.WithArray("fields",
					mcp.Description("Fields to retrieve. When omitted the API's own default field set is used"),
					mcp.Items(map[string]any{"type": "string"}),
				),
			),
			Handler: getCampaignByID(service),
		},
	}
}

func getCampaignsByAccount(service *meta.MetaIntegrator) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		actID, err := request.RequireString("act_id")
		if err != nil {
			return mcp.NewToolResultError("act_id argument is required"), nil
		}

		filtering, err := filteringParam(request)
		if err != nil {
			return errorResult(err)
		}

		resp, err := service.GetCampaignsByAccountID(ctx, actID, meta.ListOptions{
			Fields:    fieldsParam(request),
			Limit:     limitParam(request),
			Filtering: filtering,
		})
		if err != nil {
			return errorResult(err)
		}
		return textResult(resp)
	}
}

func getCampaignByID(service *meta.MetaIntegrator) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		campaignID, err := request.RequireString("campaign_id")
		if err != nil {
			return mcp.NewToolResultError("campaign_id argument is required"), nil
		}

		resp, err := service.GetCampaignByID(ctx, campaignID, fieldsParam(request))
		if err != nil {
			return errorResult(err)
		}
		return textResult(resp)
	}
}
