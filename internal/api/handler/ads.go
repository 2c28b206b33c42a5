package handler

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/vfg2006/fb-ads-mcp-server/infrastructure/integrator/meta"
)

func Ads(service *meta.MetaIntegrator) []Tool {
	return []Tool{
		{
			Definition: mcp.NewTool("get_ads_by_adset",
				mcp.WithDescription("Retrieve ads within an ad set"),
				mcp.WithString("adset_id",
					mcp.Required(),
					mcp.Description("Ad set ID"),
				),
				mcp.WithArray("fields",
					mcp.Description("Fields to retrieve. Defaults to: name, effective_status, creative"),
					mcp.Items(map[string]any{"type": "string"}),
				),
				mcp.WithNumber("limit",
					mcp.Description("Max results per page (default: 25)"),
				),
			),
			Handler: getAdsByAdSet(service),
		},
		{
			Definition: mcp.NewTool("get_ads_by_adaccount",
				mcp.WithDescription("Retrieve ads across an entire ad account"),
				mcp.WithString("act_id",
					mcp.Required(),
					mcp.Description("Ad account ID (format: act_1234567890)"),
				),
				mcp.WithArray("fields",
					mcp.Description("Fields to retrieve. Defaults to: name, effective_status, creative"),
					mcp.Items(map[string]any{"type": "string"}),
				),
				mcp.WithNumber("limit",
					mcp.Description("Max results per page (default: 25)"),
				),
			),
			Handler: getAdsByAccount(service),
		},
		{
			Definition: mcp.NewTool("get_ad_by_id",
				mcp.WithDescription("Get details for a specific ad"),
				mcp.WithString("ad_id",
					mcp.Required(),
					mcp.Description("Ad ID"),
				),
				mcp.WithArray("fields",
					mcp.Description("Fields to retrieve. When omitted the API's own default field set is used"),
					mcp.Items(map[string]any{"type": "string"}),
				),
			),
			Handler: getAdByID(service),
		},
	}
}

func getAdsByAdSet(service *meta.MetaIntegrator) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		adsetID, err := request.RequireString("adset_id")
		if err != nil {
			return mcp.NewToolResultError("adset_id argument is required"), nil
		}

		resp, err := service.GetAdsByAdSetID(ctx, adsetID, meta.ListOptions{
			Fields: fieldsParam(request),
			Limit:  limitParam(request),
		})
		if err != nil {
			return errorResult(err)
		}
		return textResult(resp)
	}
}

func getAdsByAccount(service *meta.MetaIntegrator) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		actID, err := request.RequireString("act_id")
		if err != nil {
			return mcp.NewToolResultError("act_id argument is required"), nil
		}

		resp, err := service.GetAdsByAccountID(ctx, actID, meta.ListOptions{
			Fields: fieldsParam(request),
			Limit:  limitParam(request),
		})
		if err != nil {
			return errorResult(err)
		}
		return textResult(resp)
	}
}

func getAdByID(service *meta.MetaIntegrator) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		adID, err := request.RequireString("ad_id")
		if err != nil {
			return mcp.NewToolResultError("ad_id argument is required"), nil
		}

		resp, err := service.GetAdByID(ctx, adID, fieldsParam(request))
		if err != nil {
			return errorResult(err)
		}
		return textResult(resp)
	}
}
