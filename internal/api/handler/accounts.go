package handler

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/vfg2006/fb-ads-mcp-server/infrastructure/integrator/meta"
)

func Accounts(service *meta.MetaIntegrator) []Tool {
	return []Tool{
		{
			Definition: mcp.NewTool("list_ad_accounts",
				mcp.WithDescription("Lists all ad accounts linked to the access token, with name, account_id, account_status and currency"),
			),
			Handler: listAdAccounts(service),
		},
		{
			Definition: mcp.NewTool("get_details_of_ad_account",
				mcp.WithDescription("Get detailed information about a specific ad account"),
				mcp.WithString("act_id",
					mcp.Required(),
					mcp.Description("Ad account ID (format: act_1234567890)"),
				),
				mcp.WithArray("fields",
					mcp.Description("Fields to retrieve. Defaults to: name, account_status, amount_spent, balance, currency"),
					mcp.Items(map[string]any{"type": "string"}),
				),
			),
			Handler: getAdAccountDetails(service),
		},
	}
}

func listAdAccounts(service *meta.MetaIntegrator) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		resp, err := service.ListAdAccounts(ctx)
		if err != nil {
			return errorResult(err)
		}
		return textResult(resp)
	}
}

func getAdAccountDetails(service *meta.MetaIntegrator) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		actID, err := request.RequireString("act_id")
		if err != nil {
			return mcp.NewToolResultError("act_id argument is required"), nil
		}

		resp, err := service.GetAdAccountByID(ctx, actID, fieldsParam(request))
		if err != nil {
			return errorResult(err)
		}
		return textResult(resp)
	}
}
