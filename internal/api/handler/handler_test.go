package handler

import (
	"context"
	"net/url"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fb-ads-mcp-server/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/fb-ads-mcp-server/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/fb-ads-mcp-server/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/fb-ads-mcp-server/internal/config"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (*meta.MetaIntegrator, *mocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockClient := mocks.NewMockClient(ctrl)

	return meta.New(&config.Config{}, mockClient), mockClient
}

func request(args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: args},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.Len(t, result.Content, 1)
	textContent, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	return textContent.Text
}

func findTool(t *testing.T, tools []Tool, name string) Tool {
	t.Helper()

	for _, tool := range tools {
		if tool.Definition.Name == name {
			return tool
		}
	}
	t.Fatalf("tool %s não registrada", name)
	return Tool{}
}

func TestGetAdAccountDetails_RequiresActID(t *testing.T) {
	service, _ := newService(t)
	tool := findTool(t, Accounts(service), "get_details_of_ad_account")

	result, err := tool.Handler(context.Background(), request(nil))
	require.NoError(t, err)

	assert.True(t, result.IsError)
	assert.Equal(t, "act_id argument is required", resultText(t, result))
}

func TestGetAdAccountDetails_Success(t *testing.T) {
	service, mockClient := newService(t)
	tool := findTool(t, Accounts(service), "get_details_of_ad_account")

	mockClient.EXPECT().
		Call(gomock.Any(), "act_123", gomock.Any()).
		Return([]byte(`{"id":"act_123","name":"Loja A"}`), nil)

	result, err := tool.Handler(context.Background(), request(map[string]interface{}{
		"act_id": "act_123",
	}))
	require.NoError(t, err)

	assert.False(t, result.IsError)
	assert.JSONEq(t, `{"id":"act_123","name":"Loja A"}`, resultText(t, result))
}

func TestGetAdAccountDetails_APIErrorBecomesToolError(t *testing.T) {
	service, mockClient := newService(t)
	tool := findTool(t, Accounts(service), "get_details_of_ad_account")

	mockClient.EXPECT().
		Call(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &metadomain.APIError{Code: 190, Message: "Invalid token"})

	result, err := tool.Handler(context.Background(), request(map[string]interface{}{
		"act_id": "act_123",
	}))
	require.NoError(t, err)

	assert.True(t, result.IsError)
	assert.Equal(t, "Facebook API Error (Code 190): Invalid token", resultText(t, result))
}

func TestCampaignInsights_InvalidTimeRangeDate(t *testing.T) {
	service, _ := newService(t)
	tool := findTool(t, Insights(service), "get_campaign_insights")

	result, err := tool.Handler(context.Background(), request(map[string]interface{}{
		"campaign_id": "c1",
		"time_range":  map[string]interface{}{"since": "01/01/2024", "until": "2024-01-31"},
	}))
	require.NoError(t, err)

	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "invalid time_range.since date")
}

func TestCampaignInsights_EmptyTimeRangeKeepsPreset(t *testing.T) {
	service, mockClient := newService(t)
	tool := findTool(t, Insights(service), "get_campaign_insights")

	var gotParams url.Values
	mockClient.EXPECT().
		Call(gomock.Any(), "c1/insights", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params url.Values) ([]byte, error) {
			gotParams = params
			return []byte(`{"data":[]}`), nil
		})

	result, err := tool.Handler(context.Background(), request(map[string]interface{}{
		"campaign_id": "c1",
		"date_preset": "last_7d",
		"time_range":  map[string]interface{}{},
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	// Janela vazia não derruba o preset nem chega à API
	assert.Equal(t, "last_7d", gotParams.Get("date_preset"))
	assert.False(t, gotParams.Has("time_range"))
}

func TestParamExtraction(t *testing.T) {
	t.Run("fields ausente retorna nil", func(t *testing.T) {
		assert.Nil(t, fieldsParam(request(nil)))
	})

	t.Run("fields extrai apenas strings", func(t *testing.T) {
		fields := fieldsParam(request(map[string]interface{}{
			"fields": []interface{}{"name", "spend", 42},
		}))
		assert.Equal(t, []string{"name", "spend"}, fields)
	})

	t.Run("limit chega como float64 do JSON", func(t *testing.T) {
		limit := limitParam(request(map[string]interface{}{"limit": float64(50)}))
		assert.Equal(t, 50, limit)
	})

	t.Run("limit ausente delega o default", func(t *testing.T) {
		assert.Zero(t, limitParam(request(nil)))
	})

	t.Run("time_range vazio é tratado como ausente", func(t *testing.T) {
		timeRange, err := timeRangeParam(request(map[string]interface{}{
			"time_range": map[string]interface{}{},
		}))
		require.NoError(t, err)
		assert.Nil(t, timeRange)
	})

	t.Run("time_range com since vazio e until preenchido é inválido", func(t *testing.T) {
		_, err := timeRangeParam(request(map[string]interface{}{
			"time_range": map[string]interface{}{"since": "", "until": "2024-01-31"},
		}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid time_range.since date")
	})

	t.Run("time_range válido é decodificado", func(t *testing.T) {
		timeRange, err := timeRangeParam(request(map[string]interface{}{
			"time_range": map[string]interface{}{"since": "2024-01-01", "until": "2024-01-31"},
		}))
		require.NoError(t, err)
		require.NotNil(t, timeRange)
		assert.Equal(t, "2024-01-01", timeRange.Since)
		assert.Equal(t, "2024-01-31", timeRange.Until)
	})

	t.Run("filtering decodifica a lista de triplas", func(t *testing.T) {
		filtering, err := filteringParam(request(map[string]interface{}{
			"filtering": []interface{}{
				map[string]interface{}{"field": "spend", "operator": "GREATER_THAN", "value": 10},
			},
		}))
		require.NoError(t, err)
		require.Len(t, filtering, 1)
		assert.Equal(t, "spend", filtering[0].Field)
		assert.Equal(t, "GREATER_THAN", filtering[0].Operator)
	})
}
