package meta

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fb-ads-mcp-server/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/fb-ads-mcp-server/internal/config"
	"github.com/vfg2006/fb-ads-mcp-server/internal/domain"
	"go.uber.org/mock/gomock"
)

// capturedCall guarda o endpoint e os parâmetros enviados ao gateway
type capturedCall struct {
	endpoint string
	params   url.Values
}

func newIntegrator(t *testing.T) (*MetaIntegrator, *mocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockClient := mocks.NewMockClient(ctrl)

	return New(&config.Config{}, mockClient), mockClient
}

func expectCall(mockClient *mocks.MockClient, body string, captured *capturedCall) {
	mockClient.EXPECT().
		Call(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, endpoint string, params url.Values) ([]byte, error) {
			captured.endpoint = endpoint
			captured.params = params
			return []byte(body), nil
		})
}

func TestListAdAccounts(t *testing.T) {
	integrator, mockClient := newIntegrator(t)

	var captured capturedCall
	expectCall(mockClient, `{"data":[{"id":"act_123","name":"Loja A"}]}`, &captured)

	resp, err := integrator.ListAdAccounts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "me/adaccounts", captured.endpoint)
	assert.Equal(t, "name,account_id,account_status,currency", captured.params.Get("fields"))
	assert.Contains(t, resp, "data")
}

func TestGetAdAccountByID(t *testing.T) {
	tests := []struct {
		name       string
		fields     []string
		wantFields string
	}{
		{
			name:       "Sem fields - usa o conjunto default de detalhes",
			fields:     nil,
			wantFields: "name,account_status,amount_spent,balance,currency",
		},
		{
			name:       "Com fields - envia exatamente o que foi pedido",
			fields:     []string{"name", "spend_cap"},
			wantFields: "name,spend_cap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator, mockClient := newIntegrator(t)

			var captured capturedCall
			expectCall(mockClient, `{"id":"act_123"}`, &captured)

			_, err := integrator.GetAdAccountByID(context.Background(), "act_123", tt.fields)
			require.NoError(t, err)

			assert.Equal(t, "act_123", captured.endpoint)
			assert.Equal(t, tt.wantFields, captured.params.Get("fields"))
		})
	}
}

func TestGetCampaignsByAccountID(t *testing.T) {
	t.Run("Defaults de fields e limit", func(t *testing.T) {
		integrator, mockClient := newIntegrator(t)

		var captured capturedCall
		expectCall(mockClient, `{"data":[]}`, &captured)

		_, err := integrator.GetCampaignsByAccountID(context.Background(), "act_123", ListOptions{})
		require.NoError(t, err)

		assert.Equal(t, "act_123/campaigns", captured.endpoint)
		assert.Equal(t, "name,objective,status,effective_status,daily_budget,lifetime_budget", captured.params.Get("fields"))
		assert.Equal(t, "25", captured.params.Get("limit"))
		assert.Empty(t, captured.params.Get("filtering"))
	})

	t.Run("Filtering é serializado como JSON", func(t *testing.T) {
		integrator, mockClient := newIntegrator(t)

		var captured capturedCall
		expectCall(mockClient, `{"data":[]}`, &captured)

		filtering := []domain.Filter{{
			Field:    "effective_status",
			Operator: "IN",
			Value:    []string{"ACTIVE"},
		}}

		_, err := integrator.GetCampaignsByAccountID(context.Background(), "act_123", ListOptions{
			Filtering: filtering,
			Limit:     10,
		})
		require.NoError(t, err)

		assert.JSONEq(t,
			`[{"field":"effective_status","operator":"IN","value":["ACTIVE"]}]`,
			captured.params.Get("filtering"))
		assert.Equal(t, "10", captured.params.Get("limit"))
	})
}

func TestGetCampaignByID_NoDefaultFields(t *testing.T) {
	integrator, mockClient := newIntegrator(t)

	var captured capturedCall
	expectCall(mockClient, `{"id":"c1"}`, &captured)

	_, err := integrator.GetCampaignByID(context.Background(), "c1", nil)
	require.NoError(t, err)

	assert.Equal(t, "c1", captured.endpoint)
	// Lookups de entidade única delegam o conjunto default à própria API
	assert.False(t, captured.params.Has("fields"))
}

func TestGetAdSetsByCampaignID_Defaults(t *testing.T) {
	integrator, mockClient := newIntegrator(t)

	var captured capturedCall
	expectCall(mockClient, `{"data":[]}`, &captured)

	_, err := integrator.GetAdSetsByCampaignID(context.Background(), "c1", ListOptions{})
	require.NoError(t, err)

	assert.Equal(t, "c1/adsets", captured.endpoint)
	assert.Equal(t, "name,effective_status,daily_budget,lifetime_budget,targeting", captured.params.Get("fields"))
	assert.Equal(t, "25", captured.params.Get("limit"))
}

func TestGetAdsByAdSetID_Defaults(t *testing.T) {
	integrator, mockClient := newIntegrator(t)

	var captured capturedCall
	expectCall(mockClient, `{"data":[]}`, &captured)

	_, err := integrator.GetAdsByAdSetID(context.Background(), "as1", ListOptions{})
	require.NoError(t, err)

	assert.Equal(t, "as1/ads", captured.endpoint)
	assert.Equal(t, "name,effective_status,creative", captured.params.Get("fields"))
	assert.Equal(t, "25", captured.params.Get("limit"))
}

func TestGetInsights_DateWindow(t *testing.T) {
	tests := []struct {
		name           string
		opts           InsightOptions
		wantPreset     string
		wantTimeRange  string
		wantNoPreset   bool
		wantFieldsList string
	}{
		{
			name:           "Sem janela - aplica o preset default last_30d",
			opts:           InsightOptions{},
			wantPreset:     "last_30d",
			wantFieldsList: "impressions,clicks,spend,cpc,cpm,ctr,reach",
		},
		{
			name:       "Preset explícito",
			opts:       InsightOptions{DatePreset: "last_7d"},
			wantPreset: "last_7d",
		},
		{
			name: "time_range presente prevalece e o preset é omitido",
			opts: InsightOptions{
				DatePreset: "last_7d",
				TimeRange:  &domain.TimeRange{Since: "2024-01-01", Until: "2024-01-31"},
			},
			wantNoPreset:  true,
			wantTimeRange: `{"since":"2024-01-01","until":"2024-01-31"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator, mockClient := newIntegrator(t)

			var captured capturedCall
			expectCall(mockClient, `{"data":[]}`, &captured)

			_, err := integrator.GetCampaignInsights(context.Background(), "c1", tt.opts)
			require.NoError(t, err)

			assert.Equal(t, "c1/insights", captured.endpoint)

			if tt.wantNoPreset {
				assert.False(t, captured.params.Has("date_preset"))
			} else {
				assert.Equal(t, tt.wantPreset, captured.params.Get("date_preset"))
			}
			if tt.wantTimeRange != "" {
				assert.JSONEq(t, tt.wantTimeRange, captured.params.Get("time_range"))
			}
			if tt.wantFieldsList != "" {
				assert.Equal(t, tt.wantFieldsList, captured.params.Get("fields"))
			}
		})
	}
}

func TestGetAccountAdInsights_SpendFilter(t *testing.T) {
	integrator, mockClient := newIntegrator(t)

	var captured capturedCall
	expectCall(mockClient, `{"data":[{"ad_id":"a1","spend":"12.34"}]}`, &captured)

	insights, err := integrator.GetAccountAdInsights(context.Background(), "act_123", AccountInsightQuery{
		Fields:   "ad_id,spend",
		MinSpend: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, "act_123/insights", captured.endpoint)
	assert.Equal(t, "ad", captured.params.Get("level"))
	assert.Equal(t, "100", captured.params.Get("limit"))
	assert.JSONEq(t,
		`[{"field":"spend","operator":"GREATER_THAN","value":5}]`,
		captured.params.Get("filtering"))

	require.Len(t, insights, 1)
	assert.Equal(t, "a1", insights[0].AdID)
	assert.Equal(t, "12.34", insights[0].Spend)
}

func TestFetchPaginationURL(t *testing.T) {
	integrator, mockClient := newIntegrator(t)

	pagingURL := "https://graph.facebook.com/v22.0/act_123/ads?after=cursor"

	mockClient.EXPECT().
		CallAbsoluteURL(gomock.Any(), pagingURL).
		Return([]byte(`{"data":[],"paging":{"next":"x"}}`), nil)

	resp, err := integrator.FetchPaginationURL(context.Background(), pagingURL)
	require.NoError(t, err)
	assert.Contains(t, resp, "paging")
}
