package meta

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/fb-ads-mcp-server/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/fb-ads-mcp-server/internal/domain"
)

const (
	campaignInsightDefaultFields = "impressions,clicks,spend,cpc,cpm,ctr,reach"
	adsetInsightDefaultFields    = "impressions,clicks,spend,cpc,ctr"
	adInsightDefaultFields       = "impressions,clicks,spend,cpc,ctr"

	defaultDatePreset  = "last_30d"
	reportDefaultLimit = 100
)

// GetCampaignInsights obtém métricas de performance de uma campanha
func (s *MetaIntegrator) GetCampaignInsights(ctx context.Context, campaignID string, opts InsightOptions) (map[string]interface{}, error) {
	return s.getInsights(ctx, campaignID, campaignInsightDefaultFields, opts)
}

// GetAdSetInsights obtém métricas de performance de um conjunto de anúncios
func (s *MetaIntegrator) GetAdSetInsights(ctx context.Context, adsetID string, opts InsightOptions) (map[string]interface{}, error) {
	return s.getInsights(ctx, adsetID, adsetInsightDefaultFields, opts)
}

// GetAdInsights obtém métricas de performance de um anúncio
func (s *MetaIntegrator) GetAdInsights(ctx context.Context, adID string, opts InsightOptions) (map[string]interface{}, error) {
	return s.getInsights(ctx, adID, adInsightDefaultFields, opts)
}

func (s *MetaIntegrator) getInsights(ctx context.Context, objectID, defaultFields string, opts InsightOptions) (map[string]interface{}, error) {
	params := url.Values{}
	applyFieldList(params, opts.Fields, defaultFields)

	datePreset := opts.DatePreset
	if datePreset == "" {
		datePreset = defaultDatePreset
	}
	if err := applyDateWindow(params, datePreset, opts.TimeRange); err != nil {
		return nil, err
	}

	resp, err := s.call(ctx, fmt.Sprintf("%s/insights", objectID), params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"object_id": objectID,
			"error":     err.Error(),
		}).Error("insights: failed to get insights")
		return nil, err
	}

	return resp, nil
}

// AccountInsightQuery parametriza a busca de insights por anúncio usada
// pelos relatórios: nível de anúncio, janela de datas e filtro server-side
// de spend (a fronteira de GREATER_THAN é semântica da API remota)
type AccountInsightQuery struct {
	Fields     string
	Limit      int
	MinSpend   float64
	DatePreset string
	TimeRange  *domain.TimeRange
}

// GetAccountAdInsights busca insights da conta inteira com level=ad,
// filtrados server-side por spend > MinSpend
func (s *MetaIntegrator) GetAccountAdInsights(ctx context.Context, actID string, query AccountInsightQuery) ([]metadomain.AdInsight, error) {
	params := url.Values{}
	params.Set("level", "ad")
	params.Set("fields", query.Fields)
	applyLimit(params, query.Limit, reportDefaultLimit)

	filtering := []domain.Filter{{
		Field:    "spend",
		Operator: "GREATER_THAN",
		Value:    query.MinSpend,
	}}
	if err := applyFiltering(params, filtering); err != nil {
		return nil, err
	}

	datePreset := query.DatePreset
	if datePreset == "" {
		datePreset = defaultDatePreset
	}
	if err := applyDateWindow(params, datePreset, query.TimeRange); err != nil {
		return nil, err
	}

	body, err := s.Client.Call(ctx, fmt.Sprintf("%s/insights", actID), params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": actID,
			"error":      err.Error(),
		}).Error("insights: failed to fetch account ad insights")
		return nil, err
	}

	var response metadomain.InsightListResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar insights da conta")
	}

	return response.Data, nil
}
