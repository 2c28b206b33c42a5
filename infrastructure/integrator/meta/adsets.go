package meta

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
)

const (
	adsetListDefaultFields = "name,effective_status,daily_budget,lifetime_budget,targeting"
	adsetListDefaultLimit  = 25
)

// GetAdSetsByCampaignID lista os conjuntos de anúncios de uma campanha
func (s *MetaIntegrator) GetAdSetsByCampaignID(ctx context.Context, campaignID string, opts ListOptions) (map[string]interface{}, error) {
	params := url.Values{}
	applyFieldList(params, opts.Fields, adsetListDefaultFields)
	applyLimit(params, opts.Limit, adsetListDefaultLimit)

	if err := applyFiltering(params, opts.Filtering); err != nil {
		return nil, err
	}

	resp, err := s.call(ctx, fmt.Sprintf("%s/adsets", campaignID), params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("adsets: failed to list ad sets")
		return nil, err
	}

	return resp, nil
}

// GetAdSetByID obtém detalhes de um conjunto de anúncios
func (s *MetaIntegrator) GetAdSetByID(ctx context.Context, adsetID string, fields []string) (map[string]interface{}, error) {
	params := url.Values{}
	applyFieldList(params, fields, "")

	resp, err := s.call(ctx, adsetID, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id": adsetID,
			"error":    err.Error(),
		}).Error("adsets: failed to get ad set details")
		return nil, err
	}

	return resp, nil
}
