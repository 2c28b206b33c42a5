package meta

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
)

const (
	campaignListDefaultFields = "name,objective,status,effective_status,daily_budget,lifetime_budget"
	campaignListDefaultLimit  = 25
)

// GetCampaignsByAccountID lista as campanhas de uma conta de anúncio
func (s *MetaIntegrator) GetCampaignsByAccountID(ctx context.Context, actID string, opts ListOptions) (map[string]interface{}, error) {
	params := url.Values{}
	applyFieldList(params, opts.Fields, campaignListDefaultFields)
	applyLimit(params, opts.Limit, campaignListDefaultLimit)

	if err := applyFiltering(params, opts.Filtering); err != nil {
		return nil, err
	}

	resp, err := s.call(ctx, fmt.Sprintf("%s/campaigns", actID), params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": actID,
			"error":      err.Error(),
		}).Error("campaigns: failed to list campaigns")
		return nil, err
	}

	return resp, nil
}

// GetCampaignByID obtém detalhes de uma campanha. Sem field list o conjunto
// default é o da própria API.
func (s *MetaIntegrator) GetCampaignByID(ctx context.Context, campaignID string, fields []string) (map[string]interface{}, error) {
	params := url.Values{}
	applyFieldList(params, fields, "")

	resp, err := s.call(ctx, campaignID, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("campaigns: failed to get campaign details")
		return nil, err
	}

	return resp, nil
}
