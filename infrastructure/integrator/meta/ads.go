package meta

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/fb-ads-mcp-server/infrastructure/integrator/meta/domain"
)

const (
	adListDefaultFields = "name,effective_status,creative"
	adListDefaultLimit  = 25
)

// Conjunto fixo de metadados de anúncio usado pelo relatório completo,
// incluindo os sub-objetos aninhados campaign/adset/creative
const reportAdFields = "id,name,status,effective_status," +
	"campaign_id,campaign{id,name}," +
	"adset_id,adset{id,name}," +
	"creative{id,asset_feed_spec,image_url,video_id,thumbnail_url,object_story_spec}"

// GetAdsByAdSetID lista os anúncios de um conjunto de anúncios
func (s *MetaIntegrator) GetAdsByAdSetID(ctx context.Context, adsetID string, opts ListOptions) (map[string]interface{}, error) {
	return s.listAds(ctx, fmt.Sprintf("%s/ads", adsetID), opts)
}

// GetAdsByAccountID lista os anúncios de uma conta de anúncio
func (s *MetaIntegrator) GetAdsByAccountID(ctx context.Context, actID string, opts ListOptions) (map[string]interface{}, error) {
	return s.listAds(ctx, fmt.Sprintf("%s/ads", actID), opts)
}

func (s *MetaIntegrator) listAds(ctx context.Context, endpoint string, opts ListOptions) (map[string]interface{}, error) {
	params := url.Values{}
	applyFieldList(params, opts.Fields, adListDefaultFields)
	applyLimit(params, opts.Limit, adListDefaultLimit)

	if err := applyFiltering(params, opts.Filtering); err != nil {
		return nil, err
	}

	resp, err := s.call(ctx, endpoint, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"endpoint": endpoint,
			"error":    err.Error(),
		}).Error("ads: failed to list ads")
		return nil, err
	}

	return resp, nil
}

// GetAdByID obtém detalhes de um anúncio
func (s *MetaIntegrator) GetAdByID(ctx context.Context, adID string, fields []string) (map[string]interface{}, error) {
	params := url.Values{}
	applyFieldList(params, fields, "")

	resp, err := s.call(ctx, adID, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id": adID,
			"error": err.Error(),
		}).Error("ads: failed to get ad details")
		return nil, err
	}

	return resp, nil
}

// GetAdsWithMetadata busca os anúncios com o conjunto fixo de metadados do
// relatório completo, escopado à campanha quando campaignID é informado,
// senão à conta inteira
func (s *MetaIntegrator) GetAdsWithMetadata(ctx context.Context, actID, campaignID string, limit int) ([]metadomain.Ad, error) {
	endpoint := fmt.Sprintf("%s/ads", actID)
	if campaignID != "" {
		endpoint = fmt.Sprintf("%s/ads", campaignID)
	}

	params := url.Values{}
	params.Set("fields", reportAdFields)
	applyLimit(params, limit, reportDefaultLimit)

	body, err := s.Client.Call(ctx, endpoint, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"endpoint": endpoint,
			"error":    err.Error(),
		}).Error("ads: failed to fetch ads metadata for report")
		return nil, err
	}

	var response metadomain.AdListResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar listagem de anúncios")
	}

	return response.Data, nil
}
