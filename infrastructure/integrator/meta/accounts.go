package meta

import (
	"context"
	"net/url"

	"github.com/sirupsen/logrus"
)

const (
	adAccountListFields    = "name,account_id,account_status,currency"
	adAccountDetailDefault = "name,account_status,amount_spent,balance,currency"
)

// ListAdAccounts lista todas as contas de anúncio vinculadas ao token
func (s *MetaIntegrator) ListAdAccounts(ctx context.Context) (map[string]interface{}, error) {
	params := url.Values{}
	params.Set("fields", adAccountListFields)

	resp, err := s.call(ctx, "me/adaccounts", params)
	if err != nil {
		logrus.WithError(err).Error("accounts: failed to list ad accounts")
		return nil, err
	}

	return resp, nil
}

// GetAdAccountByID obtém detalhes de uma conta de anúncio (act_<digits>)
func (s *MetaIntegrator) GetAdAccountByID(ctx context.Context, actID string, fields []string) (map[string]interface{}, error) {
	params := url.Values{}
	applyFieldList(params, fields, adAccountDetailDefault)

	resp, err := s.call(ctx, actID, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": actID,
			"error":      err.Error(),
		}).Error("accounts: failed to get ad account details")
		return nil, err
	}

	return resp, nil
}
