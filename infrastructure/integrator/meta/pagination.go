package meta

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// FetchPaginationURL busca uma URL de paginação completa (paging.next ou
// paging.previous) devolvida pela própria API. A credencial já vem embutida
// na URL, então nada é injetado.
func (s *MetaIntegrator) FetchPaginationURL(ctx context.Context, rawURL string) (map[string]interface{}, error) {
	body, err := s.Client.CallAbsoluteURL(ctx, rawURL)
	if err != nil {
		logrus.WithError(err).Error("pagination: failed to fetch pagination URL")
		return nil, err
	}

	var response map[string]interface{}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar página de resultados")
	}

	return response, nil
}
