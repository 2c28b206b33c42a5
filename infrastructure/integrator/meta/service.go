package meta

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/fb-ads-mcp-server/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/fb-ads-mcp-server/internal/config"
	"github.com/vfg2006/fb-ads-mcp-server/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MetaIntegrator expõe a superfície de leitura da Graph API consumida pelas
// tools MCP: construção de parâmetros e delegação ao gateway, sem lógica de
// negócio além da montagem de query strings.
type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// ListOptions são os parâmetros opcionais dos endpoints de listagem.
// Fields vazio usa o conjunto default documentado por recurso; Limit zero
// usa o default do recurso; Filtering é serializado como JSON.
type ListOptions struct {
	Fields    []string
	Limit     int
	Filtering []domain.Filter
}

// InsightOptions são os parâmetros opcionais dos endpoints de insights.
// TimeRange, quando presente, sempre prevalece sobre DatePreset e o preset
// é omitido da requisição.
type InsightOptions struct {
	Fields     []string
	DatePreset string
	TimeRange  *domain.TimeRange
}

// call delega ao gateway e decodifica o JSON bruto para passthrough
func (s *MetaIntegrator) call(ctx context.Context, endpoint string, params url.Values) (map[string]interface{}, error) {
	body, err := s.Client.Call(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	var response map[string]interface{}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar resposta da Graph API")
	}

	return response, nil
}

// applyFieldList adiciona o parâmetro fields apenas quando há campos:
// para lookups de entidade única a ausência significa "usar o conjunto
// default da própria API", diferente dos endpoints de listagem que sempre
// enviam um default
func applyFieldList(params url.Values, fields []string, defaults string) {
	if len(fields) > 0 {
		params.Set("fields", strings.Join(fields, ","))
		return
	}
	if defaults != "" {
		params.Set("fields", defaults)
	}
}

func applyLimit(params url.Values, limit, fallback int) {
	if limit <= 0 {
		limit = fallback
	}
	params.Set("limit", strconv.Itoa(limit))
}

func applyFiltering(params url.Values, filtering []domain.Filter) error {
	if len(filtering) == 0 {
		return nil
	}

	serialized, err := json.MarshalToString(filtering)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar o parâmetro filtering")
	}
	params.Set("filtering", serialized)

	return nil
}

// applyDateWindow aplica a precedência time_range > date_preset
func applyDateWindow(params url.Values, datePreset string, timeRange *domain.TimeRange) error {
	if timeRange != nil {
		serialized, err := json.MarshalToString(timeRange)
		if err != nil {
			return errors.Wrap(err, "erro ao serializar o parâmetro time_range")
		}
		params.Set("time_range", serialized)
		return nil
	}

	if datePreset != "" {
		params.Set("date_preset", datePreset)
	}

	return nil
}
