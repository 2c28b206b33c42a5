package handler

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pkg/errors"
	"github.com/vfg2006/fb-ads-mcp-server/internal/domain"
	"github.com/vfg2006/fb-ads-mcp-server/pkg/utils"
)

// fieldsParam extrai a lista opcional de campos. Ausente significa "usar o
// default do recurso" (listagens) ou "usar o default da API" (lookups).
func fieldsParam(request mcp.CallToolRequest) []string {
	raw, ok := request.GetArguments()["fields"]
	if !ok {
		return nil
	}

	items, ok := raw.([]interface{})
	if !ok {
		return nil
	}

	fields := make([]string, 0, len(items))
	for _, item := range items {
		if field, ok := item.(string); ok {
			fields = append(fields, field)
		}
	}
	return fields
}

// limitParam extrai o limite opcional; zero delega o default ao recurso
func limitParam(request mcp.CallToolRequest) int {
	raw, ok := request.GetArguments()["limit"]
	if !ok {
		return 0
	}
	// Números JSON chegam como float64
	if limit, ok := raw.(float64); ok {
		return int(limit)
	}
	return 0
}

func floatParam(request mcp.CallToolRequest, key string) float64 {
	raw, ok := request.GetArguments()[key]
	if !ok {
		return 0
	}
	if value, ok := raw.(float64); ok {
		return value
	}
	return 0
}

// filteringParam decodifica o parâmetro filtering (lista de triplas
// {field, operator, value}) re-serializando o argumento bruto
func filteringParam(request mcp.CallToolRequest) ([]domain.Filter, error) {
	raw, ok := request.GetArguments()["filtering"]
	if !ok || raw == nil {
		return nil, nil
	}

	serialized, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.Wrap(err, "invalid filtering parameter")
	}

	var filtering []domain.Filter
	if err := json.Unmarshal(serialized, &filtering); err != nil {
		return nil, errors.Wrap(err, "invalid filtering parameter")
	}

	return filtering, nil
}

// timeRangeParam decodifica o objeto opcional {since, until}
func timeRangeParam(request mcp.CallToolRequest) (*domain.TimeRange, error) {
	raw, ok := request.GetArguments()["time_range"]
	if !ok || raw == nil {
		return nil, nil
	}

	serialized, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.Wrap(err, "invalid time_range parameter")
	}

	var timeRange domain.TimeRange
	if err := json.Unmarshal(serialized, &timeRange); err != nil {
		return nil, errors.Wrap(err, "invalid time_range parameter")
	}

	// Um objeto vazio equivale a não informar a janela: o date_preset
	// segue valendo em vez de mandar {"since":"","until":""} para a API
	if timeRange.Since == "" && timeRange.Until == "" {
		return nil, nil
	}

	if _, err := utils.ParseDate(timeRange.Since); err != nil {
		return nil, errors.Wrap(err, "invalid time_range.since date")
	}
	if _, err := utils.ParseDate(timeRange.Until); err != nil {
		return nil, errors.Wrap(err, "invalid time_range.until date")
	}

	return &timeRange, nil
}
