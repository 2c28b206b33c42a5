package reporting

import (
	"strings"

	metadomain "github.com/vfg2006/fb-ads-mcp-server/infrastructure/integrator/meta/domain"
)

// findActionValue devolve o value da primeira entrada cujo action_type
// CONTÉM a substring dada. O match por substring (e não por igualdade) é
// intencional: uma chave de busca como "purchase" precisa casar tanto o
// evento on-site quanto "offsite_conversion.fb_pixel_purchase".
func findActionValue(entries []metadomain.ActionEntry, actionType string) *string {
	for _, entry := range entries {
		if strings.Contains(entry.ActionType, actionType) {
			value := entry.Value
			return &value
		}
	}
	return nil
}

// firstActionValue aplica um fallback ordenado sobre uma lista de
// substrings candidatas, devolvendo o primeiro match não nulo
func firstActionValue(entries []metadomain.ActionEntry, actionTypes ...string) *string {
	for _, actionType := range actionTypes {
		if value := findActionValue(entries, actionType); value != nil {
			return value
		}
	}
	return nil
}

// Ordem de prioridade dos tipos de conversão de compra. Cobre eventos
// de pixel e on-site além do evento canônico de purchase.
var purchaseActionTypes = []string{
	"purchase",
	"offsite_conversion.fb_pixel_purchase",
	"offsite_conversion",
	"onsite_conversion",
}
