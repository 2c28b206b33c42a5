package domain

// Filter é uma tripla {field, operator, value} serializada como JSON no
// parâmetro "filtering" da Graph API. A semântica do operador (inclusive a
// fronteira de GREATER_THAN usada no filtro de spend) é inteiramente da API
// remota; não há re-checagem do lado do cliente.
type Filter struct {
	Field    string      `json:"field"`
	Operator string      `json:"operator"`
	Value    interface{} `json:"value"`
}

// TimeRange é a janela de datas explícita {since, until} (YYYY-MM-DD).
// Quando informada junto com um date_preset, o time_range sempre prevalece
// e o preset é omitido da requisição.
type TimeRange struct {
	Since string `json:"since"`
	Until string `json:"until"`
}
