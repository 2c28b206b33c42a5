package utils

import "time"

// DateLayout é o formato de data aceito pela Graph API (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// ParseDate interpreta uma data no formato da Graph API. Entrada vazia é
// inválida: ausência deve ser tratada pelo chamador antes de validar.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayout, dateStr)
}
