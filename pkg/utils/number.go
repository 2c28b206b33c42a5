package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para duas casas decimais, a precisão
// dos valores monetários nos relatórios
func RoundWithTwoDecimalPlace(f float64) float64 {
	return math.Round(f*100) / 100
}
