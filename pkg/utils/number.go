package utils

import (
	"fmt"
	"math"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatAmount abrevia o valor por ordem de grandeza: sem sufixo, "mil" ou "milhões".
// O prefixo (ex: "R$") é opcional.
func FormatAmount(value float64, prefix string) string {
	for _, unit := range []string{"", "mil"} {
		if value < 1000 {
			return strings.TrimSpace(fmt.Sprintf("%s %.2f %s", prefix, value, unit))
		}
		value /= 1000
	}

	return strings.TrimSpace(fmt.Sprintf("%s %.2f milhões", prefix, value))
}
