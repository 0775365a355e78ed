package pricing

import "math"

// RoundUpToHalf округляет часы вверх до ближайшего получаса
// Идемпотентна: повторное применение не меняет результат
func RoundUpToHalf(hours float64) float64 {
	if hours <= 0 {
		return 0
	}
	return math.Ceil(hours*2) / 2
}

// Round2 округляет денежную сумму до двух знаков
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
