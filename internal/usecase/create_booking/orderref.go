package create_booking

import (
	"fmt"
	"math/rand"
)

// generateOrderReference генерирует человекочитаемый номер заказа:
// алфавитный префикс варианта плюс пять случайных цифр ("HC48213").
// Уникальность best-effort, коллизии не проверяются
func generateOrderReference(prefix string) string {
	return fmt.Sprintf("%s%05d", prefix, rand.Intn(100000))
}
