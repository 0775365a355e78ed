package phone

import "strings"

// Normalize приводит телефонный номер к каноническому международному формату.
//
// Правила (в порядке приоритета):
//  1. Из номера удаляются все нецифровые символы.
//  2. Если результат начинается с "0" и содержит >= 10 цифр, ведущий "0"
//     заменяется на "+44" (номера UK).
//  3. Если результат начинается с "44", добавляется префикс "+".
//  4. Если исходная строка начиналась с "+", она возвращается как есть
//     (только с обрезанными пробелами).
//  5. Иначе к цифровой строке добавляется префикс "+".
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)

	digits := keepDigits(trimmed)

	switch {
	case strings.HasPrefix(digits, "0") && len(digits) >= 10:
		return "+44" + digits[1:]
	case strings.HasPrefix(digits, "44"):
		return "+" + digits
	case strings.HasPrefix(trimmed, "+"):
		return trimmed
	default:
		return "+" + digits
	}
}

// keepDigits удаляет из строки все символы, кроме цифр
func keepDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
