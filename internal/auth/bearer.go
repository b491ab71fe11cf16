package auth

import "strings"

const bearerPrefix = "Bearer "

// ExtractBearerToken разбирает "Authorization: Bearer <token>".
// Возвращает false, если заголовок пуст, без префикса или токен пустой.
func ExtractBearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", false
	}

	return token, true
}
