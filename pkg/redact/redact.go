// redact маскирует чувствительные данные перед записью в лог.
package redact

import "strings"

// Email маскирует e-mail: оставляет первые две руны локальной части и домен.
//
//	"alice@example.com" -> "al***@example.com"
//	"ab@ex.com"         -> "***@ex.com"
//	"no-at"             -> "***"
func Email(s string) string {
	if strings.Count(s, "@") != 1 {
		return "***"
	}

	local, domain, _ := strings.Cut(s, "@")

	if lr := []rune(local); len(lr) > 2 {
		return string(lr[:2]) + "***@" + domain
	}

	return "***@" + domain
}

// Token возвращает заглушку вместо токена.
func Token() string { return "[REDACTED_TOKEN]" }
