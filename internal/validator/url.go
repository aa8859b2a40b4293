package validator

import "net/url"

// IsValidURL сообщает, является ли строка корректным URL со схемой и хостом.
// Ошибка разбора означает невалидный URL.
func IsValidURL(s string) bool {
	parsed, err := url.Parse(s)
	if err != nil {
		return false
	}

	return parsed.Scheme != "" && parsed.Host != ""
}
