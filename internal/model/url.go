package model

import "encoding/json"

// Code короткий код над алфавитом base62
type Code string

func (c Code) String() string {
	return string(c)
}

// URL оригинальный (длинный) URL, хранится как есть
type URL string

func (U URL) String() string {
	return string(U)
}

// ShortenRequest тело запроса POST /shorten.
// long_url хранится как есть: значение не-строкового типа не ошибка разбора тела, а невалидный URL.
type ShortenRequest struct {
	LongURL json.RawMessage `json:"long_url"`
}

// URL возвращает long_url как строку.
// Отсутствующее поле и null дают пустую строку, ok=false только для значений не-строкового типа.
func (r ShortenRequest) URL() (string, bool) {
	if len(r.LongURL) == 0 {
		return "", true
	}

	var s string
	if err := json.Unmarshal(r.LongURL, &s); err != nil {
		return "", false
	}

	return s, true
}

// ShortenResponse тело успешного ответа POST /shorten
type ShortenResponse struct {
	ShortURL string `json:"short_url"`
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}
