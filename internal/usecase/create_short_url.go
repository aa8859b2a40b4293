package usecase

import (
	"fmt"
	"net/url"

	"github.com/avc-dev/base62-shortener/internal/model"
	"go.uber.org/zap"
)

// CreateShortURLFromString создает короткий URL из строки оригинального URL.
// Строка используется как есть: URL с пробелами по краям невалиден.
func (u *URLUsecase) CreateShortURLFromString(urlString string) (string, error) {
	if urlString == "" {
		return "", ErrEmptyURL
	}

	code, err := u.Shorten(urlString)
	if err != nil {
		return "", err
	}

	return u.ShortURL(code)
}

// ShortURL собирает короткий URL из базового префикса и кода
func (u *URLUsecase) ShortURL(code model.Code) (string, error) {
	shortURL, err := url.JoinPath(u.cfg.BaseURL.String(), code.String())
	if err != nil {
		u.logger.Error("failed to build short URL",
			zap.String("base_url", u.cfg.BaseURL.String()),
			zap.String("code", code.String()),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: failed to build short URL: %w", ErrServiceUnavailable, err)
	}

	return shortURL, nil
}
