package usecase

import (
	"fmt"

	"github.com/avc-dev/base62-shortener/internal/model"
	"go.uber.org/zap"
)

// Shorten возвращает код для длинного URL.
// Невалидный URL отклоняется до обращения к хранилищу, счетчик при этом не меняется.
func (u *URLUsecase) Shorten(longURL string) (model.Code, error) {
	if !u.validator(longURL) {
		return "", ErrInvalidURL
	}

	code, created, err := u.repo.CreateOrGetURL(model.URL(longURL))
	if err != nil {
		u.logger.Error("failed to shorten URL",
			zap.String("original_url", longURL),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	if created {
		u.metrics.CodeMinted()
		u.logger.Debug("new code issued",
			zap.String("original_url", longURL),
			zap.String("code", code.String()),
		)
	} else {
		u.metrics.CodeReused()
	}

	return code, nil
}
