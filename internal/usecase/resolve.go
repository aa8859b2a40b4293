package usecase

import (
	"fmt"

	"github.com/avc-dev/base62-shortener/internal/model"
)

// Resolve возвращает оригинальный URL по коду
func (u *URLUsecase) Resolve(code string) (model.URL, error) {
	originalURL, err := u.repo.GetURLByCode(model.Code(code))
	if err != nil {
		u.metrics.Resolved(false)
		return "", fmt.Errorf("%w: %w", ErrURLNotFound, err)
	}

	u.metrics.Resolved(true)

	return originalURL, nil
}
