package usecase

import (
	"go.uber.org/zap"
)

// GetOriginalURL получает оригинальный URL по короткому коду
func (u *URLUsecase) GetOriginalURL(code string) (string, error) {
	originalURL, err := u.Resolve(code)
	if err != nil {
		u.logger.Debug("short code not found",
			zap.String("code", code),
			zap.Error(err),
		)
		return "", err
	}

	return originalURL.String(), nil
}
