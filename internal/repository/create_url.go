package repository

import (
	"fmt"

	"github.com/avc-dev/base62-shortener/internal/model"
)

// CreateOrGetURL возвращает код для URL, создавая новую запись только для нового URL.
// created=true означает, что был выпущен новый код.
func (r Repository) CreateOrGetURL(url model.URL) (model.Code, bool, error) {
	code, created, err := r.underlying.Encode(url)
	if err != nil {
		return "", false, fmt.Errorf("failed to create or get URL: %w", err)
	}

	return code, created, nil
}
