package repository

import (
	"github.com/avc-dev/base62-shortener/internal/model"
)

type Store interface {
	Encode(url model.URL) (model.Code, bool, error)
	Decode(code model.Code) (model.URL, error)
	Len() int
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

// Count возвращает число сохраненных соответствий
func (r Repository) Count() int {
	return r.underlying.Len()
}
