package handler

import (
	"github.com/stretchr/testify/mock"
)

// mockURLUsecase mock для URLUsecase
type mockURLUsecase struct {
	mock.Mock
}

func (m *mockURLUsecase) CreateShortURLFromString(urlString string) (string, error) {
	args := m.Called(urlString)
	return args.String(0), args.Error(1)
}

func (m *mockURLUsecase) GetOriginalURL(code string) (string, error) {
	args := m.Called(code)
	return args.String(0), args.Error(1)
}
