package usecase

import (
	"errors"
	"testing"

	"github.com/avc-dev/base62-shortener/internal/config"
	"github.com/avc-dev/base62-shortener/internal/model"
	"github.com/avc-dev/base62-shortener/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetOriginalURL_Success(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		storedURL string
	}{
		{
			name:      "Single character code",
			code:      "a",
			storedURL: "https://example.com",
		},
		{
			name:      "Code with URL containing path",
			code:      "ba",
			storedURL: "https://example.com/path/to/resource",
		},
		{
			name:      "Code with URL containing anchor",
			code:      "Z9",
			storedURL: "https://example.com/page#section",
		},
		{
			name:      "Code with unicode URL",
			code:      "b0",
			storedURL: "https://example.com/путь",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockRepo := &mockURLRepository{}
			mockRepo.On("GetURLByCode", model.Code(tt.code)).
				Return(model.URL(tt.storedURL), nil).
				Once()

			usecase := NewURLUsecase(mockRepo, validator.IsValidURL, nil, config.NewDefaultConfig(), zap.NewNop())

			// Act
			result, err := usecase.GetOriginalURL(tt.code)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.storedURL, result)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetOriginalURL_NotFound(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		repoError error
	}{
		{
			name:      "Code not found",
			code:      "doesnotexist",
			repoError: errors.New("not found"),
		},
		{
			name:      "Empty code",
			code:      "",
			repoError: errors.New("not found"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockRepo := &mockURLRepository{}
			mockRepo.On("GetURLByCode", model.Code(tt.code)).
				Return(model.URL(""), tt.repoError).
				Once()

			usecase := NewURLUsecase(mockRepo, validator.IsValidURL, nil, config.NewDefaultConfig(), zap.NewNop())

			// Act
			result, err := usecase.GetOriginalURL(tt.code)

			// Assert
			assert.ErrorIs(t, err, ErrURLNotFound)
			assert.ErrorIs(t, err, tt.repoError)
			assert.Empty(t, result)
		})
	}
}
