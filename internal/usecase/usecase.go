package usecase

import (
	"github.com/avc-dev/base62-shortener/internal/config"
	"github.com/avc-dev/base62-shortener/internal/model"
	"go.uber.org/zap"
)

// URLRepository определяет интерфейс для работы с хранилищем URL
type URLRepository interface {
	CreateOrGetURL(url model.URL) (model.Code, bool, error)
	GetURLByCode(code model.Code) (model.URL, error)
}

// URLValidator проверяет, является ли строка корректным URL
type URLValidator func(s string) bool

// Metrics принимает события о выпуске и чтении кодов
type Metrics interface {
	CodeMinted()
	CodeReused()
	Resolved(found bool)
}

// URLUsecase последовательно выполняет валидацию и обращение к хранилищу.
// Собственного состояния не имеет.
type URLUsecase struct {
	repo      URLRepository
	validator URLValidator
	metrics   Metrics
	cfg       *config.Config
	logger    *zap.Logger
}

// NewURLUsecase создает новый экземпляр URLUsecase
func NewURLUsecase(repo URLRepository, validator URLValidator, metrics Metrics, cfg *config.Config, logger *zap.Logger) *URLUsecase {
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &URLUsecase{
		repo:      repo,
		validator: validator,
		metrics:   metrics,
		cfg:       cfg,
		logger:    logger,
	}
}

type nopMetrics struct{}

func (nopMetrics) CodeMinted()   {}
func (nopMetrics) CodeReused()   {}
func (nopMetrics) Resolved(bool) {}
