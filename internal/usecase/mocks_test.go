package usecase

import (
	"sync"

	"github.com/avc-dev/base62-shortener/internal/model"
	"github.com/stretchr/testify/mock"
)

// mockURLRepository mock для URLRepository
type mockURLRepository struct {
	mock.Mock
}

func (m *mockURLRepository) CreateOrGetURL(url model.URL) (model.Code, bool, error) {
	args := m.Called(url)
	return args.Get(0).(model.Code), args.Bool(1), args.Error(2)
}

func (m *mockURLRepository) GetURLByCode(code model.Code) (model.URL, error) {
	args := m.Called(code)
	return args.Get(0).(model.URL), args.Error(1)
}

// recordingMetrics запоминает события для проверки в тестах
type recordingMetrics struct {
	mu       sync.Mutex
	minted   int
	reused   int
	found    int
	notFound int
}

func (m *recordingMetrics) CodeMinted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.minted++
}

func (m *recordingMetrics) CodeReused() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reused++
}

func (m *recordingMetrics) Resolved(found bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if found {
		m.found++
		return
	}
	m.notFound++
}
