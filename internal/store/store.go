package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/avc-dev/base62-shortener/internal/model"
)

var (
	ErrNotFound = errors.New("key not found")
)

// Generator выдает новые уникальные коды
type Generator interface {
	Next() (model.Code, error)
}

// URLMap представляет маппинг коротких кодов на оригинальные URL
type URLMap = map[model.Code]model.URL

// CodeMap представляет обратный маппинг оригинальных URL на коды
type CodeMap = map[model.URL]model.Code

// Store хранит двустороннее соответствие URL и кодов.
// Оба индекса и обращения к генератору защищены одним RWMutex.
type Store struct {
	codes     CodeMap
	urls      URLMap
	generator Generator
	mutex     sync.RWMutex
}

func NewStore(generator Generator) *Store {
	return &Store{
		codes:     make(CodeMap),
		urls:      make(URLMap),
		generator: generator,
	}
}

// Encode возвращает код для URL.
// Если URL уже сохранен, возвращает существующий код и created=false без побочных эффектов.
// Иначе под эксклюзивной блокировкой выпускает новый код и записывает оба индекса.
func (s *Store) Encode(url model.URL) (model.Code, bool, error) {
	s.mutex.RLock()
	code, ok := s.codes[url]
	s.mutex.RUnlock()

	if ok {
		return code, false, nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	// Повторная проверка: другой вызов мог успеть вставить этот URL
	if code, ok := s.codes[url]; ok {
		return code, false, nil
	}

	code, err := s.generator.Next()
	if err != nil {
		return "", false, fmt.Errorf("failed to generate code for %s: %w", url, err)
	}

	s.codes[url] = code
	s.urls[code] = url

	return code, true, nil
}

// Decode возвращает URL по коду, ничего не изменяя
func (s *Store) Decode(code model.Code) (model.URL, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	url, ok := s.urls[code]
	if !ok {
		return "", fmt.Errorf("key %s: %w", code, ErrNotFound)
	}

	return url, nil
}

// Len возвращает количество сохраненных соответствий
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.urls)
}
