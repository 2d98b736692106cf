package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nstepanov-dev/shortener/internal/model"
)

var (
	ErrNotFound   = errors.New("key not found")
	ErrCodeExists = errors.New("code already exists")
)

// URLMap представляет маппинг коротких кодов на оригинальные URL
type URLMap = map[model.Code]model.URL

// Store хранит маппинги в памяти. Уникальность кода гарантируется
// проверкой под мьютексом, счётчик кликов изменяется только под ним же
type Store struct {
	urls      map[model.Code]model.URLMapping
	codeByURL map[model.URL]model.Code
	nextID    int64
	mutex     sync.Mutex
}

func NewStore() *Store {
	return &Store{
		urls:      make(map[model.Code]model.URLMapping),
		codeByURL: make(map[model.URL]model.Code),
	}
}

// CreateURL сохраняет новую пару код-URL. Возвращает ErrCodeExists,
// если код уже занят
func (s *Store) CreateURL(_ context.Context, code model.Code, url model.URL) (model.URLMapping, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.urls[code]; exists {
		return model.URLMapping{}, fmt.Errorf("key %s: %w", code, ErrCodeExists)
	}

	s.nextID++
	mapping := model.URLMapping{
		ID:          s.nextID,
		OriginalURL: url,
		ShortCode:   code,
		CreatedAt:   time.Now(),
	}
	s.urls[code] = mapping

	// Для дедупликации запоминается первый код, выданный этому URL
	if _, exists := s.codeByURL[url]; !exists {
		s.codeByURL[url] = code
	}

	return mapping, nil
}

// CreateBatch сохраняет несколько пар код-URL атомарно: либо все, либо ни одной
func (s *Store) CreateBatch(_ context.Context, urls URLMap) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	// Проверяем существование всех кодов перед вставкой
	for code := range urls {
		if _, exists := s.urls[code]; exists {
			return fmt.Errorf("key %s: %w", code, ErrCodeExists)
		}
	}

	for code, url := range urls {
		s.nextID++
		s.urls[code] = model.URLMapping{
			ID:          s.nextID,
			OriginalURL: url,
			ShortCode:   code,
			CreatedAt:   time.Now(),
		}
		if _, exists := s.codeByURL[url]; !exists {
			s.codeByURL[url] = code
		}
	}

	return nil
}

// FindByCode возвращает запись по короткому коду
func (s *Store) FindByCode(_ context.Context, code model.Code) (model.URLMapping, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	mapping, ok := s.urls[code]
	if !ok {
		return model.URLMapping{}, fmt.Errorf("key %s: %w", code, ErrNotFound)
	}

	return mapping, nil
}

// FindCodeByURL возвращает ранее выданный код для оригинального URL
func (s *Store) FindCodeByURL(_ context.Context, url model.URL) (model.Code, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	code, ok := s.codeByURL[url]
	if !ok {
		return "", fmt.Errorf("url %s: %w", url, ErrNotFound)
	}

	return code, nil
}

// ResolveURL возвращает оригинальный URL и увеличивает счётчик кликов.
// Поиск и инкремент выполняются как одна операция под мьютексом
func (s *Store) ResolveURL(_ context.Context, code model.Code) (model.URL, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	mapping, ok := s.urls[code]
	if !ok {
		return "", fmt.Errorf("key %s: %w", code, ErrNotFound)
	}

	mapping.Clicks++
	s.urls[code] = mapping

	return mapping.OriginalURL, nil
}

// AddClick увеличивает счётчик кликов без чтения URL
func (s *Store) AddClick(_ context.Context, code model.Code) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	mapping, ok := s.urls[code]
	if !ok {
		return fmt.Errorf("key %s: %w", code, ErrNotFound)
	}

	mapping.Clicks++
	s.urls[code] = mapping

	return nil
}

// CodeExists проверяет, занят ли короткий код
func (s *Store) CodeExists(_ context.Context, code model.Code) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, ok := s.urls[code]

	return ok, nil
}

// InitializeWith инициализирует хранилище данными (без проверки на существование).
// Используется для массовой загрузки данных, например, из файла
func (s *Store) InitializeWith(mappings []model.URLMapping) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, mapping := range mappings {
		s.urls[mapping.ShortCode] = mapping
		if mapping.ID > s.nextID {
			s.nextID = mapping.ID
		}

		existing, ok := s.codeByURL[mapping.OriginalURL]
		if !ok || s.urls[existing].ID > mapping.ID {
			s.codeByURL[mapping.OriginalURL] = mapping.ShortCode
		}
	}
}

// Snapshot возвращает копию всех записей
func (s *Store) Snapshot() []model.URLMapping {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	mappings := make([]model.URLMapping, 0, len(s.urls))
	for _, mapping := range s.urls {
		mappings = append(mappings, mapping)
	}

	return mappings
}

func (s *Store) Ping(_ context.Context) error {
	return nil
}

func (s *Store) Close() error {
	return nil
}
