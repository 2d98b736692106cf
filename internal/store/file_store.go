package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/nstepanov-dev/shortener/internal/model"
)

// FileStore декоратор над Store, который добавляет персистентность через файл.
// Каждая мутация дописывает запись в конец файла, при загрузке для каждого
// кода действует последняя запись
type FileStore struct {
	store       *Store
	fileStorage *FileStorage
	mutex       sync.Mutex
}

// NewFileStore создаёт FileStore и загружает данные из файла
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{
		store:       NewStore(),
		fileStorage: NewFileStorage(filePath),
	}

	if err := fs.loadFromFile(); err != nil {
		return nil, fmt.Errorf("failed to load data from file: %w", err)
	}

	return fs, nil
}

// loadFromFile загружает данные из файла в in-memory store
func (fs *FileStore) loadFromFile() error {
	entries, err := fs.fileStorage.Load()
	if err != nil {
		return fmt.Errorf("failed to load data from file: %w", err)
	}

	byCode := make(map[model.Code]model.URLMapping, len(entries))
	order := make([]model.Code, 0, len(entries))
	var nextID int64

	for _, entry := range entries {
		code := model.Code(entry.ShortCode)
		mapping, seen := byCode[code]
		if !seen {
			nextID++
			mapping = model.URLMapping{ID: nextID, ShortCode: code}
			order = append(order, code)
		}
		mapping.OriginalURL = model.URL(entry.OriginalURL)
		mapping.CreatedAt = entry.CreatedAt
		mapping.Clicks = entry.Clicks
		byCode[code] = mapping
	}

	mappings := make([]model.URLMapping, 0, len(order))
	for _, code := range order {
		mappings = append(mappings, byCode[code])
	}

	fs.store.InitializeWith(mappings)

	return nil
}

// appendMapping дописывает текущее состояние записи в файл
func (fs *FileStore) appendMapping(mapping model.URLMapping) error {
	entry := model.URLEntry{
		UUID:        uuid.New().String(),
		ShortCode:   string(mapping.ShortCode),
		OriginalURL: string(mapping.OriginalURL),
		CreatedAt:   mapping.CreatedAt,
		Clicks:      mapping.Clicks,
	}

	if err := fs.fileStorage.Append(entry); err != nil {
		return fmt.Errorf("failed to append to file: %w", err)
	}

	return nil
}

// CreateURL записывает пару в in-memory store и добавляет запись в файл
func (fs *FileStore) CreateURL(ctx context.Context, code model.Code, url model.URL) (model.URLMapping, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	mapping, err := fs.store.CreateURL(ctx, code, url)
	if err != nil {
		return model.URLMapping{}, err
	}

	if err := fs.appendMapping(mapping); err != nil {
		return model.URLMapping{}, err
	}

	return mapping, nil
}

// CreateBatch записывает несколько пар в in-memory store и добавляет их в файл
func (fs *FileStore) CreateBatch(ctx context.Context, urls URLMap) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	if err := fs.store.CreateBatch(ctx, urls); err != nil {
		return err
	}

	for code := range urls {
		mapping, err := fs.store.FindByCode(ctx, code)
		if err != nil {
			return err
		}
		if err := fs.appendMapping(mapping); err != nil {
			return err
		}
	}

	return nil
}

// FindByCode читает запись из in-memory store
func (fs *FileStore) FindByCode(ctx context.Context, code model.Code) (model.URLMapping, error) {
	return fs.store.FindByCode(ctx, code)
}

// FindCodeByURL читает код по URL из in-memory store
func (fs *FileStore) FindCodeByURL(ctx context.Context, url model.URL) (model.Code, error) {
	return fs.store.FindCodeByURL(ctx, url)
}

// ResolveURL возвращает URL, увеличивает счётчик и фиксирует новое значение в файле
func (fs *FileStore) ResolveURL(ctx context.Context, code model.Code) (model.URL, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	url, err := fs.store.ResolveURL(ctx, code)
	if err != nil {
		return "", err
	}

	mapping, err := fs.store.FindByCode(ctx, code)
	if err != nil {
		return "", err
	}
	if err := fs.appendMapping(mapping); err != nil {
		return "", err
	}

	return url, nil
}

// AddClick увеличивает счётчик и фиксирует новое значение в файле
func (fs *FileStore) AddClick(ctx context.Context, code model.Code) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	if err := fs.store.AddClick(ctx, code); err != nil {
		return err
	}

	mapping, err := fs.store.FindByCode(ctx, code)
	if err != nil {
		return err
	}

	return fs.appendMapping(mapping)
}

// CodeExists проверяет занятость кода в in-memory store
func (fs *FileStore) CodeExists(ctx context.Context, code model.Code) (bool, error) {
	return fs.store.CodeExists(ctx, code)
}

func (fs *FileStore) Ping(ctx context.Context) error {
	return fs.store.Ping(ctx)
}

func (fs *FileStore) Close() error {
	return fs.store.Close()
}
