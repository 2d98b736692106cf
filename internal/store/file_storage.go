package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/nstepanov-dev/shortener/internal/model"
)

// FileStorage управляет персистентным хранилищем URL в JSON файле.
// Записи хранятся построчно, файл только дописывается
type FileStorage struct {
	filePath string
	mutex    sync.Mutex
}

// NewFileStorage создаёт новый FileStorage
func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{
		filePath: filePath,
	}
}

// Load загружает все записи из файла в порядке добавления
func (fs *FileStorage) Load() ([]model.URLEntry, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	file, err := os.Open(fs.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.URLEntry{}, nil
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var entries []model.URLEntry
	decoder := json.NewDecoder(file)
	for {
		var entry model.URLEntry
		if err := decoder.Decode(&entry); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to decode entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Append добавляет одну запись в конец файла
func (fs *FileStorage) Append(entry model.URLEntry) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	file, err := os.OpenFile(fs.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if err := json.NewEncoder(file).Encode(entry); err != nil {
		return fmt.Errorf("failed to encode entry: %w", err)
	}

	return nil
}
