package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	ErrorParse = errors.New("malformed store file")
)

// Collection — коллекция записей одного типа, целиком хранящаяся в одном
// JSON-файле. Каждая запись/перезапись идет через мьютекс, чтобы два
// конкурентных создателя не потеряли записи друг друга.
type Collection[T any] struct {
	path string
	mu   sync.Mutex
}

func NewCollection[T any](path string) *Collection[T] { // Конструктор
	return &Collection[T]{path: path}
}

// Load возвращает все записи коллекции. Отсутствующий или пустой файл —
// это пустая коллекция, а не ошибка.
func (c *Collection[T]) Load() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Save перезаписывает файл коллекции целиком. Атомарность не гарантируется:
// падение посреди записи может оставить файл испорченным.
func (c *Collection[T]) Save(records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(records)
}

// Update выполняет цикл load-mutate-save под мьютексом коллекции.
func (c *Collection[T]) Update(fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return err
	}
	updated, err := fn(records)
	if err != nil {
		return err
	}
	return c.save(updated)
}

func (c *Collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", c.path, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrorParse, c.path, err)
	}
	return records, nil
}

func (c *Collection[T]) save(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", c.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("store: mkdir for %s: %w", c.path, err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", c.path, err)
	}
	return nil
}
