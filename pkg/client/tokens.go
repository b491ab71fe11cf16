package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Tokens — пара токенов, которую клиент держит между запусками.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Empty сообщает, что токенов нет (анонимное состояние).
func (t Tokens) Empty() bool {
	return t.AccessToken == "" && t.RefreshToken == ""
}

// TokenStore — долговременное хранилище токенов клиента.
type TokenStore interface {
	Load(ctx context.Context) (Tokens, error)
	Save(ctx context.Context, t Tokens) error
	Clear(ctx context.Context) error
}

// MemoryStore хранит токены в памяти процесса.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens Tokens
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (Tokens, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tokens, nil
}

func (s *MemoryStore) Save(_ context.Context, t Tokens) error {
	s.mu.Lock()
	s.tokens = t
	s.mu.Unlock()

	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.tokens = Tokens{}
	s.mu.Unlock()

	return nil
}

// FileStore хранит токены в JSON-файле с правами 0600.
// Запись атомарная: временный файл в том же каталоге + rename.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load читает файл; отсутствие файла — пустые токены без ошибки.
func (s *FileStore) Load(_ context.Context) (Tokens, error) {
	const op = "client.tokens.FileStore.Load"

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Tokens{}, nil
		}

		return Tokens{}, fmt.Errorf("%s: %w", op, err)
	}

	var t Tokens
	if err := json.Unmarshal(raw, &t); err != nil {
		return Tokens{}, fmt.Errorf("%s: decode: %w", op, err)
	}

	return t, nil
}

func (s *FileStore) Save(_ context.Context, t Tokens) error {
	const op = "client.tokens.FileStore.Save"

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%s: mkdir: %w", op, err)
	}

	// CreateTemp создаёт файл с правами 0600.
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%s: temp: %w", op, err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: encode: %w", op, err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: sync: %w", op, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: close: %w", op, err)
	}

	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return fmt.Errorf("%s: chmod: %w", op, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%s: rename: %w", op, err)
	}

	return nil
}

func (s *FileStore) Clear(_ context.Context) error {
	const op = "client.tokens.FileStore.Clear"

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
