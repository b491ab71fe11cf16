// querycache — клиентский кэш запросов с оптимистичными мутациями.
//
// Записи адресуются ключами-путями (Key) и сопоставляются по префиксу.
// У записи есть fetcher: устаревшая или инвалидированная запись
// перезапрашивается через него. Одновременные запросы одного ключа
// схлопываются (singleflight). Cancel прерывает текущую загрузку ключа
// и отбрасывает её результат, чтобы она не перетёрла оптимистичную запись.
package querycache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// DefaultStaleTime — сколько данные считаются свежими без перезапроса.
const DefaultStaleTime = 30 * time.Second

var (
	// ErrNoFetcher — запись нельзя загрузить: fetcher не зарегистрирован.
	ErrNoFetcher = errors.New("querycache: no fetcher for key")
	// ErrCanceled — загрузка отменена через Cancel, а данных в записи нет.
	ErrCanceled = errors.New("querycache: fetch canceled")
)

// Key — иерархический ключ записи, например ["likes","chirp",id].
type Key []string

// HasPrefix сообщает, начинается ли ключ с prefix.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}

	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}

	return true
}

func (k Key) String() string {
	return strings.Join(k, "/")
}

func (k Key) id() string {
	return strings.Join(k, "\x1f")
}

// Fetcher загружает данные записи.
type Fetcher func(ctx context.Context) (any, error)

type entry struct {
	key       Key
	data      any
	hasData   bool
	updatedAt time.Time
	stale     bool
	fetcher   Fetcher

	// gen растёт при каждой записи данных и при Cancel;
	// результат загрузки, начатой на другом gen, отбрасывается.
	gen    uint64
	cancel context.CancelFunc
}

// Cache безопасен для конкурентного использования.
type Cache struct {
	mu        sync.Mutex
	entries   map[string]*entry
	flight    singleflight.Group
	staleTime time.Duration
	now       func() time.Time
}

// Option настраивает Cache.
type Option func(*Cache)

func WithStaleTime(d time.Duration) Option {
	return func(c *Cache) {
		if d >= 0 {
			c.staleTime = d
		}
	}
}

// WithClock подменяет часы (для тестов).
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

func New(opts ...Option) *Cache {
	c := &Cache{
		entries:   make(map[string]*entry),
		staleTime: DefaultStaleTime,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// entryLocked возвращает запись ключа, создавая её при необходимости.
func (c *Cache) entryLocked(key Key) *entry {
	id := key.id()
	e, ok := c.entries[id]
	if !ok {
		e = &entry{key: append(Key(nil), key...)}
		c.entries[id] = e
	}

	return e
}

// Get возвращает свежие данные ключа или загружает их через fetch.
// fetch запоминается в записи и используется при инвалидации.
func (c *Cache) Get(ctx context.Context, key Key, fetch Fetcher) (any, error) {
	c.mu.Lock()
	e := c.entryLocked(key)
	if fetch != nil {
		e.fetcher = fetch
	}

	if e.hasData && !e.stale && c.now().Sub(e.updatedAt) < c.staleTime {
		data := e.data
		c.mu.Unlock()
		return data, nil
	}
	c.mu.Unlock()

	return c.fetch(ctx, key)
}

// Peek возвращает закэшированные данные без загрузки.
func (c *Cache) Peek(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.id()]
	if !ok || !e.hasData {
		return nil, false
	}

	return e.data, true
}

// Set записывает данные ключа. Идущая загрузка этого ключа будет отброшена.
func (c *Cache) Set(key Key, data any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.storeLocked(c.entryLocked(key), data)
}

func (c *Cache) storeLocked(e *entry, data any) {
	e.data = data
	e.hasData = true
	e.updatedAt = c.now()
	e.stale = false
	e.gen++
}

// Update применяет fn ко всем записям с данными, ключ которых начинается с prefix.
// fn возвращает новое значение и признак изменения; возвращается число изменённых записей.
func (c *Cache) Update(prefix Key, fn func(key Key, data any) (any, bool)) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, e := range c.entries {
		if !e.hasData || !e.key.HasPrefix(prefix) {
			continue
		}

		if next, changed := fn(e.key, e.data); changed {
			c.storeLocked(e, next)
			n++
		}
	}

	return n
}

// Cancel прерывает текущую загрузку ключа; её результат не попадёт в кэш.
// Следующий fetch ключа уйдёт в сеть заново, а не присоединится к отменённому.
func (c *Cache) Cancel(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := key.id()
	c.flight.Forget(id)

	e, ok := c.entries[id]
	if !ok {
		return
	}

	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.gen++
}

// Invalidate помечает ключ устаревшим и сразу перезапрашивает его,
// если у записи есть fetcher. Отсутствующий ключ — не ошибка.
func (c *Cache) Invalidate(ctx context.Context, key Key) error {
	c.mu.Lock()
	e, ok := c.entries[key.id()]
	if !ok {
		c.mu.Unlock()
		return nil
	}
	e.stale = true
	hasFetcher := e.fetcher != nil
	c.mu.Unlock()

	if !hasFetcher {
		return nil
	}

	_, err := c.fetch(ctx, key)
	return err
}

// InvalidatePrefix помечает устаревшими все записи с префиксом и
// параллельно перезапрашивает те, у которых есть fetcher.
func (c *Cache) InvalidatePrefix(ctx context.Context, prefix Key) error {
	c.mu.Lock()
	var keys []Key
	for _, e := range c.entries {
		if !e.key.HasPrefix(prefix) {
			continue
		}

		e.stale = true
		if e.fetcher != nil {
			keys = append(keys, e.key)
		}
	}
	c.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	for _, key := range keys {
		g.Go(func() error {
			_, err := c.fetch(gctx, key)
			return err
		})
	}

	return g.Wait()
}

// Remove удаляет записи с префиксом, прерывая их загрузки.
func (c *Cache) Remove(prefix Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, e := range c.entries {
		if !e.key.HasPrefix(prefix) {
			continue
		}

		if e.cancel != nil {
			e.cancel()
		}
		c.flight.Forget(id)
		delete(c.entries, id)
	}
}

// fetch загружает ключ; одновременные вызовы разделяют одну загрузку.
// Ожидание прерывается ctx вызывающего, сама загрузка живёт до Cancel.
func (c *Cache) fetch(ctx context.Context, key Key) (any, error) {
	const op = "querycache.fetch"

	id := key.id()

	ch := c.flight.DoChan(id, func() (any, error) {
		c.mu.Lock()
		e := c.entryLocked(key)
		fetcher := e.fetcher
		if fetcher == nil {
			c.mu.Unlock()
			return nil, fmt.Errorf("%s: %s: %w", op, key, ErrNoFetcher)
		}

		fctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		e.cancel = cancel
		gen := e.gen
		c.mu.Unlock()

		defer cancel()

		data, err := fetcher(fctx)

		c.mu.Lock()
		defer c.mu.Unlock()

		// Запись могли удалить или заменить, пока шла загрузка.
		current, alive := c.entries[id]
		if !alive || current != e || e.gen != gen {
			if alive && current.hasData {
				return current.data, nil
			}

			return nil, fmt.Errorf("%s: %s: %w", op, key, ErrCanceled)
		}
		e.cancel = nil

		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", op, key, err)
		}

		c.storeLocked(e, data)
		return data, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}
