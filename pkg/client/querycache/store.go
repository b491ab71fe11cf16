package querycache

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/pribylovaa/chirper/pkg/client"
	"github.com/pribylovaa/chirper/pkg/log"
)

// API — часть клиента chirper, которой пользуется Store.
type API interface {
	Feed(ctx context.Context, page client.Page) (*client.ChirpList, error)
	ChirpsByProfile(ctx context.Context, profileID uuid.UUID, page client.Page) (*client.ChirpList, error)
	CreateChirp(ctx context.Context, content string) (*client.Chirp, error)
	DeleteChirp(ctx context.Context, id uuid.UUID) error
	ToggleLike(ctx context.Context, chirpID uuid.UUID) (*client.LikeToggle, error)
	Unlike(ctx context.Context, chirpID uuid.UUID) (*client.LikeToggle, error)
	LikeStats(ctx context.Context, chirpID uuid.UUID) (*client.LikeStats, error)
}

// ChirpsPrefix — префикс всех списков записей.
var ChirpsPrefix = Key{"chirps"}

func StatsKey(chirpID uuid.UUID) Key {
	return Key{"likes", "chirp", chirpID.String()}
}

func FeedKey(page client.Page) Key {
	return Key{"chirps", "feed", strconv.Itoa(page.Limit), strconv.Itoa(page.Offset)}
}

func ProfileChirpsKey(profileID uuid.UUID, page client.Page) Key {
	return Key{"chirps", "profile", profileID.String(), strconv.Itoa(page.Limit), strconv.Itoa(page.Offset)}
}

// Store — типизированный фасад над Cache и API.
// Значения в кэше неизменяемы: мутации всегда кладут копию.
type Store struct {
	api   API
	cache *Cache
}

func NewStore(api API, cache *Cache) *Store {
	if cache == nil {
		cache = New()
	}

	return &Store{api: api, cache: cache}
}

// Cache даёт доступ к нижележащему кэшу.
func (s *Store) Cache() *Cache {
	return s.cache
}

func (s *Store) LikeStats(ctx context.Context, chirpID uuid.UUID) (*client.LikeStats, error) {
	v, err := s.cache.Get(ctx, StatsKey(chirpID), func(ctx context.Context) (any, error) {
		return s.api.LikeStats(ctx, chirpID)
	})
	if err != nil {
		return nil, err
	}

	return v.(*client.LikeStats), nil
}

func (s *Store) Feed(ctx context.Context, page client.Page) (*client.ChirpList, error) {
	v, err := s.cache.Get(ctx, FeedKey(page), func(ctx context.Context) (any, error) {
		return s.api.Feed(ctx, page)
	})
	if err != nil {
		return nil, err
	}

	return v.(*client.ChirpList), nil
}

func (s *Store) ProfileChirps(ctx context.Context, profileID uuid.UUID, page client.Page) (*client.ChirpList, error) {
	v, err := s.cache.Get(ctx, ProfileChirpsKey(profileID, page), func(ctx context.Context) (any, error) {
		return s.api.ChirpsByProfile(ctx, profileID, page)
	})
	if err != nil {
		return nil, err
	}

	return v.(*client.ChirpList), nil
}

// CreateChirp создаёт запись и инвалидирует все списки записей.
func (s *Store) CreateChirp(ctx context.Context, content string) (*client.Chirp, error) {
	const op = "querycache.store.CreateChirp"

	chirp, err := s.api.CreateChirp(ctx, content)
	if err != nil {
		return nil, err
	}

	if err := s.cache.InvalidatePrefix(ctx, ChirpsPrefix); err != nil {
		log.From(ctx).Warn("cache_refetch_failed", slog.String("op", op), slog.String("err", err.Error()))
	}

	return chirp, nil
}

// DeleteChirp удаляет запись, выбрасывает её статистику и инвалидирует списки.
func (s *Store) DeleteChirp(ctx context.Context, id uuid.UUID) error {
	const op = "querycache.store.DeleteChirp"

	if err := s.api.DeleteChirp(ctx, id); err != nil {
		return err
	}

	s.cache.Remove(StatsKey(id))

	if err := s.cache.InvalidatePrefix(ctx, ChirpsPrefix); err != nil {
		log.From(ctx).Warn("cache_refetch_failed", slog.String("op", op), slog.String("err", err.Error()))
	}

	return nil
}

// Like оптимистично ставит лайк: +1 и liked=true в статистике и во всех
// списках с этой записью, затем сетевой toggle. При ошибке применяется
// обратная мутация. В конце статистика всегда перезапрашивается.
func (s *Store) Like(ctx context.Context, chirpID uuid.UUID) (*client.LikeToggle, error) {
	return s.mutateLike(ctx, chirpID, 1, true, s.api.ToggleLike)
}

// Unlike симметричен Like: max(0,n-1) и liked=false, откат +1 и liked=true.
func (s *Store) Unlike(ctx context.Context, chirpID uuid.UUID) (*client.LikeToggle, error) {
	return s.mutateLike(ctx, chirpID, -1, false, s.api.Unlike)
}

func (s *Store) mutateLike(
	ctx context.Context,
	chirpID uuid.UUID,
	delta int64,
	liked bool,
	call func(context.Context, uuid.UUID) (*client.LikeToggle, error),
) (*client.LikeToggle, error) {
	const op = "querycache.store.mutateLike"

	key := StatsKey(chirpID)

	// Идущий перезапрос не должен перетереть оптимистичное значение.
	s.cache.Cancel(key)
	s.applyLike(chirpID, delta, liked)

	res, err := call(ctx, chirpID)
	if err != nil {
		s.applyLike(chirpID, -delta, !liked)
		log.From(ctx).Warn("optimistic_like_rolled_back",
			slog.String("op", op),
			slog.String("chirp_id", chirpID.String()),
			slog.String("err", err.Error()),
		)
	}

	// Сверка по сети обязательна: копии в статистике и в списках могли разойтись.
	if ierr := s.cache.Invalidate(context.WithoutCancel(ctx), key); ierr != nil {
		log.From(ctx).Warn("cache_refetch_failed",
			slog.String("op", op),
			slog.String("key", key.String()),
			slog.String("err", ierr.Error()),
		)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return res, nil
}

// applyLike сдвигает счётчик на delta (не ниже нуля) и выставляет liked
// в записи статистики и во всех закэшированных списках с этой записью.
func (s *Store) applyLike(chirpID uuid.UUID, delta int64, liked bool) {
	s.cache.Update(StatsKey(chirpID), func(_ Key, data any) (any, bool) {
		stats, ok := data.(*client.LikeStats)
		if !ok || stats == nil {
			return nil, false
		}

		next := *stats
		next.LikeCount = shift(next.LikeCount, delta)
		next.IsLiked = liked

		return &next, true
	})

	s.cache.Update(ChirpsPrefix, func(_ Key, data any) (any, bool) {
		list, ok := data.(*client.ChirpList)
		if !ok || list == nil {
			return nil, false
		}

		idx := -1
		for i := range list.Chirps {
			if list.Chirps[i].ID == chirpID {
				idx = i
				break
			}
		}

		if idx < 0 {
			return nil, false
		}

		next := *list
		next.Chirps = append([]client.Chirp(nil), list.Chirps...)
		next.Chirps[idx].LikeCount = shift(next.Chirps[idx].LikeCount, delta)
		next.Chirps[idx].IsLiked = liked

		return &next, true
	})
}

func shift(n, delta int64) int64 {
	if n+delta < 0 {
		return 0
	}

	return n + delta
}
