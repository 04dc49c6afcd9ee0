package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"StockDash/internal/domain/models"
	drepo "StockDash/internal/domain/repository"
)

// RedisStore is the shared connection behind the per-user stores. Watchlists
// and notifications live in one hash per user keyed by row ID; settings are
// a single JSON string. All writes are whole-row replacements.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects and pings to fail fast on a bad address.
func NewRedisStore(addr, password string, db int, prefix string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	if prefix == "" {
		prefix = "stockdash"
	}
	return &RedisStore{client: client, prefix: prefix}, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Watchlists returns the watchlist view of the store.
func (s *RedisStore) Watchlists() *RedisWatchlists { return &RedisWatchlists{s} }

// Notifications returns the notification view of the store.
func (s *RedisStore) Notifications() *RedisNotifications { return &RedisNotifications{s} }

// Settings returns the settings view of the store.
func (s *RedisStore) Settings() *RedisSettings { return &RedisSettings{s} }

func (s *RedisStore) watchlistKey(userID string) string {
	return fmt.Sprintf("%s:wl:%s", s.prefix, userID)
}

func (s *RedisStore) notificationKey(userID string) string {
	return fmt.Sprintf("%s:nt:%s", s.prefix, userID)
}

func (s *RedisStore) settingsKey(userID string) string {
	return fmt.Sprintf("%s:st:%s", s.prefix, userID)
}

// RedisWatchlists implements WatchlistStore.
type RedisWatchlists struct {
	*RedisStore
}

var _ drepo.WatchlistStore = (*RedisWatchlists)(nil)

func (s *RedisWatchlists) List(ctx context.Context, userID string) ([]models.Watchlist, error) {
	rows, err := s.client.HGetAll(ctx, s.watchlistKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list watchlists: %w", err)
	}

	lists := make([]models.Watchlist, 0, len(rows))
	for _, raw := range rows {
		var w models.Watchlist
		if err := json.Unmarshal([]byte(raw), &w); err != nil {
			continue
		}
		if w.Items == nil {
			w.Items = []models.WatchlistItem{}
		}
		lists = append(lists, w)
	}
	sort.Slice(lists, func(i, j int) bool {
		return lists[i].CreatedAt.Before(lists[j].CreatedAt)
	})
	return lists, nil
}

func (s *RedisWatchlists) Create(ctx context.Context, userID string, w *models.Watchlist) error {
	return s.put(ctx, userID, w)
}

func (s *RedisWatchlists) Rename(ctx context.Context, userID, id, name string) error {
	w, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	w.Name = name
	return s.put(ctx, userID, w)
}

func (s *RedisWatchlists) Delete(ctx context.Context, userID, id string) error {
	n, err := s.client.HDel(ctx, s.watchlistKey(userID), id).Result()
	if err != nil {
		return fmt.Errorf("delete watchlist: %w", err)
	}
	if n == 0 {
		return drepo.ErrNotFound
	}
	return nil
}

func (s *RedisWatchlists) AddItem(ctx context.Context, userID, watchlistID string, item models.WatchlistItem) error {
	w, err := s.Get(ctx, userID, watchlistID)
	if err != nil {
		return err
	}
	w.Items = append(w.Items, item)
	return s.put(ctx, userID, w)
}

func (s *RedisWatchlists) RemoveItem(ctx context.Context, userID, watchlistID, itemID string) error {
	w, err := s.Get(ctx, userID, watchlistID)
	if err != nil {
		return err
	}
	kept := w.Items[:0]
	found := false
	for _, it := range w.Items {
		if it.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return drepo.ErrNotFound
	}
	w.Items = kept
	return s.put(ctx, userID, w)
}

// Get returns one watchlist row, or ErrNotFound.
func (s *RedisWatchlists) Get(ctx context.Context, userID, id string) (*models.Watchlist, error) {
	raw, err := s.client.HGet(ctx, s.watchlistKey(userID), id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, drepo.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get watchlist: %w", err)
	}
	var w models.Watchlist
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return nil, fmt.Errorf("decode watchlist: %w", err)
	}
	return &w, nil
}

func (s *RedisWatchlists) put(ctx context.Context, userID string, w *models.Watchlist) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("encode watchlist: %w", err)
	}
	if err := s.client.HSet(ctx, s.watchlistKey(userID), w.ID, data).Err(); err != nil {
		return fmt.Errorf("store watchlist: %w", err)
	}
	return nil
}

// RedisNotifications implements NotificationStore.
type RedisNotifications struct {
	*RedisStore
}

var _ drepo.NotificationStore = (*RedisNotifications)(nil)

func (s *RedisNotifications) List(ctx context.Context, userID string) ([]models.Notification, error) {
	rows, err := s.client.HGetAll(ctx, s.notificationKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	out := make([]models.Notification, 0, len(rows))
	for _, raw := range rows {
		var n models.Notification
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			continue
		}
		out = append(out, n)
	}
	// newest first
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *RedisNotifications) Add(ctx context.Context, userID string, n models.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}
	if err := s.client.HSet(ctx, s.notificationKey(userID), n.ID, data).Err(); err != nil {
		return fmt.Errorf("store notification: %w", err)
	}
	return nil
}

func (s *RedisNotifications) MarkRead(ctx context.Context, userID, id string) error {
	raw, err := s.client.HGet(ctx, s.notificationKey(userID), id).Result()
	if errors.Is(err, redis.Nil) {
		return drepo.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get notification: %w", err)
	}
	var n models.Notification
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		return fmt.Errorf("decode notification: %w", err)
	}
	n.Read = true
	return s.Add(ctx, userID, n)
}

func (s *RedisNotifications) MarkAllRead(ctx context.Context, userID string) error {
	list, err := s.List(ctx, userID)
	if err != nil {
		return err
	}
	for _, n := range list {
		if n.Read {
			continue
		}
		n.Read = true
		if err := s.Add(ctx, userID, n); err != nil {
			return err
		}
	}
	return nil
}

func (s *RedisNotifications) Delete(ctx context.Context, userID, id string) error {
	n, err := s.client.HDel(ctx, s.notificationKey(userID), id).Result()
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	if n == 0 {
		return drepo.ErrNotFound
	}
	return nil
}

func (s *RedisNotifications) DeleteAll(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, s.notificationKey(userID)).Err(); err != nil {
		return fmt.Errorf("clear notifications: %w", err)
	}
	return nil
}

// RedisSettings implements SettingsStore.
type RedisSettings struct {
	*RedisStore
}

var _ drepo.SettingsStore = (*RedisSettings)(nil)

func (s *RedisSettings) Get(ctx context.Context, userID string) (*models.UserSettings, error) {
	raw, err := s.client.Get(ctx, s.settingsKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	var settings models.UserSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &settings, nil
}

func (s *RedisSettings) Update(ctx context.Context, userID string, settings *models.UserSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.client.Set(ctx, s.settingsKey(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("store settings: %w", err)
	}
	return nil
}
