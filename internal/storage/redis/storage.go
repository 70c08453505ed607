package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/inboxd/internal/model"
	"github.com/mcoot/inboxd/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = DefaultConfig().ConnectTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) LoadPlayerByName(ctx context.Context, name model.PlayerName, dst *model.Player) error {
	data, err := s.client.Get(ctx, playerKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.ErrPlayerNotFound
		}
		return err
	}

	// Decode into a local so a bad payload leaves dst untouched
	var loaded model.Player
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("decode player %s: %w", name, err)
	}
	dst.CopyFrom(&loaded)
	return nil
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	// Save + index update in one transaction
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, playerKey(player.Name), data, 0)
	pipe.SAdd(ctx, playersIndexKey(), string(player.Name))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) PlayerExists(ctx context.Context, name model.PlayerName) (bool, error) {
	exists, err := s.client.Exists(ctx, playerKey(name)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, name model.PlayerName) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, playerKey(name))
	pipe.SRem(ctx, playersIndexKey(), string(name))
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) ListPlayers(ctx context.Context) ([]model.PlayerName, error) {
	members, err := s.client.SMembers(ctx, playersIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	sort.Strings(members)
	names := make([]model.PlayerName, len(members))
	for i, m := range members {
		names[i] = model.PlayerName(m)
	}
	return names, nil
}

// Item catalog operations

func (s *Storage) SaveItemType(ctx context.Context, itemType *model.ItemType) error {
	data, err := json.Marshal(itemType)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, itemTypeKey(itemType.ID), data, 0)
	pipe.SAdd(ctx, itemTypesIndexKey(), strconv.Itoa(int(itemType.ID)))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetItemType(ctx context.Context, id model.ItemTypeID) (*model.ItemType, error) {
	data, err := s.client.Get(ctx, itemTypeKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrItemTypeNotFound
		}
		return nil, err
	}

	var itemType model.ItemType
	if err := json.Unmarshal(data, &itemType); err != nil {
		return nil, err
	}
	return &itemType, nil
}

func (s *Storage) ListItemTypes(ctx context.Context) ([]*model.ItemType, error) {
	members, err := s.client.SMembers(ctx, itemTypesIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return []*model.ItemType{}, nil
	}

	keys := make([]string, 0, len(members))
	for _, m := range members {
		id, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		keys = append(keys, itemTypeKey(model.ItemTypeID(id)))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	result := make([]*model.ItemType, 0, len(values))
	for _, v := range values {
		str, ok := v.(string)
		if !ok {
			continue // Index entry without a value
		}
		var itemType model.ItemType
		if err := json.Unmarshal([]byte(str), &itemType); err != nil {
			return nil, err
		}
		result = append(result, &itemType)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
