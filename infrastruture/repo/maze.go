// Package repo provides Redis-backed storage for built maze records.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/mazegen-api/domain"
	"github.com/beka-birhanu/mazegen-api/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const mazeKeyFmt = "maze:id:%s"

// RedisMazeRepo keeps maze records in Redis under TTL'd keys. Records
// expire on their own; nothing is ever written to disk by this service.
type RedisMazeRepo struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisMazeRepo initializes a RedisMazeRepo with the provided Redis
// client and record TTL.
func NewRedisMazeRepo(client *redis.Client, ttlSeconds int) (*RedisMazeRepo, error) {
	if client == nil {
		return nil, errors.New("redis client must not be nil")
	}
	if ttlSeconds <= 0 {
		return nil, errors.New("record TTL must be positive")
	}

	repo := &RedisMazeRepo{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	repo.locker = redsync.New(pool)
	return repo, nil
}

// Save stores a maze record under its ID with the configured TTL.
func (r *RedisMazeRepo) Save(ctx context.Context, record *dmn.Maze) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding maze record: %w", err)
	}

	return r.client.Set(ctx, r.idKey(record.ID), data, r.ttl).Err()
}

// ByID retrieves a maze record by its unique ID. Expired and unknown IDs
// both report ErrMazeNotFound.
func (r *RedisMazeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error) {
	return r.get(ctx, r.idKey(id))
}

// GetOrSet retrieves the record stored under a shared key, building and
// storing it when absent. A distributed mutex guards the build so that
// concurrent instances racing on a cold key produce a single record.
func (r *RedisMazeRepo) GetOrSet(ctx context.Context, key string, build func() (*dmn.Maze, error)) (*dmn.Maze, error) {
	if record, err := r.get(ctx, key); err == nil {
		return record, nil
	} else if !errors.Is(err, i.ErrMazeNotFound) {
		return nil, err
	}

	mutex := r.locker.NewMutex(key + ":build_lock")
	if err := mutex.Lock(); err != nil {
		return nil, err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	// Another instance may have built the record while we waited.
	if record, err := r.get(ctx, key); err == nil {
		return record, nil
	} else if !errors.Is(err, i.ErrMazeNotFound) {
		return nil, err
	}

	record, err := build()
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encoding maze record: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, r.ttl)
	pipe.Set(ctx, r.idKey(record.ID), data, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	return record, nil
}

func (r *RedisMazeRepo) get(ctx context.Context, key string) (*dmn.Maze, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, i.ErrMazeNotFound
		}
		return nil, err
	}

	var record dmn.Maze
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decoding maze record: %w", err)
	}
	return &record, nil
}

func (r *RedisMazeRepo) idKey(id uuid.UUID) string {
	return fmt.Sprintf(mazeKeyFmt, id)
}
