package redis_repo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Web-Master-pro-max/ecommerce-project/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

type SessionRepoError error

var ErrSessionNotFound SessionRepoError = errors.New("session not found")

// SessionRepo session以hash存在redis，key帶TTL，過期即登出
type SessionRepo struct {
	SessionCache *redis.Client
	ttl          time.Duration
}

func NewSessionRepo(sessionCache *redis.Client, ttl time.Duration) *SessionRepo {
	return &SessionRepo{SessionCache: sessionCache, ttl: ttl}
}

func generateSessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func (r *SessionRepo) Create(ctx context.Context, token string, actor *model.Actor) error {
	key := generateSessionKey(token)

	// 使用 Lua 腳本確保寫入與TTL設置的原子性
	luaScript := `
		redis.call('HSET', KEYS[1], 'user_id', ARGV[1], 'role', ARGV[2])
		redis.call('PEXPIRE', KEYS[1], ARGV[3])
		return 1
	`
	_, err := r.SessionCache.Eval(ctx, luaScript, []string{key},
		actor.UserID, actor.Role, r.ttl.Milliseconds()).Result()
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepo) Get(ctx context.Context, token string) (*model.Actor, error) {
	key := generateSessionKey(token)

	fields, err := r.SessionCache.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrSessionNotFound
	}

	userID, err := strconv.ParseUint(fields["user_id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id in session %s: %w", token, err)
	}

	return &model.Actor{
		UserID: uint(userID),
		Role:   fields["role"],
	}, nil
}

func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	key := generateSessionKey(token)
	if err := r.SessionCache.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Refresh 滑動過期，活動中的session延長TTL
func (r *SessionRepo) Refresh(ctx context.Context, token string) error {
	key := generateSessionKey(token)
	ok, err := r.SessionCache.Expire(ctx, key, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to refresh session: %w", err)
	}
	if !ok {
		return ErrSessionNotFound
	}
	return nil
}
