package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"employee-backend/domain"
)

// RedisConfig espelha as variáveis REDIS_* do ambiente.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int

	// OpTimeout limita cada operação individual; um substrato fora do ar
	// deve falhar rápido, nunca pendurar a requisição.
	OpTimeout time.Duration
}

type Redis struct {
	rdb *redis.Client
	log *logrus.Entry

	opTimeout time.Duration
}

func NewRedis(cfg RedisConfig, log *logrus.Logger) *Redis {
	if cfg.Addr == "" {
		cfg.Addr = "localhost:6379"
	}
	if cfg.OpTimeout <= 0 {
		cfg.OpTimeout = 2 * time.Second
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Redis{
		rdb:       rdb,
		log:       log.WithField("component", "cache"),
		opTimeout: cfg.OpTimeout,
	}
}

func (c *Redis) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.opTimeout)
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}

func (c *Redis) Ping(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return storeErr(err)
	}
	return nil
}

func (c *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	v, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, storeErr(err)
	}
	return v, true, nil
}

func (c *Redis) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	if ttl < 0 {
		ttl = 0
	}
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return storeErr(err)
	}
	return nil
}

func (c *Redis) Incr(ctx context.Context, key string) (int64, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}

func (c *Redis) Expire(ctx context.Context, key string, ttl time.Duration) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	if err := c.rdb.Expire(ctx, key, ttl).Err(); err != nil {
		return storeErr(err)
	}
	return nil
}

func (c *Redis) Publish(ctx context.Context, channel, payload string) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	if err := c.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		return storeErr(err)
	}
	return nil
}

// Subscribe confirma a inscrição antes de retornar, para o chamador saber
// que mensagens publicadas depois daqui serão vistas. O loop de recepção
// roda até o ctx encerrar; erros de parse/handler são problema do handler.
func (c *Redis) Subscribe(ctx context.Context, handler Handler, channels ...string) error {
	ps := c.rdb.Subscribe(ctx, channels...)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return storeErr(err)
	}

	msgs := ps.Channel()
	go func() {
		defer func() { _ = ps.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-msgs:
				if !ok {
					c.log.Warn("subscription channel closed")
					return
				}
				handler(m.Channel, m.Payload)
			}
		}
	}()
	return nil
}

func (c *Redis) Close() error {
	return c.rdb.Close()
}
