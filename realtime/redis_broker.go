package realtime

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisNamespace = "hirechat:"

// RedisBroker fans events out through Redis pub/sub channels
// "hirechat:room.<id>" and "hirechat:user.<id>".
type RedisBroker struct {
	rdb *redis.Client
}

func NewRedisBroker(ctx context.Context, url string) (*RedisBroker, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisBroker{rdb: rdb}, nil
}

func (b *RedisBroker) Publish(ctx context.Context, channel string, payload []byte) error {
	if err := b.rdb.Publish(ctx, redisNamespace+channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

func (b *RedisBroker) Subscribe(ctx context.Context, handler func(channel string, payload []byte)) error {
	ps := b.rdb.PSubscribe(ctx, redisNamespace+"*")
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return fmt.Errorf("redis psubscribe: %w", err)
	}

	ch := ps.Channel()
	go func() {
		<-ctx.Done()
		_ = ps.Close()
	}()

	go func() {
		for msg := range ch {
			channel, ok := trimNamespace(msg.Channel, redisNamespace)
			if !ok {
				continue
			}
			handler(channel, []byte(msg.Payload))
		}
	}()

	return nil
}

func (b *RedisBroker) Close() error {
	return b.rdb.Close()
}
