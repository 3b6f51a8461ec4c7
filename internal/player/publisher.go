package player

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const EventsChannel = "players"

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher fans player events out to every server instance through a
// redis channel.
type RedisPublisher struct {
	db  *redis.Client
	log *zap.SugaredLogger
}

func NewRedisPublisher(db *redis.Client, log *zap.SugaredLogger) *RedisPublisher {
	return &RedisPublisher{db: db, log: log}
}

func (r *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return r.db.Publish(ctx, EventsChannel, payload).Err()
}

// Subscribe delivers every event published on the channel to handle until
// ctx is cancelled. It returns once the subscription is confirmed.
func (r *RedisPublisher) Subscribe(ctx context.Context, handle func(Event)) error {
	sub := r.db.Subscribe(ctx, EventsChannel)
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return fmt.Errorf("error subscribing %w", err)
	}

	ch := sub.Channel()
	r.log.Infow("subscribed to player events", "channel", EventsChannel)
	go func() {
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					r.log.Warnw("dropping malformed player event", "error", err)
					continue
				}
				handle(event)
			}
		}
	}()
	return nil
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
