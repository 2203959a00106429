package realtime

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
)

const natsNamespace = "hirechat."

// NATSBroker fans events out through NATS subjects
// "hirechat.room.<id>" and "hirechat.user.<id>".
type NATSBroker struct {
	nc *nats.Conn
}

func NewNATSBroker(url string) (*NATSBroker, error) {
	nc, err := nats.Connect(url,
		nats.Name("hirechat"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}

	return &NATSBroker{nc: nc}, nil
}

func (b *NATSBroker) Publish(ctx context.Context, channel string, payload []byte) error {
	if err := b.nc.Publish(natsNamespace+channel, payload); err != nil {
		return fmt.Errorf("nats publish: %w", err)
	}
	return nil
}

func (b *NATSBroker) Subscribe(ctx context.Context, handler func(channel string, payload []byte)) error {
	sub, err := b.nc.Subscribe(natsNamespace+">", func(msg *nats.Msg) {
		channel, ok := trimNamespace(msg.Subject, natsNamespace)
		if !ok {
			return
		}
		handler(channel, msg.Data)
	})
	if err != nil {
		return fmt.Errorf("nats subscribe: %w", err)
	}

	if err := b.nc.Flush(); err != nil {
		_ = sub.Unsubscribe()
		return fmt.Errorf("nats flush subscription: %w", err)
	}

	go func() {
		<-ctx.Done()
		_ = sub.Unsubscribe()
	}()

	return nil
}

func (b *NATSBroker) Close() error {
	return b.nc.Drain()
}
