package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"assistec_os/internal/domain/entities"
	"assistec_os/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
)

// OrderStatusSubject is where status-changed events are published. Downstream
// consumers (client messaging, conversion tracking) subscribe to it; this
// service never delivers notifications itself.
const OrderStatusSubject = "orders.status"

type NATSOrderEventPublisher struct {
	conn *nats.Conn
}

var _ interfaces.IOrderEventPublisher = (*NATSOrderEventPublisher)(nil)

func NewNATSOrderEventPublisher(url string) (*NATSOrderEventPublisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSOrderEventPublisher{conn: conn}, nil
}

func (p *NATSOrderEventPublisher) PublishStatusChanged(_ context.Context, ev entities.StatusChangedEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.conn.Publish(OrderStatusSubject, payload)
}

func (p *NATSOrderEventPublisher) Close() error {
	p.conn.Close()
	return nil
}
