package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexferreiraaf/osmaster/internal/config"
	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase/interfaces"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const defaultPublishTimeout = 5 * time.Second

// Publisher is the part of mqtt.Client used to emit events.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// MQTTEventPublisher sends order.created events to the notification topic.
// Desktop clients subscribe to it and skip events they authored.
type MQTTEventPublisher struct {
	client  Publisher
	topic   string
	qos     byte
	timeout time.Duration
}

var _ interfaces.IEventPublisher = (*MQTTEventPublisher)(nil)

type orderCreatedMessage struct {
	Type string `json:"type"`
	entities.OrderCreatedEvent
}

func NewMQTTEventPublisher(client Publisher, topic string, qos byte) *MQTTEventPublisher {
	return &MQTTEventPublisher{client: client, topic: topic, qos: qos, timeout: defaultPublishTimeout}
}

// ConnectMQTT dials the broker with auto reconnect enabled.
func ConnectMQTT(cfg config.MQTTConfig) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return client, nil
}

func (p *MQTTEventPublisher) PublishOrderCreated(ctx context.Context, e entities.OrderCreatedEvent) error {
	payload, err := json.Marshal(orderCreatedMessage{Type: "order.created", OrderCreatedEvent: e})
	if err != nil {
		return err
	}

	token := p.client.Publish(p.topic, p.qos, false, payload)
	timer := time.NewTimer(p.timeout)
	defer timer.Stop()

	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			return fmt.Errorf("failed to publish to topic %s: %w", p.topic, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return errors.New("mqtt publish timed out")
	}
}

// NoopPublisher is used when the notification feed is disabled.
type NoopPublisher struct{}

var _ interfaces.IEventPublisher = NoopPublisher{}

func (NoopPublisher) PublishOrderCreated(context.Context, entities.OrderCreatedEvent) error {
	return nil
}
