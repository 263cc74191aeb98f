package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeToken struct {
	done chan struct{}
	err  error
}

func newFakeToken(err error, complete bool) *fakeToken {
	t := &fakeToken{done: make(chan struct{}), err: err}
	if complete {
		close(t.done)
	}
	return t
}

func (t *fakeToken) Wait() bool                       { <-t.done; return true }
func (t *fakeToken) WaitTimeout(d time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{}            { return t.done }
func (t *fakeToken) Error() error                     { return t.err }

type fakeClient struct {
	token    *fakeToken
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.topic, c.qos, c.retained = topic, qos, retained
	c.payload, _ = payload.([]byte)
	return c.token
}

func TestMQTTEventPublisher(t *testing.T) {
	event := entities.OrderCreatedEvent{
		ID:            "OS-2025-0A1B2C3D",
		Client:        "Pizzaria Bella",
		Service:       "Instalação PDV",
		LastUpdatedBy: "Ana",
		Date:          time.Date(2025, 5, 2, 12, 0, 0, 0, time.UTC),
	}

	t.Run("publishes json event", func(t *testing.T) {
		client := &fakeClient{token: newFakeToken(nil, true)}
		p := NewMQTTEventPublisher(client, "osmaster/orders/created", 1)

		require.NoError(t, p.PublishOrderCreated(context.Background(), event))
		assert.Equal(t, "osmaster/orders/created", client.topic)
		assert.Equal(t, byte(1), client.qos)
		assert.False(t, client.retained)

		var msg map[string]any
		require.NoError(t, json.Unmarshal(client.payload, &msg))
		assert.Equal(t, "order.created", msg["type"])
		assert.Equal(t, "OS-2025-0A1B2C3D", msg["id"])
		assert.Equal(t, "Ana", msg["lastUpdatedBy"])
	})

	t.Run("broker error", func(t *testing.T) {
		client := &fakeClient{token: newFakeToken(errors.New("not connected"), true)}
		p := NewMQTTEventPublisher(client, "t", 0)

		err := p.PublishOrderCreated(context.Background(), event)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not connected")
	})

	t.Run("timeout", func(t *testing.T) {
		client := &fakeClient{token: newFakeToken(nil, false)}
		p := NewMQTTEventPublisher(client, "t", 0)
		p.timeout = 10 * time.Millisecond

		require.Error(t, p.PublishOrderCreated(context.Background(), event))
	})

	t.Run("context cancelled", func(t *testing.T) {
		client := &fakeClient{token: newFakeToken(nil, false)}
		p := NewMQTTEventPublisher(client, "t", 0)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.ErrorIs(t, p.PublishOrderCreated(ctx, event), context.Canceled)
	})
}

func TestNoopPublisher(t *testing.T) {
	require.NoError(t, NoopPublisher{}.PublishOrderCreated(context.Background(), entities.OrderCreatedEvent{}))
}

func TestLogResetNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := NewLogResetNotifier(zap.New(core))

	require.NoError(t, n.NotifyPasswordReset(context.Background(), "ana@example.com", "tok-1"))
	entries := logs.FilterMessage("password reset requested").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "tok-1", entries[0].ContextMap()["token"])
}
