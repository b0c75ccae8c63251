package rabbitmq

import (
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

var ErrPublishTimeout = errors.New("publish timed out")

// IPublisher sends raw payloads to a topic.
type IPublisher interface {
	PublishTo(topic string, qos byte, payload []byte) error
	Status() string
	Close()
}

// BreakerSettings tunes the circuit breaker around publishing.
type BreakerSettings struct {
	Name         string
	Failures     int           // consecutive failures that open the breaker
	OpenTimeout  time.Duration // time spent open before a half-open probe
	Interval     time.Duration // closed-state counter reset period, 0 = never
	PublishLimit time.Duration // max wait for a publish acknowledgement
}

func (s BreakerSettings) withDefaults() BreakerSettings {
	if s.Name == "" {
		s.Name = "mqtt-publisher"
	}
	if s.Failures <= 0 {
		s.Failures = 3
	}
	if s.OpenTimeout <= 0 {
		s.OpenTimeout = 30 * time.Second
	}
	if s.PublishLimit <= 0 {
		s.PublishLimit = 2 * time.Second
	}
	return s
}

// Publisher publishes through a circuit breaker so a dead broker costs one fast error
// per call instead of a full timeout.
type Publisher struct {
	client  mqtt.Client
	breaker *gobreaker.CircuitBreaker
	limit   time.Duration
	logger  *zap.Logger
}

var _ IPublisher = (*Publisher)(nil)

func NewPublisher(client mqtt.Client, st BreakerSettings, logger *zap.Logger) *Publisher {
	st = st.withDefaults()
	fails := uint32(st.Failures)
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     st.Name,
		Interval: st.Interval,
		Timeout:  st.OpenTimeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= fails
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("mqtt: breaker state change", zap.String("breaker", name),
				zap.String("from", from.String()), zap.String("to", to.String()))
		},
	})
	return &Publisher{client: client, breaker: cb, limit: st.PublishLimit, logger: logger}
}

// State reports the breaker state.
func (p *Publisher) State() gobreaker.State {
	return p.breaker.State()
}

// Bus states reported by Status.
const (
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"
	StatusBreakerOpen  = "breaker open"
)

func (p *Publisher) Status() string {
	if !p.client.IsConnectionOpen() {
		return StatusDisconnected
	}
	if p.breaker.State() == gobreaker.StateOpen {
		return StatusBreakerOpen
	}
	return StatusConnected
}

func (p *Publisher) PublishTo(topic string, qos byte, payload []byte) error {
	_, err := p.breaker.Execute(func() (interface{}, error) {
		token := p.client.Publish(topic, qos, false, payload)
		if !token.WaitTimeout(p.limit) {
			return nil, ErrPublishTimeout
		}
		return nil, token.Error()
	})
	if err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	p.logger.Debug("mqtt: published", zap.String("topic", topic), zap.Uint8("qos", qos), zap.Int("bytes", len(payload)))
	return nil
}

// Close disconnects the client.
func (p *Publisher) Close() {
	CloseRabbitMQConn(p.client, p.logger)
}
