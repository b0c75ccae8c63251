package rabbitmq

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

// RabbitMQConfig addresses the MQTT plugin of the broker.
type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	ClientID string

	MaxRetries     int           // connect attempts, default 5
	MaxElapsed     time.Duration // overall connect budget, default 10s
	InitialBackoff time.Duration // first retry delay, default 500ms
	ConnectTimeout time.Duration // per attempt, default 5s
}

func (c *RabbitMQConfig) withDefaults() RabbitMQConfig {
	out := *c
	if out.MaxRetries <= 0 {
		out.MaxRetries = 5
	}
	if out.MaxElapsed <= 0 {
		out.MaxElapsed = 10 * time.Second
	}
	if out.InitialBackoff <= 0 {
		out.InitialBackoff = 500 * time.Millisecond
	}
	if out.ConnectTimeout <= 0 {
		out.ConnectTimeout = 5 * time.Second
	}
	return out
}

// BrokerURL is the tcp address of the broker.
func (c *RabbitMQConfig) BrokerURL() string {
	return fmt.Sprintf("tcp://%s:%d", c.Host, c.Port)
}

// newClient is swapped by tests.
var newClient = mqtt.NewClient

// NewRabbitMQConn connects with exponential backoff. The client is disconnected when ctx ends.
func NewRabbitMQConn(ctx context.Context, cfg *RabbitMQConfig, logger *zap.Logger) (mqtt.Client, error) {
	c := cfg.withDefaults()
	addr := c.BrokerURL()

	opts := mqtt.NewClientOptions()
	opts.AddBroker(addr)
	opts.SetUsername(c.User)
	opts.SetPassword(c.Password)
	opts.SetClientID(c.ClientID)
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(c.ConnectTimeout)

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.InitialBackoff
	bo.MaxElapsedTime = c.MaxElapsed

	var client mqtt.Client
	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		client = newClient(opts)
		token := client.Connect()
		if !token.WaitTimeout(c.ConnectTimeout) {
			logger.Warn("mqtt: connect timed out", zap.String("broker", addr), zap.Int("attempt", attempt))
			// stop the pending attempt before the next client is built
			client.Disconnect(0)
			return fmt.Errorf("connect to %s timed out", addr)
		}
		if err := token.Error(); err != nil {
			logger.Warn("mqtt: connect failed", zap.String("broker", addr), zap.Int("attempt", attempt), zap.Error(err))
			return err
		}
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(c.MaxRetries-1)), ctx))
	if err != nil {
		return nil, fmt.Errorf("could not establish MQTT connection after %d attempts: %w", attempt, err)
	}

	logger.Info("mqtt: connected", zap.String("broker", addr), zap.String("client_id", c.ClientID))

	go func() {
		<-ctx.Done()
		CloseRabbitMQConn(client, logger)
	}()
	return client, nil
}

func CloseRabbitMQConn(client mqtt.Client, logger *zap.Logger) {
	if client != nil && client.IsConnected() {
		client.Disconnect(250)
		logger.Info("mqtt: connection closed")
	}
}
