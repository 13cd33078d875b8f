package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"logiflow/pkg/logger"
)

type clientLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

// Client - подключение к RabbitMQ с автоматическим переподключением
// и объявлением топологии при каждом коннекте.
type Client struct {
	url string
	log clientLogger

	mu      sync.RWMutex
	conn    *amqp.Connection
	pubChan *amqp.Channel

	pubMu       sync.Mutex
	pubConfirms chan amqp.Confirmation

	closed    chan struct{}
	reconnect chan struct{}
}

func Connect(url string, log clientLogger) (*Client, error) {
	client := &Client{
		url:       url,
		log:       log,
		closed:    make(chan struct{}),
		reconnect: make(chan struct{}, 1),
	}

	if err := client.connectOnce(); err != nil {
		return nil, err
	}

	go client.watch()

	return client, nil
}

func (c *Client) Close() {
	select {
	case <-c.closed:
	default:
		close(c.closed)
	}

	c.mu.Lock()
	if c.pubChan != nil {
		_ = c.pubChan.Close()
		c.pubChan = nil
	}
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	c.mu.Unlock()

	c.pubMu.Lock()
	if c.pubConfirms != nil {
		close(c.pubConfirms)
		c.pubConfirms = nil
	}
	c.pubMu.Unlock()
}

func (c *Client) connectOnce() (err error) {
	conn, err := amqp.DialConfig(c.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(30 * time.Second),
	})
	if err != nil {
		return fmt.Errorf("rabbitmq dial failed: %w", err)
	}

	defer func() {
		if err != nil && conn != nil {
			_ = conn.Close()
		}
	}()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq: failed to open channel: %w", err)
	}

	defer func() {
		if err != nil && ch != nil {
			_ = ch.Close()
		}
	}()

	if err = declareTopology(ch); err != nil {
		return fmt.Errorf("rabbitmq: failed to declare topology: %w", err)
	}

	if err = ch.Confirm(false); err != nil {
		return fmt.Errorf("rabbitmq: failed to enable confirms: %w", err)
	}

	c.pubMu.Lock()
	oldConfirms := c.pubConfirms
	c.pubConfirms = ch.NotifyPublish(make(chan amqp.Confirmation, 1))
	c.pubMu.Unlock()

	if oldConfirms != nil {
		close(oldConfirms)
	}

	// mandatory-публикации без маршрута возвращаются сюда
	returns := ch.NotifyReturn(make(chan amqp.Return, 1))
	go func() {
		for r := range returns {
			c.log.Error("rabbitmq message returned as unroutable",
				logger.NewField("exchange", r.Exchange),
				logger.NewField("routing_key", r.RoutingKey),
				logger.NewField("reply_code", r.ReplyCode),
			)
		}
	}()

	c.mu.Lock()
	if c.pubChan != nil && !c.pubChan.IsClosed() {
		_ = c.pubChan.Close()
	}
	c.conn = conn
	c.pubChan = ch
	c.mu.Unlock()

	go func(conn *amqp.Connection, ch *amqp.Channel) {
		connClosed := conn.NotifyClose(make(chan *amqp.Error, 1))
		chClosed := ch.NotifyClose(make(chan *amqp.Error, 1))
		select {
		case <-c.closed:
			return
		case <-connClosed:
		case <-chClosed:
		}

		select {
		case c.reconnect <- struct{}{}:
		default:
		}
	}(conn, ch)

	c.log.Info("rabbitmq connection established")

	return nil
}

func (c *Client) watch() {
	backoff := time.Second
	for {
		select {
		case <-c.closed:
			return
		case <-c.reconnect:
			for {
				select {
				case <-c.closed:
					return
				default:
				}

				if err := c.connectOnce(); err == nil {
					backoff = time.Second
					c.log.Info("rabbitmq reconnected")
					break
				} else {
					c.log.Error("rabbitmq reconnect failed",
						logger.NewField("error", err),
						logger.NewField("backoff", backoff),
					)
				}

				time.Sleep(backoff)
				if backoff < 30*time.Second {
					backoff *= 2
					if backoff > 30*time.Second {
						backoff = 30 * time.Second
					}
				}
			}
		}
	}
}

// Ping проверяет готовность подключения. Используется ретраером
// на старте приложения.
func (c *Client) Ping(_ context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.conn == nil || c.conn.IsClosed() {
		return errors.New("rabbitmq: connection is not ready")
	}
	return nil
}
