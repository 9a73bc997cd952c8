package messaging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hospital-ops/internal/pkg/breaker"
	"hospital-ops/internal/pkg/config"
	"hospital-ops/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker"
)

var ErrPublishFailed = errs.New("failed to publish event")

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
}

// session is one connection with its publishing channel. close releases both.
type session struct {
	ch    channel
	close func()
}

type dialFunc func() (*session, error)

// Publisher sends outbox payloads to a durable topic exchange. A session closed by the
// broker is replaced on the next publish, so a broker restart only costs the publishes
// that ran while it was down.
type Publisher struct {
	dial     dialFunc
	sess     *session
	exchange string
	cb       *gobreaker.CircuitBreaker
	mu       sync.Mutex
}

// NewPublisher dials once so a wrong URL fails at startup.
func NewPublisher(cfg config.RabbitMQConfig) (*Publisher, error) {
	return newPublisher(func() (*session, error) { return dialSession(cfg) }, cfg.Exchange)
}

func newPublisher(dial dialFunc, exchange string) (*Publisher, error) {
	sess, err := dial()
	if err != nil {
		return nil, err
	}
	return &Publisher{
		dial:     dial,
		sess:     sess,
		exchange: exchange,
		cb:       breaker.New("RabbitMQ-Publisher", 30*time.Second),
	}, nil
}

func dialSession(cfg config.RabbitMQConfig) (*session, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "failed to dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to open rabbitmq channel")
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrapf(err, "failed to declare exchange %s", cfg.Exchange)
	}

	return &session{
		ch: ch,
		close: func() {
			if err := ch.Close(); err != nil && !errs.Is(err, amqp.ErrClosed) {
				slog.Warn("failed to close rabbitmq channel", "error", err.Error())
			}
			if err := conn.Close(); err != nil && !errs.Is(err, amqp.ErrClosed) {
				slog.Warn("failed to close rabbitmq connection", "error", err.Error())
			}
		},
	}, nil
}

// Publish routes the payload by topic. The message id lets consumers drop redeliveries.
func (p *Publisher) Publish(ctx context.Context, topic, messageID string, payload []byte) error {
	_, err := p.cb.Execute(func() (interface{}, error) {
		// amqp channels are not safe for concurrent publishing
		p.mu.Lock()
		defer p.mu.Unlock()

		ch, err := p.channel()
		if err != nil {
			return nil, err
		}
		err = ch.PublishWithContext(ctx,
			p.exchange,
			topic,
			false, // mandatory
			false, // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				MessageId:    messageID,
				Timestamp:    time.Now().UTC(),
				Body:         payload,
			})
		if err != nil && ch.IsClosed() {
			p.drop()
		}
		return nil, err
	})
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "topic %s", topic), ErrPublishFailed)
	}
	return nil
}

// channel returns the live channel, redialing when the broker closed the last one.
// Callers hold mu.
func (p *Publisher) channel() (channel, error) {
	if p.sess != nil && !p.sess.ch.IsClosed() {
		return p.sess.ch, nil
	}
	p.drop()

	sess, err := p.dial()
	if err != nil {
		return nil, err
	}
	slog.Info("rabbitmq session re-established", "exchange", p.exchange)
	p.sess = sess
	return sess.ch, nil
}

func (p *Publisher) drop() {
	if p.sess == nil {
		return
	}
	p.sess.close()
	p.sess = nil
}

func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.drop()
}
