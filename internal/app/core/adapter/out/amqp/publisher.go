package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/JoeShih716/go-pay-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-pay-ledger/internal/app/core/usecase"
)

// MessageType 交易紀錄訊息的 Type 欄位
const MessageType = "ledger.transaction_record"

// channel amqp.Channel 中 Publisher 用到的部分
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher 將已提交的交易紀錄以 JSON 發佈到 durable queue
type Publisher struct {
	mu    sync.Mutex
	ch    channel
	queue string
}

// NewPublisher 開啟 Channel 並宣告 durable queue
//
// 參數:
//
//	conn: RabbitMQ 連線
//	queue: queue 名稱 (default exchange 以 queue 名稱為 routing key)
//
// 回傳:
//
//	*Publisher: Publisher 實例
//	error: 開啟 Channel 或宣告 queue 失敗
func NewPublisher(conn *amqp.Connection, queue string) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	_, err = ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	return newPublisher(ch, queue), nil
}

func newPublisher(ch channel, queue string) *Publisher {
	return &Publisher{ch: ch, queue: queue}
}

// Publish 發佈一筆交易紀錄
func (p *Publisher) Publish(ctx context.Context, record *domain.TransactionRecord) error {
	msg, err := buildMessage(record)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("publish record %s: %w", record.RefID, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.Close()
}

// buildMessage MessageId 使用 RefID，消費端可據此去重
func buildMessage(record *domain.TransactionRecord) (amqp.Publishing, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("encode record: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    record.RefID.String(),
		Timestamp:    record.CreatedAt,
		Type:         MessageType,
		Body:         body,
	}, nil
}

// Dial 連線 RabbitMQ，失敗時每隔 wait 重試，最多 attempts 次
func Dial(url string, attempts int, wait time.Duration, logger zerolog.Logger) (*amqp.Connection, error) {
	var (
		conn *amqp.Connection
		err  error
	)
	for i := 0; i < attempts; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			logger.Info().Msg("Connected to RabbitMQ")
			return conn, nil
		}
		logger.Warn().Err(err).Int("attempt", i+1).Int("max", attempts).Msg("Failed to connect to RabbitMQ, retrying")
		time.Sleep(wait)
	}
	return nil, fmt.Errorf("connect rabbitmq after %d attempts: %w", attempts, err)
}

var _ usecase.RecordPublisher = (*Publisher)(nil)
