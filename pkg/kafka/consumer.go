package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	kafka_config "luxestay/pkg/kafka/config"
	"luxestay/pkg/logger"

	"github.com/segmentio/kafka-go"
)

const fetchBackoff = time.Second

type Consumer struct {
	reader     *kafka.Reader
	dlqWriter  *kafka.Writer
	topic      string
	groupID    string
	maxRetries int
	handler    MessageHandler
	log        *logger.Logger
	middleware []Middleware
	closed     bool
	mu         sync.RWMutex
	wg         sync.WaitGroup
}

func NewConsumer(cfg *kafka_config.Config, log *logger.Logger, topic, groupID, dlqTopic string, handler MessageHandler) (*Consumer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}
	if groupID == "" {
		return nil, fmt.Errorf("group ID cannot be empty")
	}
	if handler == nil {
		return nil, fmt.Errorf("message handler cannot be nil")
	}

	consumer := &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        cfg.Brokers,
			Topic:          topic,
			GroupID:        groupID,
			MinBytes:       cfg.ConsumerMinBytes,
			MaxBytes:       cfg.ConsumerMaxBytes,
			MaxWait:        cfg.ConsumerMaxWait,
			CommitInterval: cfg.ConsumerCommitInterval,
			StartOffset:    cfg.ConsumerStartOffset,
			ErrorLogger:    errorLogger(log, "consumer"),
		}),
		topic:      topic,
		groupID:    groupID,
		maxRetries: cfg.ConsumerMaxRetries,
		handler:    handler,
		log:        log,
	}

	if dlqTopic != "" {
		consumer.dlqWriter = newDLQWriter(cfg, log, dlqTopic, compressionCodec(cfg.ProducerCompression))
	}

	return consumer, nil
}

// Use wraps the handler; middleware run in registration order.
func (c *Consumer) Use(middleware Middleware) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.middleware = append(c.middleware, middleware)
}

// Start blocks until ctx is cancelled. Every fetched message is committed,
// whether it was handled or dead-lettered.
func (c *Consumer) Start(ctx context.Context) error {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return ErrConsumerClosed
	}
	handler := chain(c.handler, c.middleware)
	c.mu.RUnlock()

	c.wg.Add(1)
	defer c.wg.Done()

	for {
		km, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			c.log.Error("Failed to fetch message", "topic", c.topic, "error", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(fetchBackoff):
			}
			continue
		}

		msg := fromKafkaMessage(km)
		if err := c.process(ctx, handler, msg); err != nil {
			c.log.Error("Message processing failed", "topic", c.topic, "offset", km.Offset, "event_id", msg.GetEventID(), "error", err)
		}

		if err := c.reader.CommitMessages(ctx, km); err != nil {
			c.log.Error("Failed to commit offset", "topic", c.topic, "offset", km.Offset, "error", err)
		}
	}
}

func (c *Consumer) process(ctx context.Context, handler MessageHandler, msg Message) error {
	var err error
	for {
		if err = handler(ctx, msg); err == nil {
			return nil
		}
		retries := msg.GetRetryCount()
		if !ShouldRetry(err, retries, c.maxRetries) {
			break
		}
		msg.IncrementRetryCount()
		c.log.Warn("Retrying message", "event_id", msg.GetEventID(), "attempt", retries+1, "max_retries", c.maxRetries, "error", err)
	}

	if c.dlqWriter != nil {
		extra := map[string]string{"dlq-consumer-group": c.groupID}
		if dlqErr := writeDLQ(ctx, c.dlqWriter, msg, c.topic, err, extra); dlqErr != nil {
			c.log.Error("Failed to send message to DLQ", "event_id", msg.GetEventID(), "error", dlqErr)
		} else {
			c.log.Warn("Message sent to DLQ", "event_id", msg.GetEventID(), "retries", msg.GetRetryCount())
		}
	}
	return err
}

func (c *Consumer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.wg.Wait()

	err := c.reader.Close()
	if c.dlqWriter != nil {
		if dlqErr := c.dlqWriter.Close(); err == nil {
			err = dlqErr
		}
	}
	return err
}
