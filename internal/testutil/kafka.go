//go:build integration

package testutil

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// UniqueTopicAndGroup — топик и группа консьюмера, уникальные для теста:
// base="schedule-itc-Test" → "schedule-itc-Test-20250826T010203123456789".
func UniqueTopicAndGroup(base string) (topic, group string) {
	stamp := strings.ReplaceAll(time.Now().UTC().Format("20060102T150405.000000000"), ".", "")
	topic = fmt.Sprintf("%s-%s", base, stamp)
	return topic, topic + "-importer"
}

// EnsureTopic — создаёт топик импорта с одной партицией и ждёт его в метаданных.
// broker: "host:port", "PLAINTEXT://host:port" или список через запятую (берётся первый).
func EnsureTopic(ctx context.Context, broker, topic string) error {
	addr := bootstrapAddr(broker)

	conn, err := kafka.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close()

	// топики создаются только через контроллер
	ctrl, err := conn.Controller()
	if err != nil {
		return fmt.Errorf("controller: %w", err)
	}
	admin, err := kafka.DialContext(ctx, "tcp", net.JoinHostPort(ctrl.Host, strconv.Itoa(ctrl.Port)))
	if err != nil {
		return fmt.Errorf("dial controller: %w", err)
	}
	defer admin.Close()

	err = admin.CreateTopics(kafka.TopicConfig{Topic: topic, NumPartitions: 1, ReplicationFactor: 1})
	if err != nil && !errors.Is(err, kafka.TopicAlreadyExists) &&
		!strings.Contains(strings.ToLower(err.Error()), "already exists") {
		return fmt.Errorf("create topic %q: %w", topic, err)
	}

	return waitPartitions(ctx, addr, topic, 5*time.Second)
}

// PublishSchedule — публикует пачки слотов (JSON-массивы) в топик импорта,
// по одному сообщению на пачку, с подтверждением от всех реплик.
func PublishSchedule(ctx context.Context, brokers []string, topic string, batches ...[]byte) error {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.LeastBytes{},
	}
	defer w.Close()

	msgs := make([]kafka.Message, 0, len(batches))
	for _, b := range batches {
		msgs = append(msgs, kafka.Message{Key: []byte("schedule"), Value: b})
	}
	return w.WriteMessages(ctx, msgs...)
}

func bootstrapAddr(raw string) string {
	first := strings.TrimSpace(strings.Split(raw, ",")[0])
	if strings.Contains(first, "://") {
		if u, err := url.Parse(first); err == nil && u.Host != "" {
			return u.Host
		}
	}
	return first
}

func waitPartitions(ctx context.Context, broker, topic string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	var lastErr error
	for {
		if c, err := kafka.DialContext(ctx, "tcp", broker); err != nil {
			lastErr = err
		} else {
			parts, perr := c.ReadPartitions(topic)
			_ = c.Close()
			if perr == nil && len(parts) > 0 {
				return nil
			}
			lastErr = perr
		}

		select {
		case <-ctx.Done():
			if lastErr != nil {
				return fmt.Errorf("topic %q not ready: %w", topic, lastErr)
			}
			return fmt.Errorf("topic %q not ready: %w", topic, ctx.Err())
		case <-ticker.C:
		}
	}
}
