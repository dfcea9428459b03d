package kafka

import (
	"errors"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	// пачка расписания студии — единицы килобайт; потолок с запасом
	maxMessageBytes = 1 << 20
	fetchMaxWait    = 500 * time.Millisecond
)

// ConsumerConfig — параметры консьюмера импорта расписания.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string // "first" — с начала топика, иначе — с конца

	ProcessTimeout time.Duration // таймаут обработки одного сообщения
	RetryInitial   time.Duration // стартовая пауза backoff
	RetryMax       time.Duration // потолок backoff
}

// Validate — без брокеров, топика и группы консьюмер не стартует.
// Группа обязательна: без неё kafka-go не коммитит оффсеты.
func (c *ConsumerConfig) Validate() error {
	var errs []error
	if len(c.Brokers) == 0 {
		errs = append(errs, errors.New("kafka: no brokers"))
	}
	if strings.TrimSpace(c.Topic) == "" {
		errs = append(errs, errors.New("kafka: empty topic"))
	}
	if strings.TrimSpace(c.GroupID) == "" {
		errs = append(errs, errors.New("kafka: empty group id"))
	}
	return errors.Join(errs...)
}

// ReaderConfig — конфигурация kafka.Reader с ручным коммитом оффсетов.
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		CommitInterval: 0,
		MinBytes:       1,
		MaxBytes:       maxMessageBytes,
		MaxWait:        fetchMaxWait,
		StartOffset:    kafka.LastOffset,
	}
	if strings.EqualFold(strings.TrimSpace(c.StartOffset), "first") {
		rc.StartOffset = kafka.FirstOffset
	}
	return rc
}
