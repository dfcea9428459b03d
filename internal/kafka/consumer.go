package kafka

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/Gunvolt24/dance_center/internal/ports"
	"github.com/Gunvolt24/dance_center/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Consumer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — минимальный контракт над источником (kafka.Reader),
// чтобы легко подменять его моками в тестах.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// scheduleImporter — бизнес-логика: разбор пачки слотов и атомарное сохранение.
type scheduleImporter interface {
	ImportFromMessage(ctx context.Context, raw []byte) error
}

// Consumer — импорт расписания из Kafka: kafka.Reader + usecase + logger.
type Consumer struct {
	reader         reader
	importer       scheduleImporter
	log            ports.Logger
	processTimeout time.Duration
	retryInitial   time.Duration
	retryMax       time.Duration
	jitterRand     *rand.Rand
	closeOnce      sync.Once
}

// NewConsumer — конструктор. readerConfig() настроен на ручной коммит оффсетов.
func NewConsumer(cfg *ConsumerConfig, importer scheduleImporter, log ports.Logger) *Consumer {
	reader := kafka.NewReader(cfg.ReaderConfig())

	// Параметры по умолчанию (если не заданы в конфиге)
	pt := cfg.ProcessTimeout
	if pt <= 0 {
		pt = 5 * time.Second
	}

	rInit := cfg.RetryInitial
	if rInit <= 0 {
		rInit = 1 * time.Second
	}

	rMax := cfg.RetryMax
	if rMax <= 0 {
		rMax = 30 * time.Second
	}

	return &Consumer{
		reader:         reader,
		importer:       importer,
		log:            log,
		processTimeout: pt,
		retryInitial:   rInit,
		retryMax:       rMax,
		// jitterRand — источник случайности, чтобы рассинхронизировать экспоненциальный backoff.
		jitterRand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run — цикл импорта расписания, оффсеты коммитятся вручную:
// импорт прошёл или отклонён ядром (невалидные данные, конфликт, нет ссылки) → коммит;
// сбой хранилища → то же сообщение повторяется с backoff, пока не пройдёт или не отменят ctx.
// FetchMessage сдвигает позицию reader'а, поэтому повтор делается здесь, а не повторным чтением.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "schedule import consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	retry := c.retryInitial
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			sleep := c.withJitterEqual(retry)
			c.log.Warnf(ctx, "fetch failed: %v (will retry in %s)", err, sleep)
			if !c.sleepWithBackoff(ctx, sleep) {
				return ctx.Err()
			}
			retry = c.nextBackoff(retry)
			continue
		}

		retry = c.retryInitial
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if err := c.processUntilDone(ctx, rc.Topic, &msg); err != nil {
			return err
		}
		c.commitSafely(ctx, &msg)
	}
}

// processUntilDone — повторяет обработку одного сообщения, пока его можно коммитить.
// Ошибка только при отмене ctx: оффсет остаётся незакоммиченным.
func (c *Consumer) processUntilDone(ctx context.Context, topic string, msg *kafka.Message) error {
	wait := c.retryInitial
	for attempt := 1; ; attempt++ {
		if c.handleMessage(ctx, topic, msg) {
			return nil
		}
		sleep := c.withJitterEqual(wait)
		c.log.Warnf(ctx, "offset=%d attempt %d failed, retry in %s", msg.Offset, attempt, sleep)
		if !c.sleepWithBackoff(ctx, sleep) {
			return ctx.Err()
		}
		wait = c.nextBackoff(wait)
	}
}

// Close - закрывает reader. Вызывается при остановке приложения.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
