package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations per entity cache",
		},
		[]string{"cache", "op"}, // op: hit|miss|put|stale|remove|evicted
	)
	CacheSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in entity cache",
		},
		[]string{"cache"},
	)
)

// ScheduleRejections — отклонённые записи расписания по причине.
var ScheduleRejections = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "schedule_item_rejections_total",
		Help: "Schedule item writes rejected by conflict policy",
	},
	[]string{"reason"}, // reason: invalid|duplicate|busy
)

var registerOnce sync.Once

// MustRegister — регистрирует коллекторы в глобальном реестре; повторные вызовы безопасны.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
			CacheOps, CacheSize, ScheduleRejections,
		)
	})
}
