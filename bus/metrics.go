package bus

import "sync/atomic"

type MetricsSnapshot struct {
	ActiveSubscriptions int64
	EventsPublished     int64
	Deliveries          int64
	Failures            int64
}

type Metrics struct {
	activeSubscriptions atomic.Int64
	eventsPublished     atomic.Int64
	deliveries          atomic.Int64
	failures            atomic.Int64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) RecordSubscription(delta int) {
	m.activeSubscriptions.Add(int64(delta))
}

func (m *Metrics) RecordPublish(delta int) {
	m.eventsPublished.Add(int64(delta))
}

func (m *Metrics) RecordDelivery(delta int) {
	m.deliveries.Add(int64(delta))
}

func (m *Metrics) RecordFailure(delta int) {
	m.failures.Add(int64(delta))
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		ActiveSubscriptions: m.activeSubscriptions.Load(),
		EventsPublished:     m.eventsPublished.Load(),
		Deliveries:          m.deliveries.Load(),
		Failures:            m.failures.Load(),
	}
}
