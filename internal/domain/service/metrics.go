package service

// Channel names used when recording notification outcomes.
const (
	ChannelEmail = "email"
	ChannelPush  = "push"
)

// IngestMetrics records ingestion and alerting counters.
type IngestMetrics interface {
	ObserveFix(inside bool)
	ObserveAlert()
	ObserveDelivery(channel string, delivered bool)
}
