package port

// Metrics is the side channel for feed and reconciliation counters.
type Metrics interface {
	FeedError()
	OrderNotified()
	NotificationFailed(sink string)
	ReconcileResult(result string)
	ConflictRetry()
}
