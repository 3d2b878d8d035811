package entity

// ProcessingStatus is an open set: sinks store any value verbatim.
type ProcessingStatus string

const (
	StatusProcessed ProcessingStatus = "PROCESSED"
)

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
	Failed     OutboxStatus = "failed"
)
