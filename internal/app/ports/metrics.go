package ports

type IntentMetrics interface {
	RecordOutcome(intent, outcome string)
	RecordFailure(intent string)
}

type TickMetrics interface {
	RecordTick(kind string)
	RecordRollover()
	RecordDeath()
}
