package counter

// Counter is a cumulative metric, e.g. values generated so far
type Counter interface {
	Value() int64
	IncreaceRatePerSec() int64

	Add(n int64)
}
