package pipeline

import "time"

// ProviderReport holds the counters for one provider's run. Counters
// are threaded through explicitly rather than accumulated in shared
// state, so parallel provider runs never contend.
type ProviderReport struct {
	Provider    string
	Namespace   string
	Vectors     int
	Batches     int
	Retries     int
	Upserted    int
	TotalTokens int64
	Elapsed     time.Duration
}

// RunReport summarizes a full orchestration across all providers.
// Dropped is filled in by callers that normalized raw records in the
// same invocation; runs started from a persisted document set leave it
// zero.
type RunReport struct {
	Documents int
	Dropped   int
	Providers []*ProviderReport
	Elapsed   time.Duration
}

// TotalUpserted sums the entries written across all providers.
func (r *RunReport) TotalUpserted() int {
	total := 0
	for _, p := range r.Providers {
		if p != nil {
			total += p.Upserted
		}
	}
	return total
}
