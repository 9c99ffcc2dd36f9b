package status

import (
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

// Session counter names
const (
	Rounds     = "rounds"
	Ticks      = "ticks"
	FoodEaten  = "food_eaten"
	BonusEaten = "bonus_eaten"
	Deaths     = "deaths"
	HighScores = "high_scores"
	Paused     = "paused"
)

// Registry holds the counters and flags of one session
// The tick loop writes through cached pointers; any goroutine may read
type Registry struct {
	Ints  *MetricMap[atomic.Int64]
	Bools *MetricMap[atomic.Bool]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:  NewMetricMap[atomic.Int64](),
		Bools: NewMetricMap[atomic.Bool](),
	}
}

// Counter returns the named counter
func (r *Registry) Counter(name string) *atomic.Int64 {
	return r.Ints.Get(name)
}

// Flag returns the named flag
func (r *Registry) Flag(name string) *atomic.Bool {
	return r.Bools.Get(name)
}

// Fields snapshots every metric for a log entry
func (r *Registry) Fields() log.Fields {
	fields := make(log.Fields, r.Ints.Count()+r.Bools.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		fields[key] = v.Load()
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		fields[key] = v.Load()
	})
	return fields
}
