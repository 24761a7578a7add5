package cart

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Janitor periodically evicts expired carts from a MemoryStore.
type Janitor struct {
	cron  *cron.Cron
	store *MemoryStore
	log   zerolog.Logger
}

// NewJanitor returns a janitor for store. It does nothing until Start.
func NewJanitor(store *MemoryStore, log zerolog.Logger) *Janitor {
	return &Janitor{
		cron:  cron.New(),
		store: store,
		log:   log,
	}
}

// Start schedules cleanup with a cron spec such as "@every 1m".
func (j *Janitor) Start(spec string) error {
	if _, err := j.cron.AddFunc(spec, j.run); err != nil {
		return fmt.Errorf("scheduling cart cleanup: %w", err)
	}
	j.cron.Start()
	j.log.Info().Str("schedule", spec).Msg("cart janitor started")
	return nil
}

// Stop halts the schedule and waits for a running cleanup to finish.
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info().Msg("cart janitor stopped")
}

func (j *Janitor) run() {
	if n := j.store.Cleanup(); n > 0 {
		j.log.Debug().Int("removed", n).Msg("expired carts evicted")
	}
}
