package history

import (
	"log"
	"time"

	"github.com/huntwet/huntwet/internal/signal"
	"github.com/huntwet/huntwet/internal/store"
)

// Reading is the history signal: how many harvests were logged for a ZIP
// code within the trailing window.
type Reading struct {
	RecentHarvestCount int
	Provenance         signal.Provenance
}

// Provider counts recent harvest records. A store failure is not an error;
// it reads as "limited recent activity" with count 0.
type Provider struct {
	store  *store.Store
	window time.Duration
}

func NewProvider(s *store.Store, window time.Duration) *Provider {
	return &Provider{store: s, window: window}
}

func (p *Provider) RecentActivity(zip string, now time.Time) Reading {
	count, err := p.store.CountRecentHarvests(zip, now.Add(-p.window))
	if err != nil {
		log.Printf("history: count harvests for %s: %v", zip, err)
		return Reading{RecentHarvestCount: 0, Provenance: signal.Simulated}
	}
	return Reading{RecentHarvestCount: count, Provenance: signal.Live}
}
