package currency

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Status is a disruption notice for a currency. A currency without a
// status is operating normally.
type Status struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Link    string `json:"link"`
	Warning bool   `json:"warning"`
}

// StatusStore holds the latest known disruption notices.
type StatusStore struct {
	mu       sync.RWMutex
	statuses map[string]Status
}

func NewStatusStore() *StatusStore {
	return &StatusStore{statuses: make(map[string]Status)}
}

// Set replaces all notices.
func (s *StatusStore) Set(statuses []Status) {
	next := make(map[string]Status, len(statuses))
	for _, st := range statuses {
		next[st.ID] = st
	}

	s.mu.Lock()
	s.statuses = next
	s.mu.Unlock()
}

// Lookup returns the notice of currencyID, if any.
func (s *StatusStore) Lookup(currencyID string) (Status, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.statuses[currencyID]

	return st, ok
}

// FetchStatuses downloads the notice list from url.
func FetchStatuses(ctx context.Context, client *http.Client, url string) ([]Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create status request")
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch currency status")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("currency status endpoint returned %d", res.StatusCode)
	}

	var statuses []Status
	if err := json.NewDecoder(res.Body).Decode(&statuses); err != nil {
		return nil, errors.Wrap(err, "failed to decode currency status")
	}

	return statuses, nil
}

// RefreshStatuses fetches notices into store every interval until ctx is
// done. Failed fetches keep the previous notices.
func RefreshStatuses(ctx context.Context, store *StatusStore, client *http.Client, url string, interval time.Duration) error {
	log := log.With().Str("component", "currency_status").Str("url", url).Logger()

	refresh := func() {
		statuses, err := FetchStatuses(ctx, client, url)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to refresh currency status")
			return
		}
		store.Set(statuses)
		log.Debug().Int("count", len(statuses)).Msg("Currency status refreshed")
	}

	refresh()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			refresh()
		}
	}
}
