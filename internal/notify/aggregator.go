// Package notify merges per-slice operation status into a unified feed of
// transient, auto-expiring alerts.
package notify

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pawhaven/pawdeck/internal/state"
)

// Kind classifies an alert.
type Kind int

const (
	KindSuccess Kind = iota
	KindError
)

// Alert is one transient banner derived from a slice's status. It is not
// persisted; dismissing it (or batch expiry) resets the owning slice.
type Alert struct {
	ID      string
	Kind    Kind
	Slice   state.Slice
	Message string
}

// DisplayDuration is how long a batch of alerts stays on screen before the
// contributing slices are reset.
const DisplayDuration = 5 * time.Second

// Slices that produce user-facing feedback. Admin, messages, and dashboard
// are refreshed in the background and stay out of the feed.
var watched = []state.Slice{
	state.SliceAuth,
	state.SliceCart,
	state.SlicePets,
	state.SliceProducts,
	state.SliceOrders,
	state.SliceAppointments,
}

// Aggregator owns the current alert batch. Exactly one expiry is armed at a
// time: recomputation replaces the batch id atomically, and an expiry
// carrying a superseded id is ignored, so overlapping timers cannot
// double-reset slices.
type Aggregator struct {
	store *state.Store

	mu      sync.Mutex
	alerts  []Alert
	batchID string
}

// New builds an Aggregator over the shared store.
func New(store *state.Store) *Aggregator {
	return &Aggregator{store: store}
}

// Collect derives the alert batch from a snapshot. When the batch contents
// changed, a fresh batch id is issued and reschedule is true: the caller
// arms one DisplayDuration timer carrying that id and delivers it to Expire.
func (a *Aggregator) Collect(snap state.Snapshot) (alerts []Alert, batchID string, reschedule bool) {
	derived := derive(snap)

	a.mu.Lock()
	defer a.mu.Unlock()

	if sameBatch(a.alerts, derived) {
		return cloneAlerts(a.alerts), a.batchID, false
	}

	// Keep identities of alerts that survived the recomputation so a banner
	// does not change id mid-display.
	for i := range derived {
		for _, prev := range a.alerts {
			if prev.Slice == derived[i].Slice && prev.Kind == derived[i].Kind && prev.Message == derived[i].Message {
				derived[i].ID = prev.ID
				break
			}
		}
		if derived[i].ID == "" {
			derived[i].ID = uuid.NewString()
		}
	}

	a.alerts = derived
	if len(derived) == 0 {
		a.batchID = ""
		return nil, "", false
	}
	a.batchID = uuid.NewString()
	return cloneAlerts(a.alerts), a.batchID, true
}

// Expire resets every slice contributing to the identified batch. Stale
// batch ids are no-ops.
func (a *Aggregator) Expire(batchID string) {
	a.mu.Lock()
	if batchID == "" || batchID != a.batchID {
		a.mu.Unlock()
		return
	}
	expired := a.alerts
	a.alerts = nil
	a.batchID = ""
	a.mu.Unlock()

	for _, alert := range expired {
		a.store.Reset(alert.Slice)
	}
}

// Dismiss removes one alert early, resetting only its owning slice. The
// rest of the batch keeps its timer.
func (a *Aggregator) Dismiss(alertID string) {
	a.mu.Lock()
	var dismissed *Alert
	kept := a.alerts[:0]
	for _, alert := range a.alerts {
		if alert.ID == alertID && dismissed == nil {
			copied := alert
			dismissed = &copied
			continue
		}
		kept = append(kept, alert)
	}
	a.alerts = kept
	if len(a.alerts) == 0 {
		a.batchID = ""
	}
	a.mu.Unlock()

	if dismissed != nil {
		a.store.Reset(dismissed.Slice)
	}
}

// derive computes the alert list for a snapshot, applying the per-slice
// suppression rules.
func derive(snap state.Snapshot) []Alert {
	var out []Alert
	for _, slice := range watched {
		st := snap.StatusOf(slice)

		if st.Error && st.Message != "" {
			// Background cart refreshes fail noisily on flaky connections;
			// those errors are suppressed rather than surfaced.
			if slice == state.SliceCart && strings.Contains(st.Message, "fetch") {
				continue
			}
			out = append(out, Alert{Kind: KindError, Slice: slice, Message: st.Message})
			continue
		}

		if st.Success && st.Message != "" {
			// Cart successes are only worth a banner when something was
			// actually added; silent refreshes carry no "added" wording.
			if slice == state.SliceCart && !strings.Contains(st.Message, "added") {
				continue
			}
			out = append(out, Alert{Kind: KindSuccess, Slice: slice, Message: st.Message})
		}
	}
	return out
}

func sameBatch(a, b []Alert) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Slice != b[i].Slice || a[i].Kind != b[i].Kind || a[i].Message != b[i].Message {
			return false
		}
	}
	return true
}

func cloneAlerts(alerts []Alert) []Alert {
	if len(alerts) == 0 {
		return nil
	}
	dup := make([]Alert, len(alerts))
	copy(dup, alerts)
	return dup
}
