package service

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/Dulllu/netsasa/internal/core/domain"
	"github.com/Dulllu/netsasa/internal/core/ports"
)

// subscriberBuffer leaves room for the terminal event plus a straggler so a
// slow stream writer never blocks the webhook path.
const subscriberBuffer = 4

// BroadcastNotifier implements ports.StatusNotifier with per-checkout
// subscriber sets. Publish never blocks: a full or absent subscriber channel
// drops the event, because any stream reads the authoritative status from
// the registry on (re)connect.
type BroadcastNotifier struct {
	mu   sync.Mutex
	subs map[string]map[int]chan domain.StatusEvent
	next int
	log  zerolog.Logger
}

var _ ports.StatusNotifier = (*BroadcastNotifier)(nil)

// NewBroadcastNotifier creates a new in-process status notifier.
func NewBroadcastNotifier(log zerolog.Logger) *BroadcastNotifier {
	return &BroadcastNotifier{
		subs: make(map[string]map[int]chan domain.StatusEvent),
		log:  log.With().Str("component", "status_notifier").Logger(),
	}
}

// Subscribe attaches a subscriber to a checkout's event feed. The returned
// release func detaches it and must be called exactly once.
func (n *BroadcastNotifier) Subscribe(checkoutID string) (<-chan domain.StatusEvent, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	ch := make(chan domain.StatusEvent, subscriberBuffer)
	set, ok := n.subs[checkoutID]
	if !ok {
		set = make(map[int]chan domain.StatusEvent)
		n.subs[checkoutID] = set
	}
	id := n.next
	n.next++
	set[id] = ch

	release := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if set, ok := n.subs[checkoutID]; ok {
			delete(set, id)
			if len(set) == 0 {
				delete(n.subs, checkoutID)
			}
		}
	}
	return ch, release
}

// Publish delivers an event to all current subscribers of the checkout.
func (n *BroadcastNotifier) Publish(checkoutID string, event domain.StatusEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()

	set, ok := n.subs[checkoutID]
	if !ok {
		return
	}
	for _, ch := range set {
		select {
		case ch <- event:
		default:
			n.log.Warn().
				Str("checkout_id", checkoutID).
				Str("status", string(event.Status)).
				Msg("subscriber channel full, dropping event")
		}
	}
}

// SubscriberCount reports the number of attached subscribers for a checkout.
func (n *BroadcastNotifier) SubscriberCount(checkoutID string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs[checkoutID])
}
