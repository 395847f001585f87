// Package session implements §4.G: the per-session registry and broadcast
// hub, generalizing the teacher's single global Hub (internal/api/hub.go)
// into a registry of per-session hubs keyed by session id, with the
// two-tier locking §5 calls for — a registry-level lock guarding
// creation/lookup, and a second lock per session guarding its current
// state and subscriber set.
package session

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/everforgeworks/traveller-tradehub/internal/catalog"
	"github.com/everforgeworks/traveller-tradehub/internal/pipeline"
	"github.com/everforgeworks/traveller-tradehub/internal/store"
	"github.com/everforgeworks/traveller-tradehub/internal/wire"
)

// DefaultSessionID is used for "/" and "/ws" when the URL path carries no
// explicit session segment.
const DefaultSessionID = "default"

// client is one connected WebSocket subscriber of a session.
type client struct {
	id   uint64
	send chan []byte
}

// hub holds one session's in-memory state: the last broadcast
// SessionState and the set of currently-subscribed clients.
type hub struct {
	mu      sync.RWMutex
	current *wire.SessionState
	clients map[uint64]*client
}

func newHub() *hub {
	return &hub{clients: make(map[uint64]*client)}
}

// Registry is the process-wide §4.G component: bind_and_serve,
// update_clients, client_count all operate through it.
type Registry struct {
	log   *zap.Logger
	store store.StateStore
	cat   atomic.Pointer[catalog.Catalog]

	mu   sync.RWMutex
	hubs map[string]*hub

	nextClientID atomic.Uint64
}

// NewRegistry builds an empty session registry over the given store and
// trade catalog.
func NewRegistry(st store.StateStore, cat *catalog.Catalog, log *zap.Logger) *Registry {
	r := &Registry{
		log:   log,
		store: st,
		hubs:  make(map[string]*hub),
	}
	r.cat.Store(cat)
	return r
}

// SetCatalog atomically swaps the catalog the registry resolves goods
// and pricing against, used by the SIGHUP reload path.
func (r *Registry) SetCatalog(cat *catalog.Catalog) {
	r.cat.Store(cat)
}

func (r *Registry) hubFor(sessionID string) *hub {
	r.mu.RLock()
	h, ok := r.hubs[sessionID]
	r.mu.RUnlock()
	if ok {
		return h
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.hubs[sessionID]; ok {
		return h
	}
	h = newHub()
	r.hubs[sessionID] = h
	return h
}

// ClientCount reports how many clients currently subscribe to sessionID.
func (r *Registry) ClientCount(sessionID string) int {
	h := r.hubFor(sessionID)
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// broadcastLocked records state as h's current state and fans payload out
// to every subscriber. Callers must hold h.mu for writing.
func (h *hub) broadcastLocked(payload []byte, state wire.SessionState, log *zap.Logger, sessionID string) int {
	h.current = &state
	queued := 0
	for id, c := range h.clients {
		select {
		case c.send <- payload:
			queued++
		default:
			log.Warn("client send buffer full, dropping", zap.String("session", sessionID), zap.Uint64("client", id))
		}
	}
	return queued
}

// UpdateClients fans the new state out to every subscriber of sessionID,
// recording it as the session's current state. Returns the number of
// clients the message was queued to.
func (r *Registry) UpdateClients(sessionID string, state wire.SessionState) int {
	h := r.hubFor(sessionID)

	payload, err := wire.Encode(state)
	if err != nil {
		r.log.Error("encode state for broadcast", zap.String("session", sessionID), zap.Error(err))
		return 0
	}

	h.mu.Lock()
	queued := h.broadcastLocked(payload, state, r.log, sessionID)
	h.mu.Unlock()

	if err := r.store.Save(sessionID, payload); err != nil {
		r.log.Warn("best-effort persist failed", zap.String("session", sessionID), zap.Error(err))
	}
	return queued
}

// newRNG seeds a fresh RNG for one Recompute call. The pipeline package
// itself stays a pure function of its inputs and this RNG.
func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// applyStateUpdate runs the Recompute Pipeline against sessionID's current
// state and the given incoming update, then broadcasts the result, all
// under a single hold of h.mu. This serializes concurrent State frames on
// the same session: the second of two racing updates observes the first's
// committed result as its prev, rather than clobbering it.
func (r *Registry) applyStateUpdate(sessionID string, incoming wire.SessionState) int {
	h := r.hubFor(sessionID)

	h.mu.Lock()
	prev := h.current
	next := pipeline.Recompute(prev, incoming, r.cat.Load(), newRNG())
	payload, err := wire.Encode(next)
	if err != nil {
		h.mu.Unlock()
		r.log.Error("encode state for broadcast", zap.String("session", sessionID), zap.Error(err))
		return 0
	}
	queued := h.broadcastLocked(payload, next, r.log, sessionID)
	h.mu.Unlock()

	if err := r.store.Save(sessionID, payload); err != nil {
		r.log.Warn("best-effort persist failed", zap.String("session", sessionID), zap.Error(err))
	}
	return queued
}

// applyRegenerate re-runs the pipeline against the session's current state
// with fresh RNG and no client-side input changes, per §4.G step 4's
// "Regenerate command" handling, then broadcasts the result under the same
// hold of h.mu used by applyStateUpdate so the two commands serialize
// against each other on a given session.
func (r *Registry) applyRegenerate(sessionID string) (queued int, ok bool) {
	h := r.hubFor(sessionID)

	h.mu.Lock()
	cur := h.current
	if cur == nil {
		h.mu.Unlock()
		return 0, false
	}
	// Passing a nil prev forces every change flag true, so the pipeline
	// resamples goods/pricing/passengers even though no input changed.
	next := pipeline.Recompute(nil, *cur, r.cat.Load(), newRNG())
	payload, err := wire.Encode(next)
	if err != nil {
		h.mu.Unlock()
		r.log.Error("encode state for broadcast", zap.String("session", sessionID), zap.Error(err))
		return 0, false
	}
	queued = h.broadcastLocked(payload, next, r.log, sessionID)
	h.mu.Unlock()

	if err := r.store.Save(sessionID, payload); err != nil {
		r.log.Warn("best-effort persist failed", zap.String("session", sessionID), zap.Error(err))
	}
	return queued, true
}
