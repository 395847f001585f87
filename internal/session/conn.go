package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/everforgeworks/traveller-tradehub/internal/store"
	"github.com/everforgeworks/traveller-tradehub/internal/wire"
)

// upgrader configures the WebSocket handshake, permissive on origin like
// the teacher's ServeWs, since this service has no browser-cookie session
// to protect against cross-origin hijack.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

const sendBuffer = 64

// SessionIDFromPath extracts the {session_id} segment from a "/ws/{id}"
// request path, falling back to DefaultSessionID for "/" and "/ws".
func SessionIDFromPath(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" || trimmed == "ws" {
		return DefaultSessionID
	}
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) == 2 && parts[0] == "ws" && parts[1] != "" {
		return parts[1]
	}
	return DefaultSessionID
}

// ServeWs upgrades the request to a WebSocket and runs the §4.G connection
// protocol: handshake, load-or-default, first frame, read loop, unregister.
func (r *Registry) ServeWs(w http.ResponseWriter, req *http.Request) {
	sessionID := SessionIDFromPath(req.URL.Path)

	conn, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		r.log.Warn("websocket upgrade failed", zap.String("session", sessionID), zap.Error(err))
		return
	}

	id := r.nextClientID.Add(1)
	c := &client{id: id, send: make(chan []byte, sendBuffer)}

	h := r.hubFor(sessionID)
	h.mu.Lock()
	h.clients[id] = c
	h.mu.Unlock()

	log := r.log.With(zap.String("session", sessionID), zap.Uint64("client", id))
	log.Info("client connected")

	r.loadInitialState(sessionID, h, log)

	go c.writePump(conn, log)
	r.readLoop(sessionID, h, c, conn, log)
}

// loadInitialState implements §4.G step 2: load via the store, recovering
// from a schema mismatch by default-initializing and saving through. A
// session with no stored state is default-initialized and saved as well.
func (r *Registry) loadInitialState(sessionID string, h *hub, log *zap.Logger) {
	h.mu.RLock()
	alreadyLoaded := h.current != nil
	h.mu.RUnlock()
	if alreadyLoaded {
		return
	}

	raw, found, err := r.store.Load(sessionID)
	if err != nil {
		if storeErr, ok := err.(*store.Error); ok && storeErr.Kind == store.KindSchema {
			log.Warn("schema mismatch loading session, defaulting", zap.Error(err))
			def := wire.Default()
			h.mu.Lock()
			h.current = &def
			h.mu.Unlock()
			if payload, encErr := wire.Encode(def); encErr == nil {
				_ = r.store.Save(sessionID, payload)
			}
			return
		}
		log.Error("load session failed, leaving current state unset", zap.Error(err))
		return
	}
	if !found {
		def := wire.Default()
		h.mu.Lock()
		h.current = &def
		h.mu.Unlock()
		if payload, encErr := wire.Encode(def); encErr == nil {
			_ = r.store.Save(sessionID, payload)
		}
		return
	}

	frame, err := wire.Decode(raw)
	if err != nil || frame.State == nil {
		log.Warn("stored session body did not parse as SessionState, defaulting", zap.Error(err))
		def := wire.Default()
		h.mu.Lock()
		h.current = &def
		h.mu.Unlock()
		if payload, encErr := wire.Encode(def); encErr == nil {
			_ = r.store.Save(sessionID, payload)
		}
		return
	}
	h.mu.Lock()
	h.current = frame.State
	h.mu.Unlock()
}

// readLoop implements §4.G step 4: dispatch state-update frames through the
// pipeline and regenerate commands through forced resampling, broadcasting
// either result to every subscriber including the sender.
func (r *Registry) readLoop(sessionID string, h *hub, c *client, conn *websocket.Conn, log *zap.Logger) {
	defer func() {
		h.mu.Lock()
		if existing, ok := h.clients[c.id]; ok && existing == c {
			delete(h.clients, c.id)
			close(c.send)
		}
		h.mu.Unlock()
		conn.Close()
		log.Info("client disconnected")
	}()

	h.mu.RLock()
	cur := h.current
	h.mu.RUnlock()
	if cur != nil {
		if payload, err := wire.Encode(*cur); err == nil {
			select {
			case c.send <- payload:
			default:
			}
		}
	}

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn("unexpected close", zap.Error(err))
			}
			return
		}

		frame, err := wire.Decode(message)
		if err != nil {
			log.Warn("dropping malformed frame", zap.Error(err))
			continue
		}

		switch {
		case frame.State != nil:
			r.applyStateUpdate(sessionID, *frame.State)
		case frame.Command != nil && frame.Command.Command == wire.CommandRegenerate:
			r.applyRegenerate(sessionID)
		default:
			log.Warn("unrecognized frame shape")
		}
	}
}

func (c *client) writePump(conn *websocket.Conn, log *zap.Logger) {
	defer conn.Close()
	for message := range c.send {
		conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		w, err := conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		if _, err := w.Write(message); err != nil {
			w.Close()
			return
		}
		if err := w.Close(); err != nil {
			return
		}
	}
}
