package notifier

import (
	"net/http"
	"sync"

	"docpoint-service/internal/app/config"
	"docpoint-service/internal/app/contracts"
	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/net/websocket"
)

// Registry tracks one live connection per doctor. A reconnect replaces the
// previous entry (last write wins); the stale connection is closed so the
// doctor never receives events twice.
type Registry struct {
	secret string
	Log    *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*wsConn
}

type wsConn struct {
	conn *websocket.Conn
}

func NewRegistry(internalConfig *config.InternalConfig, logger *zap.Logger) *Registry {
	return &Registry{
		secret:   internalConfig.JWT.Secret,
		Log:      logger,
		sessions: make(map[string]*wsConn),
	}
}

var _ contracts.Notifier = (*Registry)(nil)

type closeMessage struct {
	Event string `json:"event"`
}

// HandleWebSocket upgrades the request and keeps the connection registered
// until the doctor disconnects. The session token travels as a query
// parameter because browsers cannot set headers on websocket upgrades.
func (r *Registry) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	websocket.Handler(func(conn *websocket.Conn) {
		r.serveWS(conn, req)
	}).ServeHTTP(w, req)
}

func (r *Registry) serveWS(conn *websocket.Conn, req *http.Request) {
	tokenString := req.URL.Query().Get(constvars.HeaderPatientToken)
	doctorID, err := utils.ParseIDToken(tokenString, r.secret)
	if err != nil {
		websocket.JSON.Send(conn, closeMessage{Event: "unauthorized"})
		conn.Close()
		return
	}

	wsc := &wsConn{conn: conn}
	r.mu.Lock()
	if previous, ok := r.sessions[doctorID]; ok {
		previous.conn.Close()
	}
	r.sessions[doctorID] = wsc
	r.mu.Unlock()

	r.Log.Info("notifier.Registry connection opened",
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	defer func() {
		r.mu.Lock()
		if r.sessions[doctorID] == wsc {
			delete(r.sessions, doctorID)
		}
		r.mu.Unlock()
		r.Log.Info("notifier.Registry connection closed",
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
		)
	}()

	for {
		var discard map[string]interface{}
		if err := websocket.JSON.Receive(conn, &discard); err != nil {
			return
		}
	}
}

// Notify pushes a payload to the doctor's live connection. Returns false when
// the doctor has no open connection; callers treat that as a no-op.
func (r *Registry) Notify(doctorID string, payload interface{}) bool {
	r.mu.RLock()
	wsc, ok := r.sessions[doctorID]
	r.mu.RUnlock()
	if !ok {
		return false
	}

	if err := websocket.JSON.Send(wsc.conn, payload); err != nil {
		r.Log.Error("notifier.Registry failed to push event",
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return false
	}
	return true
}
