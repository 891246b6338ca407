package dev

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ReloadPath is the WebSocket endpoint of the reload channel.
const ReloadPath = "/_gallery/reload"

// MessageType is the type of a reload channel message.
type MessageType string

const (
	MessageHello MessageType = "hello"
	MessageStale MessageType = "stale"
	MessageError MessageType = "error"
)

// Message is sent to browsers via WebSocket.
type Message struct {
	Type  MessageType `json:"type"`
	ID    string      `json:"id,omitempty"`
	File  string      `json:"file,omitempty"`
	Error string      `json:"error,omitempty"`
}

const writeWait = 5 * time.Second

type client struct {
	id   string
	conn *websocket.Conn

	// mu serializes writes; gorilla connections allow one writer.
	mu sync.Mutex
}

func (c *client) send(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// ReloadServer manages the WebSocket connections of open pages.
type ReloadServer struct {
	clients  map[string]*client
	mu       sync.RWMutex
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewReloadServer creates a new reload server.
func NewReloadServer(logger *slog.Logger) *ReloadServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReloadServer{
		clients: make(map[string]*client),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins in dev
			},
		},
		logger: logger.With("component", "reload"),
	}
}

// ServeHTTP upgrades the request and holds the connection until the
// client disconnects.
func (s *ReloadServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("websocket upgrade failed", "error", err)
		return
	}

	c := &client{id: uuid.NewString(), conn: conn}
	s.mu.Lock()
	s.clients[c.id] = c
	s.mu.Unlock()
	s.logger.Debug("client connected", "client", c.id)

	if data, err := json.Marshal(Message{Type: MessageHello, ID: c.id}); err == nil {
		_ = c.send(data)
	}

	// Keep connection alive until client disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.remove(c)
	s.logger.Debug("client disconnected", "client", c.id)
}

// NotifyStale tells every page that file changed.
func (s *ReloadServer) NotifyStale(file string) {
	s.broadcast(Message{Type: MessageStale, File: file})
}

// NotifyError sends an error to every page.
func (s *ReloadServer) NotifyError(errMsg string) {
	s.broadcast(Message{Type: MessageError, Error: errMsg})
}

func (s *ReloadServer) broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	s.mu.RLock()
	clients := make([]*client, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.RUnlock()

	for _, c := range clients {
		if err := c.send(data); err != nil {
			s.logger.Debug("dropping client", "client", c.id, "error", err)
			s.remove(c)
		}
	}
}

func (s *ReloadServer) remove(c *client) {
	s.mu.Lock()
	delete(s.clients, c.id)
	s.mu.Unlock()
	_ = c.conn.Close()
}

// ClientCount returns the number of connected clients.
func (s *ReloadServer) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Close closes all client connections.
func (s *ReloadServer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, c := range s.clients {
		_ = c.conn.Close()
		delete(s.clients, id)
	}
}
