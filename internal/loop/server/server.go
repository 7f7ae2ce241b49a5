// Package server is the session hub shared by all terminal clients. Every client
// runs its own game; the hub only tracks who is connected, keeps a live
// scoreboard and fans out server-wide events such as shutdown.
package server

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tomz197/ghostbow/internal/loop/config"
)

// DefaultUsername is shown for sessions without a user name.
const DefaultUsername = "player"

// GameServer is the interface clients use to communicate with the hub.
// Decouples the Client from the concrete Server implementation, enabling
// testing and a standalone local server.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID int)
	ReportScore(clientID, score int)
	GetSnapshot() *Snapshot
}

// Server tracks connected clients and publishes snapshots of the hub state.
type Server struct {
	snapshot     atomic.Pointer[Snapshot]
	clients      map[int]*ClientHandle
	nextClientID int
	scoreCh      chan ClientScore
	registerCh   chan *ClientHandle
	unregisterCh chan int
	mu           sync.RWMutex
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// ClientHandle represents a client's connection to the server.
type ClientHandle struct {
	ID       int
	Username string           // Display name for this client
	Score    int              // Latest reported score
	EventsCh chan ClientEvent // Events sent to client (shutdown, joins)
}

// ClientScore is a score report from a specific client.
type ClientScore struct {
	ClientID int
	Score    int
}

// ClientEvent represents an event sent from server to client.
type ClientEvent struct {
	Type     ClientEventType
	Username string // For join events
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventPlayerJoined ClientEventType = iota
	EventServerShutdown
)

// NewServer creates a new hub.
func NewServer() *Server {
	s := &Server{
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
		scoreCh:      make(chan ClientScore, 256),
		registerCh:   make(chan *ClientHandle, 16),
		unregisterCh: make(chan int, 16),
	}

	// Create initial empty snapshot
	s.snapshot.Store(&Snapshot{})

	return s
}

// Run starts the server loop. Blocks until the context is cancelled.
func (s *Server) Run(ctx context.Context) {
	ticker := time.NewTicker(config.ServerTickTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.step()
		}
	}
}

// step applies pending registrations and score reports, then publishes a snapshot.
func (s *Server) step() {
	s.processRegistrations()
	s.collectScores()
	s.createSnapshot()
}

// Shutdown gracefully shuts down the server by notifying all connected clients
// and waiting for them to disconnect (up to the given timeout).
// The caller should cancel the server context after Shutdown returns.
func (s *Server) Shutdown(timeout time.Duration) {
	// Notify all connected clients about the shutdown
	s.mu.RLock()
	for _, handle := range s.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	s.mu.RUnlock()

	// Wait for all clients to disconnect, or timeout
	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			return
		case <-ticker.C:
			s.mu.RLock()
			remaining := len(s.clients)
			s.mu.RUnlock()
			if remaining == 0 {
				return
			}
		}
	}
}

// RegisterClient registers a new client with the given username and returns its handle.
func (s *Server) RegisterClient(username string) *ClientHandle {
	s.mu.Lock()
	id := s.nextClientID
	s.nextClientID++
	s.mu.Unlock()

	handle := &ClientHandle{
		ID:       id,
		Username: displayName(username),
		EventsCh: make(chan ClientEvent, 16),
	}

	s.registerCh <- handle
	return handle
}

// UnregisterClient removes a client from the server.
func (s *Server) UnregisterClient(clientID int) {
	s.unregisterCh <- clientID
}

// ReportScore records a client's current score for the scoreboard.
func (s *Server) ReportScore(clientID, score int) {
	select {
	case s.scoreCh <- ClientScore{ClientID: clientID, Score: score}:
	default:
		// Score channel full, drop report; the next one supersedes it
	}
}

// GetSnapshot returns the current hub snapshot.
func (s *Server) GetSnapshot() *Snapshot {
	return s.snapshot.Load()
}

// processRegistrations handles pending client registrations/unregistrations.
func (s *Server) processRegistrations() {
	for {
		select {
		case handle := <-s.registerCh:
			s.mu.Lock()
			for _, other := range s.clients {
				select {
				case other.EventsCh <- ClientEvent{Type: EventPlayerJoined, Username: handle.Username}:
				default:
				}
			}
			s.clients[handle.ID] = handle
			s.mu.Unlock()
		case clientID := <-s.unregisterCh:
			s.mu.Lock()
			if handle, ok := s.clients[clientID]; ok {
				close(handle.EventsCh)
				delete(s.clients, clientID)
			}
			s.mu.Unlock()
		default:
			return
		}
	}
}

// collectScores applies all pending score reports.
func (s *Server) collectScores() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		select {
		case cs := <-s.scoreCh:
			if handle, ok := s.clients[cs.ClientID]; ok {
				handle.Score = cs.Score
			}
		default:
			return
		}
	}
}

// createSnapshot creates an immutable snapshot of the hub state.
func (s *Server) createSnapshot() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.snapshot.Store(&Snapshot{
		Players:   len(s.clients),
		TopScores: topScores(make([]ScoreEntry, 0, len(s.clients)), s.clients, config.TopScoresShown),
	})
}

// displayName trims a user name to something that fits the HUD.
func displayName(username string) string {
	username = strings.TrimSpace(username)
	if username == "" {
		return DefaultUsername
	}
	if r := []rune(username); len(r) > config.MaxUsernameLength {
		return string(r[:config.MaxUsernameLength])
	}
	return username
}
