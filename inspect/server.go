// Package inspect streams rendered frames to websocket clients, so the matrices
// a scene hands to its renderer can be watched live from a browser or a script.
package inspect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeTimeout = time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // local debugging tool, any origin may connect
	},
}

// Hello is the first message each client receives
type Hello struct {
	Client int `json:"client"`
}

// Server accepts websocket clients and broadcasts JSON messages to all of them.
type Server struct {
	clients map[int]*websocket.Conn
	idGen   int
	lock    sync.Mutex

	httpServer *http.Server
}

func NewServer() *Server {
	return &Server{
		clients: make(map[int]*websocket.Conn),
	}
}

// ServeHTTP upgrades the request and keeps the client until it disconnects
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("inspect: upgrade: %v", err)
		return
	}

	s.lock.Lock()
	id := s.idGen
	s.idGen++
	err = writeJSON(conn, Hello{Client: id})
	if err == nil {
		s.clients[id] = conn
	}
	s.lock.Unlock()

	if err != nil {
		log.Printf("inspect: client %d: hello: %v", id, err)
		conn.Close()
		return
	}

	// incoming messages are ignored; reading detects the disconnect
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.remove(id)
}

// Broadcast sends v as JSON to every client. Clients that fail to receive it are dropped.
func (s *Server) Broadcast(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("inspect: marshal: %w", err)
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	for id, conn := range s.clients {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("inspect: client %d: %v", id, err)
			delete(s.clients, id)
			conn.Close()
		}
	}

	return nil
}

// Clients returns the number of connected clients
func (s *Server) Clients() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.clients)
}

// ListenAndServe serves the websocket endpoint on addr until Shutdown
func (s *Server) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/", s)

	s.lock.Lock()
	s.httpServer = &http.Server{Addr: addr, Handler: mux}
	httpServer := s.httpServer
	s.lock.Unlock()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("inspect: listen %s: %w", addr, err)
	}
	return nil
}

// Shutdown stops the listener and disconnects every client
func (s *Server) Shutdown(ctx context.Context) error {
	s.lock.Lock()
	httpServer := s.httpServer
	for id, conn := range s.clients {
		conn.Close()
		delete(s.clients, id)
	}
	s.lock.Unlock()

	if httpServer == nil {
		return nil
	}
	return httpServer.Shutdown(ctx)
}

func (s *Server) remove(id int) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if conn, ok := s.clients[id]; ok {
		conn.Close()
		delete(s.clients, id)
	}
}

func writeJSON(conn *websocket.Conn, v any) error {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(v)
}
