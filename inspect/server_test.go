package inspect

import (
	"context"
	"encoding/json"
	"math"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/akmonengine/orbit"
	"github.com/akmonengine/orbit/config"
	"github.com/gorilla/websocket"
)

func dial(t *testing.T, ts *httptest.Server) (*websocket.Conn, Hello) {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}

	var hello Hello
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&hello); err != nil {
		t.Fatalf("read hello: %v", err)
	}
	return conn, hello
}

func waitClients(t *testing.T, s *Server, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for s.Clients() != want {
		if time.Now().After(deadline) {
			t.Fatalf("Clients() = %d, want %d", s.Clients(), want)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestServer_HelloIDs(t *testing.T) {
	s := NewServer()
	ts := httptest.NewServer(s)
	defer ts.Close()

	a, helloA := dial(t, ts)
	defer a.Close()
	b, helloB := dial(t, ts)
	defer b.Close()

	if helloA.Client != 0 || helloB.Client != 1 {
		t.Errorf("client ids = %d, %d, want 0, 1", helloA.Client, helloB.Client)
	}
	if s.Clients() != 2 {
		t.Errorf("Clients() = %d, want 2", s.Clients())
	}
}

func TestServer_BroadcastFrame(t *testing.T) {
	s := NewServer()
	ts := httptest.NewServer(s)
	defer ts.Close()

	conn, _ := dial(t, ts)
	defer conn.Close()

	settings := config.Default()
	settings.Seed = 3
	scene := orbit.NewScene(settings)
	scene.Step(0)
	frame := scene.Frame()

	if err := s.Broadcast(frame); err != nil {
		t.Fatalf("Broadcast() error = %v", err)
	}

	var got orbit.Frame
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("read frame: %v", err)
	}

	if got.Projection != frame.Projection || got.View != frame.View {
		t.Error("received matrices differ from the broadcast frame")
	}
	if len(got.Models) != len(frame.Models) {
		t.Fatalf("len(Models) = %d, want %d", len(got.Models), len(frame.Models))
	}
	if got.Viewport != frame.Viewport {
		t.Errorf("Viewport = %+v, want %+v", got.Viewport, frame.Viewport)
	}
}

func TestServer_BroadcastDegenerateFrame(t *testing.T) {
	s := NewServer()
	ts := httptest.NewServer(s)
	defer ts.Close()

	conn, _ := dial(t, ts)
	defer conn.Close()

	settings := config.Default()
	settings.Seed = 3
	settings.FieldOfView = 0
	scene := orbit.NewScene(settings)
	scene.Step(0)

	if err := s.Broadcast(scene.Frame()); err != nil {
		t.Fatalf("Broadcast() error = %v", err)
	}

	var got struct {
		Projection []*float64 `json:"projection"`
	}
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("read frame: %v", err)
	}

	if len(got.Projection) != 16 {
		t.Fatalf("len(projection) = %d, want 16", len(got.Projection))
	}
	// infinite focal length on both axes
	if got.Projection[0] != nil || got.Projection[5] != nil {
		t.Error("infinite projection entries should arrive as null")
	}
	if got.Projection[11] == nil || *got.Projection[11] != -1 {
		t.Error("finite projection entries should be kept")
	}
	if s.Clients() != 1 {
		t.Errorf("Clients() = %d, want 1", s.Clients())
	}
}

func TestServer_BroadcastUnencodable(t *testing.T) {
	s := NewServer()

	if err := s.Broadcast(map[string]float64{"nan": math.NaN()}); err == nil {
		t.Error("expected an error for NaN")
	}
}

func TestServer_DropsDisconnectedClient(t *testing.T) {
	s := NewServer()
	ts := httptest.NewServer(s)
	defer ts.Close()

	conn, _ := dial(t, ts)
	waitClients(t, s, 1)

	conn.Close()
	waitClients(t, s, 0)

	if err := s.Broadcast(json.RawMessage(`{}`)); err != nil {
		t.Errorf("Broadcast() with no clients error = %v", err)
	}
}

func TestServer_Shutdown(t *testing.T) {
	s := NewServer()
	ts := httptest.NewServer(s)
	defer ts.Close()

	conn, _ := dial(t, ts)
	defer conn.Close()

	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if s.Clients() != 0 {
		t.Errorf("Clients() = %d after Shutdown, want 0", s.Clients())
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("connection should be closed after Shutdown")
	}
}
