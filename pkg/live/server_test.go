package live

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wayfind-dev/wayfind/pkg/engine"
	"github.com/wayfind-dev/wayfind/pkg/history"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/live"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestServerPushRoundTrip(t *testing.T) {
	bridge := NewBridge("/", WithAckTimeout(2*time.Second))
	srv := httptest.NewServer(NewServer(bridge, nil).Handler())
	defer srv.Close()

	conn := dial(t, srv)

	// Attach is asynchronous with the dial returning; wait for it.
	deadline := time.Now().Add(2 * time.Second)
	for !bridge.Connected() {
		if time.Now().After(deadline) {
			t.Fatal("bridge never saw the client")
		}
		time.Sleep(5 * time.Millisecond)
	}

	done := make(chan error, 1)
	go func() {
		done <- bridge.Push(context.Background(), history.Entry{Path: "/about"})
	}()

	// The client receives the push and acknowledges it.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("client read: %v", err)
	}
	msg, err := DecodeMessage(data)
	if err != nil {
		t.Fatalf("client decode: %v", err)
	}
	if msg.Type != MsgNavPush || msg.Path != "/about" {
		t.Fatalf("client received %+v", msg)
	}

	ack, _ := EncodeMessage(Message{Type: MsgAck, Seq: msg.Seq})
	if err := conn.WriteMessage(websocket.TextMessage, ack); err != nil {
		t.Fatalf("client ack: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Push: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Push did not return after ack")
	}

	if got := bridge.Location().Path; got != "/about" {
		t.Errorf("Location = %q, want /about", got)
	}
}

func TestServerRoutesListing(t *testing.T) {
	eng := engine.New()
	eng.Register(nil, "/", nil)
	eng.Register(nil, "/about", nil)

	bridge := NewBridge("/")
	srv := httptest.NewServer(NewServer(bridge, eng).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/routes")
	if err != nil {
		t.Fatalf("GET /routes: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var infos []struct {
		Path string `json:"path"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&infos); err != nil {
		t.Fatalf("decode: %v", err)
	}

	paths := make(map[string]bool)
	for _, info := range infos {
		paths[info.Path] = true
	}
	if !paths["/"] || !paths["/about"] {
		t.Errorf("routes = %v", paths)
	}
}
