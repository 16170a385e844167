package live

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wayfind-dev/wayfind/pkg/history"
)

// DefaultAckTimeout bounds how long a history operation waits for the
// connected client to confirm it.
const DefaultAckTimeout = 5 * time.Second

// Bridge is a history.History that mirrors every operation to a connected
// browser tab. The in-memory stack stays authoritative: operations apply
// locally first, then go out on the socket. Without a connected client the
// bridge degrades to plain in-memory history, so the same router works
// headless and live.
type Bridge struct {
	mu      sync.Mutex
	wmu     sync.Mutex
	local   *history.Memory
	conn    *websocket.Conn
	seq     uint64
	acks    map[uint64]chan struct{}
	timeout time.Duration
	logger  *slog.Logger
}

// BridgeOption configures a Bridge.
type BridgeOption func(*Bridge)

// WithAckTimeout sets how long Push and Replace wait for the client ack.
func WithAckTimeout(d time.Duration) BridgeOption {
	return func(b *Bridge) { b.timeout = d }
}

// WithLogger sets the bridge logger.
func WithLogger(logger *slog.Logger) BridgeOption {
	return func(b *Bridge) { b.logger = logger }
}

// NewBridge creates a bridge whose history starts at initial
// (empty means "/").
func NewBridge(initial string, opts ...BridgeOption) *Bridge {
	b := &Bridge{
		local:   history.NewMemory(initial),
		acks:    make(map[uint64]chan struct{}),
		timeout: DefaultAckTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Attach binds a client connection. Any previously attached connection is
// closed; the newcomer wins.
func (b *Bridge) Attach(conn *websocket.Conn) {
	b.mu.Lock()
	old := b.conn
	b.conn = conn
	b.mu.Unlock()

	if old != nil {
		old.Close()
	}
}

// Detach drops the connection if it is still the attached one.
func (b *Bridge) Detach(conn *websocket.Conn) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn == conn {
		b.conn = nil
	}
}

// Connected reports whether a client is currently attached.
func (b *Bridge) Connected() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.conn != nil
}

// Push appends entry locally, then tells the client to pushState.
func (b *Bridge) Push(ctx context.Context, entry history.Entry) error {
	if err := b.local.Push(ctx, entry); err != nil {
		return err
	}
	return b.mirror(ctx, MsgNavPush, entry)
}

// Replace swaps the current entry locally, then tells the client to
// replaceState.
func (b *Bridge) Replace(ctx context.Context, entry history.Entry) error {
	if err := b.local.Replace(ctx, entry); err != nil {
		return err
	}
	return b.mirror(ctx, MsgNavReplace, entry)
}

// Back moves back locally and tells the client to history.back().
func (b *Bridge) Back() error {
	if err := b.local.Back(); err != nil {
		return err
	}
	b.send(Message{Type: MsgNavBack})
	return nil
}

// Reload records the reload locally and tells the client to reload the tab.
func (b *Bridge) Reload() error {
	if err := b.local.Reload(); err != nil {
		return err
	}
	b.send(Message{Type: MsgReload})
	return nil
}

// Location returns the current entry of the authoritative local stack.
func (b *Bridge) Location() history.Entry {
	return b.local.Location()
}

// HandleMessage processes one client frame: acks release the waiting
// operation, location reports overwrite the current entry's path.
func (b *Bridge) HandleMessage(msg Message) {
	switch msg.Type {
	case MsgAck:
		b.release(msg.Seq)
	case MsgLocation:
		cur := b.local.Location()
		if msg.Path != "" && msg.Path != cur.Path {
			b.local.Replace(context.Background(), history.Entry{Path: msg.Path, State: cur.State})
		}
	default:
		b.logger.Warn("unexpected client message", "type", msg.Type)
	}
}

// mirror sends a sequenced nav message and waits for the ack. A missing
// client, a write failure, or an ack timeout never fails the navigation;
// the local stack has already moved.
func (b *Bridge) mirror(ctx context.Context, msgType string, entry history.Entry) error {
	b.mu.Lock()
	conn := b.conn
	if conn == nil {
		b.mu.Unlock()
		return nil
	}
	b.seq++
	seq := b.seq
	ack := make(chan struct{})
	b.acks[seq] = ack
	b.mu.Unlock()

	msg := Message{Type: msgType, Seq: seq, Path: entry.Path, State: entry.State}
	if !b.write(conn, msg) {
		b.release(seq)
		return nil
	}

	select {
	case <-ack:
	case <-ctx.Done():
		b.forget(seq)
		return ctx.Err()
	case <-time.After(b.timeout):
		b.forget(seq)
		b.logger.Warn("client did not acknowledge navigation", "type", msgType, "seq", seq, "path", entry.Path)
	}
	return nil
}

// send fires an unsequenced message, best effort.
func (b *Bridge) send(msg Message) {
	b.mu.Lock()
	conn := b.conn
	b.mu.Unlock()

	if conn == nil {
		return
	}
	b.write(conn, msg)
}

// write serializes writers; gorilla connections allow one writer at a time.
func (b *Bridge) write(conn *websocket.Conn, msg Message) bool {
	data, err := EncodeMessage(msg)
	if err != nil {
		b.logger.Error("encode message", "error", err)
		return false
	}
	b.wmu.Lock()
	err = conn.WriteMessage(websocket.TextMessage, data)
	b.wmu.Unlock()
	if err != nil {
		b.logger.Warn("client write failed, detaching", "error", err)
		b.Detach(conn)
		return false
	}
	return true
}

func (b *Bridge) release(seq uint64) {
	b.mu.Lock()
	ack, ok := b.acks[seq]
	delete(b.acks, seq)
	b.mu.Unlock()

	if ok {
		close(ack)
	}
}

func (b *Bridge) forget(seq uint64) {
	b.mu.Lock()
	delete(b.acks, seq)
	b.mu.Unlock()
}
