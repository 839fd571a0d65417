package dispatcher

import (
	"context"
	"encoding/json"
	"net"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/ixsystems/serviced/procevent"
	"github.com/ixsystems/serviced/supervisor"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type nullSource struct {
	events chan procevent.Event
	once   sync.Once
}

func (n *nullSource) Track(pid int) error            { return nil }
func (n *nullSource) Untrack(pid int) error          { return nil }
func (n *nullSource) Events() <-chan procevent.Event { return n.events }
func (n *nullSource) Close() error {
	n.once.Do(func() { close(n.events) })
	return nil
}

func newTestClient(t *testing.T, conns chan net.Conn) *Client {
	t.Helper()

	sup, err := supervisor.New(supervisor.Options{Source: &nullSource{events: make(chan procevent.Event)}})
	if err != nil {
		t.Fatalf("supervisor.New failed: %v", err)
	}
	t.Cleanup(sup.Close)

	c := New("unix:///nonexistent/bus.sock", sup)
	c.dial = func(ctx context.Context) (net.Conn, error) {
		select {
		case conn := <-conns:
			return conn, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return c
}

// busSide reads frames from the fake bus end until login and registration
// have been seen, then issues a query call and returns the response frame.
func busSide(t *testing.T, conn net.Conn) frame {
	t.Helper()
	enc := json.NewEncoder(conn)
	dec := json.NewDecoder(conn)

	var f frame
	if err := dec.Decode(&f); err != nil || f.Name != "auth" {
		t.Errorf("expected auth frame, got %+v (%v)", f, err)
	}
	if err := dec.Decode(&f); err != nil || f.Name != "register" {
		t.Errorf("expected register frame, got %+v (%v)", f, err)
	}

	call, _ := json.Marshal(callArgs{Method: "serviced.control.query", Args: []json.RawMessage{
		json.RawMessage(`[]`),
		json.RawMessage(`{}`),
	}})
	if err := enc.Encode(frame{ID: "q1", Namespace: "rpc", Name: "call", Args: call}); err != nil {
		t.Errorf("failed to send call: %v", err)
	}

	var resp frame
	if err := dec.Decode(&resp); err != nil {
		t.Errorf("failed to read response: %v", err)
	}
	return resp
}

func TestServeAnswersQuery(t *testing.T) {
	conns := make(chan net.Conn, 1)
	c := newTestClient(t, conns)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Run(ctx)
	}()

	clientEnd, busEnd := net.Pipe()
	conns <- clientEnd

	resp := busSide(t, busEnd)
	if resp.ID != "q1" || resp.Name != "response" {
		t.Fatalf("unexpected response frame: %+v", resp)
	}
	var result []map[string]any
	if err := json.Unmarshal(resp.Args, &result); err != nil {
		t.Fatalf("malformed query result: %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("expected empty job table, got %v", result)
	}

	cancel()
	busEnd.Close()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestReconnectAfterDisconnect(t *testing.T) {
	conns := make(chan net.Conn, 2)
	c := newTestClient(t, conns)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Run(ctx)
	}()

	// First connection: drop it right after the handshake.
	clientEnd, busEnd := net.Pipe()
	conns <- clientEnd
	dec := json.NewDecoder(busEnd)
	var f frame
	for _, want := range []string{"auth", "register"} {
		if err := dec.Decode(&f); err != nil || f.Name != want {
			t.Fatalf("expected %s frame, got %+v (%v)", want, f, err)
		}
	}
	busEnd.Close()

	// The client retries after a second and completes a fresh handshake.
	clientEnd2, busEnd2 := net.Pipe()
	conns <- clientEnd2
	dec2 := json.NewDecoder(busEnd2)
	for _, want := range []string{"auth", "register"} {
		if err := dec2.Decode(&f); err != nil || f.Name != want {
			t.Fatalf("expected %s frame after reconnect, got %+v (%v)", want, f, err)
		}
	}

	cancel()
	busEnd2.Close()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestErrorCodes(t *testing.T) {
	if code := errorCode(supervisor.ErrJobNotFound); code != 2 {
		t.Fatalf("expected ENOENT for not-found, got %d", code)
	}
	if code := errorCode(supervisor.ErrAlreadyExists); code != 17 {
		t.Fatalf("expected EEXIST for collision, got %d", code)
	}
}
