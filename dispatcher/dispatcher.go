// Package dispatcher maintains the connection to the upstream dispatcher
// bus and surfaces the control services there. The bus speaks
// newline-delimited JSON frames over a local socket; serviced connects out,
// logs in as the serviced principal, announces its services, and then
// answers inbound calls on the same connection. A lost connection is a
// normal condition: the client retries every second, forever.
package dispatcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ixsystems/serviced/job"
	"github.com/ixsystems/serviced/query"
	"github.com/ixsystems/serviced/supervisor"
)

const retryInterval = time.Second

// services announced on the bus after login.
var services = []string{"serviced.control", "serviced.management"}

// frame is one bus message.
type frame struct {
	ID        string          `json:"id"`
	Namespace string          `json:"namespace"`
	Name      string          `json:"name"`
	Args      json.RawMessage `json:"args,omitempty"`
}

type callArgs struct {
	Method string            `json:"method"`
	Args   []json.RawMessage `json:"args"`
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Client is the reconnecting dispatcher connection.
type Client struct {
	address string
	sup     *supervisor.Supervisor

	// dial is swappable for tests.
	dial func(ctx context.Context) (net.Conn, error)
}

// New creates a dispatcher client for the bus at address (a unix:// URL or
// bare socket path).
func New(address string, sup *supervisor.Supervisor) *Client {
	path := strings.TrimPrefix(address, "unix://")
	return &Client{
		address: address,
		sup:     sup,
		dial: func(ctx context.Context) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "unix", path)
		},
	}
}

// Run connects, serves, and reconnects until ctx is canceled. It never
// returns an error; dispatcher trouble must not take the daemon down.
func (c *Client) Run(ctx context.Context) {
	for {
		conn, err := c.dial(ctx)
		if err != nil {
			slog.Warn(
				"cannot connect to dispatcher, retrying in 1 second",
				"address", c.address,
				"error", err,
			)
			if !sleep(ctx, retryInterval) {
				return
			}
			continue
		}

		err = c.serve(ctx, conn)
		conn.Close()
		if ctx.Err() != nil {
			return
		}
		slog.Warn(
			"connection to dispatcher lost",
			"error", err,
		)
		if !sleep(ctx, retryInterval) {
			return
		}
	}
}

// serve logs in, announces the services, then answers calls until the
// connection breaks.
func (c *Client) serve(ctx context.Context, conn net.Conn) error {
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	enc := json.NewEncoder(conn)
	dec := json.NewDecoder(conn)

	login, _ := json.Marshal(map[string]any{"service": "serviced"})
	if err := enc.Encode(frame{ID: uuid.New().String(), Namespace: "rpc", Name: "auth", Args: login}); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	announce, _ := json.Marshal(map[string]any{"services": services})
	if err := enc.Encode(frame{ID: uuid.New().String(), Namespace: "rpc", Name: "register", Args: announce}); err != nil {
		return fmt.Errorf("service announcement failed: %w", err)
	}

	slog.Info(
		"connected to dispatcher",
		"address", c.address,
	)

	for {
		var f frame
		if err := dec.Decode(&f); err != nil {
			return err
		}

		switch f.Name {
		case "call":
			c.handleCall(enc, f)
		case "logout":
			return fmt.Errorf("dispatcher requested logout")
		default:
			// Responses to our own frames and bus chatter we do not
			// consume.
		}
	}
}

func (c *Client) handleCall(enc *json.Encoder, f frame) {
	var call callArgs
	if err := json.Unmarshal(f.Args, &call); err != nil {
		c.reply(enc, f.ID, "error", errorBody{Code: 22, Message: "malformed call"})
		return
	}

	result, err := c.invoke(call)
	if err != nil {
		c.reply(enc, f.ID, "error", errorBody{Code: errorCode(err), Message: err.Error()})
		return
	}
	c.reply(enc, f.ID, "response", result)
}

func (c *Client) reply(enc *json.Encoder, id, name string, body any) {
	args, err := json.Marshal(body)
	if err != nil {
		slog.Error(
			"failed to encode dispatcher reply",
			"error", err,
		)
		return
	}
	if err := enc.Encode(frame{ID: id, Namespace: "rpc", Name: name, Args: args}); err != nil {
		slog.Warn(
			"failed to send dispatcher reply",
			"error", err,
		)
	}
}

// invoke dispatches one bus call onto the supervisor.
func (c *Client) invoke(call callArgs) (any, error) {
	arg := func(i int) json.RawMessage {
		if i < len(call.Args) {
			return call.Args[i]
		}
		return nil
	}

	switch call.Method {
	case "serviced.control.load":
		var spec job.Spec
		if err := json.Unmarshal(arg(0), &spec); err != nil {
			return nil, fmt.Errorf("malformed job specification: %w", err)
		}
		return c.sup.Load(spec)

	case "serviced.control.unload":
		var name string
		if err := json.Unmarshal(arg(0), &name); err != nil {
			return nil, fmt.Errorf("malformed job reference: %w", err)
		}
		return nil, c.sup.Unload(name)

	case "serviced.control.start":
		var name string
		if err := json.Unmarshal(arg(0), &name); err != nil {
			return nil, fmt.Errorf("malformed job reference: %w", err)
		}
		return nil, c.sup.Start(name)

	case "serviced.control.stop":
		var name string
		if err := json.Unmarshal(arg(0), &name); err != nil {
			return nil, fmt.Errorf("malformed job reference: %w", err)
		}
		return nil, c.sup.Stop(name)

	case "serviced.control.query":
		filters, params, err := decodeQuery(arg(0), arg(1))
		if err != nil {
			return nil, err
		}
		snaps, err := c.sup.Query(filters, params)
		if err != nil {
			return nil, err
		}
		out := make([]map[string]any, len(snaps))
		for i, snap := range snaps {
			out[i] = snap.Map()
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unknown method %q", call.Method)
	}
}

// decodeQuery parses the bus shape of query arguments: a list of
// [field, op, value] triples and a params object.
func decodeQuery(rawFilter, rawParams json.RawMessage) ([]query.Filter, query.Params, error) {
	var filters []query.Filter
	if len(rawFilter) > 0 {
		var triples [][]any
		if err := json.Unmarshal(rawFilter, &triples); err != nil {
			return nil, query.Params{}, fmt.Errorf("malformed query filter: %w", err)
		}
		for _, t := range triples {
			if len(t) != 3 {
				return nil, query.Params{}, fmt.Errorf("query filter needs (field, op, value) triples")
			}
			field, fok := t[0].(string)
			op, ook := t[1].(string)
			if !fok || !ook {
				return nil, query.Params{}, fmt.Errorf("query filter field and op must be strings")
			}
			filters = append(filters, query.Filter{Field: field, Op: op, Value: t[2]})
		}
	}

	var params query.Params
	if len(rawParams) > 0 {
		var p struct {
			Single bool     `json:"single"`
			Select []string `json:"select"`
			Limit  int      `json:"limit"`
			Offset int      `json:"offset"`
			Sort   string   `json:"sort"`
		}
		if err := json.Unmarshal(rawParams, &p); err != nil {
			return nil, query.Params{}, fmt.Errorf("malformed query params: %w", err)
		}
		params = query.Params(p)
	}
	return filters, params, nil
}

// errorCode maps error kinds to the bus's errno-style numeric codes.
func errorCode(err error) int {
	switch {
	case errors.Is(err, supervisor.ErrJobNotFound):
		return 2 // ENOENT
	case errors.Is(err, supervisor.ErrAlreadyExists):
		return 17 // EEXIST
	case errors.Is(err, job.ErrInvalidSpec):
		return 22 // EINVAL
	case errors.Is(err, job.ErrIO):
		return 5 // EIO
	default:
		return 14 // EFAULT
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
