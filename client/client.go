// Package client provides a Go client for the serviced control socket.
package client

import (
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/ixsystems/serviced/job"
	pb "github.com/ixsystems/serviced/proto/serviced/v1"
)

// Client wraps a gRPC connection to the serviced control socket.
type Client struct {
	conn    *grpc.ClientConn
	control pb.ControlClient
}

// New connects to the control socket. Address is a unix:// URL or a bare
// socket path.
func New(address string) (*Client, error) {
	if !strings.HasPrefix(address, "unix://") {
		address = "unix://" + address
	}

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	return &Client{
		conn:    conn,
		control: pb.NewControlClient(conn),
	}, nil
}

// Close the underlying gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Load submits a job specification and returns the new job's id.
func (c *Client) Load(ctx context.Context, spec job.Spec) (string, error) {
	resp, err := c.control.Load(ctx, &pb.LoadRequest{Spec: SpecToProto(spec)})
	if err != nil {
		return "", fmt.Errorf("failed to load job: %w", err)
	}
	return resp.GetJobId(), nil
}

// Unload stops a job and removes it.
func (c *Client) Unload(ctx context.Context, nameOrID string) error {
	if _, err := c.control.Unload(ctx, &pb.JobRef{NameOrId: nameOrID}); err != nil {
		return fmt.Errorf("failed to unload job: %w", err)
	}
	return nil
}

// Start launches a job.
func (c *Client) Start(ctx context.Context, nameOrID string) error {
	if _, err := c.control.Start(ctx, &pb.JobRef{NameOrId: nameOrID}); err != nil {
		return fmt.Errorf("failed to start job: %w", err)
	}
	return nil
}

// Stop terminates a job.
func (c *Client) Stop(ctx context.Context, nameOrID string) error {
	if _, err := c.control.Stop(ctx, &pb.JobRef{NameOrId: nameOrID}); err != nil {
		return fmt.Errorf("failed to stop job: %w", err)
	}
	return nil
}

// Query collects the snapshot stream for the given filter.
func (c *Client) Query(ctx context.Context, filters []*pb.QueryFilter, params *pb.QueryParams) ([]*pb.JobSnapshot, error) {
	stream, err := c.control.Query(ctx, &pb.QueryRequest{Filter: filters, Params: params})
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}

	var out []*pb.JobSnapshot
	for {
		snap, err := stream.Recv()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("query stream error: %w", err)
		}
		out = append(out, snap)
	}
}

// SpecToProto converts a property-list job spec to its wire form.
func SpecToProto(spec job.Spec) *pb.JobSpec {
	p := &pb.JobSpec{
		Id:                   spec.ID,
		Label:                spec.Label,
		Program:              spec.Program,
		ProgramArguments:     spec.ProgramArguments,
		Requires:             spec.Requires,
		Provides:             spec.Provides,
		RunAtLoad:            spec.RunAtLoad,
		KeepAlive:            spec.KeepAlive,
		ThrottleInterval:     int32(spec.ThrottleInterval),
		ExitTimeout:          int32(spec.ExitTimeout),
		StandardOutPath:      spec.StandardOutPath,
		StandardErrorPath:    spec.StandardErrorPath,
		EnvironmentVariables: spec.EnvironmentVariables,
		UserName:             spec.UserName,
		GroupName:            spec.GroupName,
	}
	if spec.Umask != nil {
		umask := int32(*spec.Umask)
		p.Umask = &umask
	}
	return p
}

// SnapshotMap renders a snapshot with its property-list field names, the
// shape callers of the query operation expect. Stdio paths and environment
// appear only when set.
func SnapshotMap(snap *pb.JobSnapshot) map[string]any {
	m := map[string]any{
		"ID":               snap.GetId(),
		"Label":            snap.GetLabel(),
		"Program":          snap.GetProgram(),
		"ProgramArguments": snap.GetProgramArguments(),
		"Provides":         snap.GetProvides(),
		"Requires":         snap.GetRequires(),
		"RunAtLoad":        snap.GetRunAtLoad(),
		"KeepAlive":        snap.GetKeepAlive(),
		"State":            snap.GetState(),
	}
	if snap.GetParentId() != "" {
		m["ParentID"] = snap.GetParentId()
	} else {
		m["ParentID"] = nil
	}
	if snap.LastExitStatus != nil {
		m["LastExitStatus"] = snap.GetLastExitStatus()
	} else {
		m["LastExitStatus"] = nil
	}
	if snap.Pid != nil {
		m["PID"] = snap.GetPid()
	} else {
		m["PID"] = nil
	}
	if snap.GetStandardOutPath() != "" {
		m["StandardOutPath"] = snap.GetStandardOutPath()
	}
	if snap.GetStandardErrorPath() != "" {
		m["StandardErrorPath"] = snap.GetStandardErrorPath()
	}
	if len(snap.GetEnvironmentVariables()) > 0 {
		m["EnvironmentVariables"] = snap.GetEnvironmentVariables()
	}
	return m
}
