// Package server implements the serviced control services over gRPC.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ixsystems/serviced/job"
	"github.com/ixsystems/serviced/procevent"
	pb "github.com/ixsystems/serviced/proto/serviced/v1"
	"github.com/ixsystems/serviced/query"
	"github.com/ixsystems/serviced/supervisor"
)

// Server implements the serviced.control service.
type Server struct {
	pb.UnimplementedControlServer
	sup *supervisor.Supervisor
}

// Management implements the reserved serviced.management service. It has no
// methods in this release.
type Management struct {
	pb.UnimplementedManagementServer
}

// New creates a Server backed by the given Supervisor.
func New(sup *supervisor.Supervisor) *Server {
	return &Server{sup: sup}
}

// Register registers both control services on a gRPC server.
func Register(g *grpc.Server, sup *supervisor.Supervisor) {
	pb.RegisterControlServer(g, New(sup))
	pb.RegisterManagementServer(g, &Management{})
}

// Listen opens the control socket. Address is a unix:// URL or a bare
// socket path; the socket is world-writable by contract, local access
// control is not this daemon's job.
func Listen(address string) (net.Listener, error) {
	path := strings.TrimPrefix(address, "unix://")
	if path == "" {
		return nil, fmt.Errorf("empty control socket path")
	}

	// A previous instance may have left the socket behind.
	if _, err := os.Stat(path); err == nil {
		os.Remove(path)
	}

	lis, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on control socket: %w", err)
	}
	if err := os.Chmod(path, 0777); err != nil {
		lis.Close()
		return nil, fmt.Errorf("failed to set control socket permissions: %w", err)
	}
	return lis, nil
}

// Load validates a job specification and inserts the job.
func (s *Server) Load(ctx context.Context, req *pb.LoadRequest) (*pb.LoadResponse, error) {
	if req.GetSpec() == nil {
		return nil, status.Error(codes.InvalidArgument, "spec must not be empty")
	}

	id, err := s.sup.Load(specFromProto(req.GetSpec()))
	if err != nil {
		return nil, toStatus(err)
	}

	slog.Info(
		"loaded job via control socket",
		"id", id,
		"label", req.GetSpec().GetLabel(),
	)
	return &pb.LoadResponse{JobId: id}, nil
}

// Unload stops a job and removes it from the job table.
func (s *Server) Unload(ctx context.Context, req *pb.JobRef) (*pb.UnloadResponse, error) {
	if err := s.sup.Unload(req.GetNameOrId()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.UnloadResponse{}, nil
}

// Start launches a job.
func (s *Server) Start(ctx context.Context, req *pb.JobRef) (*pb.StartResponse, error) {
	if err := s.sup.Start(req.GetNameOrId()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.StartResponse{}, nil
}

// Stop terminates a job. Blocks up to the job's exit timeout while the
// signal escalation runs; other RPCs are served concurrently meanwhile.
func (s *Server) Stop(ctx context.Context, req *pb.JobRef) (*pb.StopResponse, error) {
	if err := s.sup.Stop(req.GetNameOrId()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.StopResponse{}, nil
}

// Query streams snapshots of the jobs matching the filter.
func (s *Server) Query(req *pb.QueryRequest, stream grpc.ServerStreamingServer[pb.JobSnapshot]) error {
	filters := make([]query.Filter, 0, len(req.GetFilter()))
	for _, f := range req.GetFilter() {
		filters = append(filters, query.Filter{
			Field: f.GetField(),
			Op:    f.GetOp(),
			Value: f.GetValue().AsInterface(),
		})
	}

	var params query.Params
	if p := req.GetParams(); p != nil {
		params = query.Params{
			Single: p.GetSingle(),
			Select: p.GetSelect(),
			Limit:  int(p.GetLimit()),
			Offset: int(p.GetOffset()),
			Sort:   p.GetSort(),
		}
	}

	snaps, err := s.sup.Query(filters, params)
	if err != nil {
		return toStatus(err)
	}

	for _, snap := range snaps {
		if err := stream.Send(snapshotToProto(snap)); err != nil {
			return err
		}
	}
	return nil
}

// toStatus maps the error kinds to gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, supervisor.ErrJobNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, supervisor.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, job.ErrInvalidSpec):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, job.ErrIO):
		return status.Error(codes.Internal, err.Error())
	case errors.Is(err, procevent.ErrUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, query.ErrBadFilter):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func specFromProto(p *pb.JobSpec) job.Spec {
	spec := job.Spec{
		ID:                   p.GetId(),
		Label:                p.GetLabel(),
		Program:              p.GetProgram(),
		ProgramArguments:     p.GetProgramArguments(),
		Requires:             p.GetRequires(),
		Provides:             p.GetProvides(),
		RunAtLoad:            p.GetRunAtLoad(),
		KeepAlive:            p.GetKeepAlive(),
		ThrottleInterval:     int(p.GetThrottleInterval()),
		ExitTimeout:          int(p.GetExitTimeout()),
		StandardOutPath:      p.GetStandardOutPath(),
		StandardErrorPath:    p.GetStandardErrorPath(),
		EnvironmentVariables: p.GetEnvironmentVariables(),
		UserName:             p.GetUserName(),
		GroupName:            p.GetGroupName(),
	}
	if p.Umask != nil {
		umask := int(p.GetUmask())
		spec.Umask = &umask
	}
	return spec
}

func snapshotToProto(snap job.Snapshot) *pb.JobSnapshot {
	out := &pb.JobSnapshot{
		Id:                   snap.ID,
		ParentId:             snap.ParentID,
		Label:                snap.Label,
		Anonymous:            snap.Anonymous,
		Program:              snap.Program,
		ProgramArguments:     snap.ProgramArguments,
		Provides:             snap.Provides,
		Requires:             snap.Requires,
		RunAtLoad:            snap.RunAtLoad,
		KeepAlive:            snap.KeepAlive,
		State:                snap.State,
		StandardOutPath:      snap.StandardOutPath,
		StandardErrorPath:    snap.StandardErrorPath,
		EnvironmentVariables: snap.EnvironmentVariables,
	}
	if snap.LastExitStatus != nil {
		code := int32(*snap.LastExitStatus)
		out.LastExitStatus = &code
	}
	if snap.PID != nil {
		pid := int32(*snap.PID)
		out.Pid = &pid
	}
	return out
}
