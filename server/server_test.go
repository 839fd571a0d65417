package server

import (
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ixsystems/serviced/job"
	"github.com/ixsystems/serviced/procevent"
	pb "github.com/ixsystems/serviced/proto/serviced/v1"
	"github.com/ixsystems/serviced/query"
	"github.com/ixsystems/serviced/supervisor"
)

func TestToStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want codes.Code
	}{
		{fmt.Errorf("wrapped: %w", supervisor.ErrJobNotFound), codes.NotFound},
		{fmt.Errorf("wrapped: %w", supervisor.ErrAlreadyExists), codes.AlreadyExists},
		{fmt.Errorf("wrapped: %w", job.ErrInvalidSpec), codes.InvalidArgument},
		{fmt.Errorf("wrapped: %w", job.ErrIO), codes.Internal},
		{fmt.Errorf("wrapped: %w", procevent.ErrUnavailable), codes.Unavailable},
		{fmt.Errorf("wrapped: %w", query.ErrBadFilter), codes.InvalidArgument},
		{fmt.Errorf("something else"), codes.Internal},
	}
	for _, c := range cases {
		if got := status.Code(toStatus(c.err)); got != c.want {
			t.Fatalf("toStatus(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}

func TestSpecFromProto(t *testing.T) {
	umask := int32(0o022)
	spec := specFromProto(&pb.JobSpec{
		Label:                "web",
		ProgramArguments:     []string{"/bin/sleep", "60"},
		Requires:             []string{"net"},
		RunAtLoad:            true,
		ThrottleInterval:     5,
		EnvironmentVariables: map[string]string{"PATH": "/bin"},
		Umask:                &umask,
	})

	if spec.Label != "web" || !spec.RunAtLoad || spec.ThrottleInterval != 5 {
		t.Fatalf("unexpected spec: %+v", spec)
	}
	if spec.Umask == nil || *spec.Umask != 0o022 {
		t.Fatalf("umask not carried over: %v", spec.Umask)
	}
	if spec.EnvironmentVariables["PATH"] != "/bin" {
		t.Fatal("environment not carried over")
	}
}

func TestSnapshotToProto(t *testing.T) {
	code := 143
	pid := 1234
	out := snapshotToProto(job.Snapshot{
		ID:             "id-1",
		ParentID:       "id-0",
		Label:          "anonymous.sleep@1234",
		Anonymous:      true,
		State:          "RUNNING",
		LastExitStatus: &code,
		PID:            &pid,
	})

	if out.GetId() != "id-1" || out.GetParentId() != "id-0" || !out.GetAnonymous() {
		t.Fatalf("unexpected snapshot: %+v", out)
	}
	if out.LastExitStatus == nil || out.GetLastExitStatus() != 143 {
		t.Fatalf("exit status not carried over: %v", out.LastExitStatus)
	}
	if out.Pid == nil || out.GetPid() != 1234 {
		t.Fatalf("pid not carried over: %v", out.Pid)
	}

	// Absent optionals stay absent.
	empty := snapshotToProto(job.Snapshot{ID: "id-2", State: "STOPPED"})
	if empty.LastExitStatus != nil || empty.Pid != nil {
		t.Fatal("unset optionals must stay unset")
	}
}
