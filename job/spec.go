package job

import (
	"errors"
	"fmt"
	"os/user"
	"strconv"
)

// ErrInvalidSpec is returned for malformed job specifications: no label,
// empty argv, a negative interval, or a user/group that does not resolve.
var ErrInvalidSpec = errors.New("invalid job specification")

// ErrIO is returned when a configured log file cannot be opened.
var ErrIO = errors.New("i/o error")

// Spec is the property-list job description accepted by load. Field names
// are case-sensitive and match the wire shape.
type Spec struct {
	ID                   string            `json:"ID,omitempty"`
	Label                string            `json:"Label"`
	Program              string            `json:"Program,omitempty"`
	ProgramArguments     []string          `json:"ProgramArguments"`
	Requires             []string          `json:"Requires,omitempty"`
	Provides             []string          `json:"Provides,omitempty"`
	RunAtLoad            bool              `json:"RunAtLoad,omitempty"`
	KeepAlive            bool              `json:"KeepAlive,omitempty"`
	ThrottleInterval     int               `json:"ThrottleInterval,omitempty"`
	ExitTimeout          int               `json:"ExitTimeout,omitempty"`
	StandardOutPath      string            `json:"StandardOutPath,omitempty"`
	StandardErrorPath    string            `json:"StandardErrorPath,omitempty"`
	EnvironmentVariables map[string]string `json:"EnvironmentVariables,omitempty"`
	UserName             string            `json:"UserName,omitempty"`
	GroupName            string            `json:"GroupName,omitempty"`
	Umask                *int              `json:"Umask,omitempty"`
}

// defaultExitTimeout is the SIGTERM grace period when the spec does not set
// one.
const defaultExitTimeout = 10

// normalize validates the spec and fills derived defaults: Program falls
// back to ProgramArguments[0], ExitTimeout to defaultExitTimeout.
func (s *Spec) normalize() error {
	if s.Label == "" {
		return fmt.Errorf("%w: Label is required", ErrInvalidSpec)
	}
	if len(s.ProgramArguments) == 0 {
		return fmt.Errorf("%w: ProgramArguments must not be empty", ErrInvalidSpec)
	}
	if s.Program == "" {
		s.Program = s.ProgramArguments[0]
	}
	if s.ThrottleInterval < 0 {
		return fmt.Errorf("%w: ThrottleInterval must not be negative", ErrInvalidSpec)
	}
	if s.ExitTimeout < 0 {
		return fmt.Errorf("%w: ExitTimeout must not be negative", ErrInvalidSpec)
	}
	if s.ExitTimeout == 0 {
		s.ExitTimeout = defaultExitTimeout
	}
	return nil
}

// resolveCredentials looks up UserName/GroupName into numeric ids. A lookup
// failure is an invalid spec, not a deferred runtime error.
func (s *Spec) resolveCredentials() (uid, gid *int, err error) {
	if s.UserName != "" {
		u, err := user.Lookup(s.UserName)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: unknown user %q", ErrInvalidSpec, s.UserName)
		}
		n, err := strconv.Atoi(u.Uid)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: non-numeric uid for user %q", ErrInvalidSpec, s.UserName)
		}
		uid = &n
	}
	if s.GroupName != "" {
		g, err := user.LookupGroup(s.GroupName)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: unknown group %q", ErrInvalidSpec, s.GroupName)
		}
		n, err := strconv.Atoi(g.Gid)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: non-numeric gid for group %q", ErrInvalidSpec, s.GroupName)
		}
		gid = &n
	}
	return uid, gid, nil
}
