// Program svcctl is the CLI client for the serviced control socket.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ixsystems/serviced/client"
	"github.com/ixsystems/serviced/config"
	"github.com/ixsystems/serviced/job"
	"github.com/ixsystems/serviced/logging"
	pb "github.com/ixsystems/serviced/proto/serviced/v1"
)

var socketAddress string

var (
	queryFilters []string
	querySingle  bool
	querySelect  []string
	queryLimit   int64
	queryOffset  int64
	querySort    string
)

func main() {
	// CLI runs log to stderr.
	logging.Init("")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := &cobra.Command{
		Use:   "svcctl",
		Short: "Control serviced jobs",
	}
	rootCmd.SetContext(ctx)

	rootCmd.PersistentFlags().StringVarP(&socketAddress, "socket", "s", config.DefaultSocketAddress, "Control socket address")

	loadCmd := &cobra.Command{
		Use:   "load <spec.json>",
		Short: "Load a job from a property-list JSON file (\"-\" for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE:  cmdLoad,
	}

	unloadCmd := &cobra.Command{
		Use:   "unload <label_or_id>",
		Short: "Stop a job and remove it",
		Args:  cobra.ExactArgs(1),
		RunE:  cmdUnload,
	}

	startCmd := &cobra.Command{
		Use:   "start <label_or_id>",
		Short: "Start a job",
		Args:  cobra.ExactArgs(1),
		RunE:  cmdStart,
	}

	stopCmd := &cobra.Command{
		Use:   "stop <label_or_id>",
		Short: "Stop a job",
		Args:  cobra.ExactArgs(1),
		RunE:  cmdStop,
	}

	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "List jobs matching the filter",
		Args:  cobra.NoArgs,
		RunE:  cmdQuery,
	}
	queryCmd.Flags().StringArrayVarP(&queryFilters, "filter", "f", nil, "Filter triple field,op,value (repeatable)")
	queryCmd.Flags().BoolVar(&querySingle, "single", false, "Return at most one job")
	queryCmd.Flags().StringSliceVar(&querySelect, "select", nil, "Fields to include")
	queryCmd.Flags().Int64Var(&queryLimit, "limit", 0, "Maximum number of jobs")
	queryCmd.Flags().Int64Var(&queryOffset, "offset", 0, "Number of jobs to skip")
	queryCmd.Flags().StringVar(&querySort, "sort", "", "Sort field (prefix with - for descending)")

	rootCmd.AddCommand(loadCmd, unloadCmd, startCmd, stopCmd, queryCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newClient() (*client.Client, error) {
	return client.New(socketAddress)
}

func cmdLoad(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read job specification: %w", err)
	}

	var spec job.Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return fmt.Errorf("failed to parse job specification: %w", err)
	}

	ctl, err := newClient()
	if err != nil {
		return err
	}
	defer ctl.Close()

	jobID, err := ctl.Load(cmd.Context(), spec)
	if err != nil {
		return err
	}
	return printJSON(struct {
		JobID string `json:"job_id"`
	}{JobID: jobID})
}

func cmdUnload(cmd *cobra.Command, args []string) error {
	ctl, err := newClient()
	if err != nil {
		return err
	}
	defer ctl.Close()
	return ctl.Unload(cmd.Context(), args[0])
}

func cmdStart(cmd *cobra.Command, args []string) error {
	ctl, err := newClient()
	if err != nil {
		return err
	}
	defer ctl.Close()
	return ctl.Start(cmd.Context(), args[0])
}

func cmdStop(cmd *cobra.Command, args []string) error {
	ctl, err := newClient()
	if err != nil {
		return err
	}
	defer ctl.Close()
	return ctl.Stop(cmd.Context(), args[0])
}

func cmdQuery(cmd *cobra.Command, args []string) error {
	filters, err := parseFilters(queryFilters)
	if err != nil {
		return err
	}

	ctl, err := newClient()
	if err != nil {
		return err
	}
	defer ctl.Close()

	snaps, err := ctl.Query(cmd.Context(), filters, &pb.QueryParams{
		Single: querySingle,
		Select: querySelect,
		Limit:  queryLimit,
		Offset: queryOffset,
		Sort:   querySort,
	})
	if err != nil {
		return err
	}

	out := make([]map[string]any, len(snaps))
	for i, snap := range snaps {
		out[i] = client.SnapshotMap(snap)
	}
	return printJSON(out)
}

// parseFilters turns "field,op,value" arguments into filter triples. The
// value is parsed as JSON when possible, so `PID,=,null` and
// `RunAtLoad,=,true` mean what they look like; anything else is a string.
func parseFilters(raw []string) ([]*pb.QueryFilter, error) {
	var out []*pb.QueryFilter
	for _, r := range raw {
		parts := strings.SplitN(r, ",", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("filter %q is not field,op,value", r)
		}

		var parsed any = parts[2]
		var decoded any
		if err := json.Unmarshal([]byte(parts[2]), &decoded); err == nil {
			parsed = decoded
		}
		value, err := structpb.NewValue(parsed)
		if err != nil {
			return nil, fmt.Errorf("bad filter value %q: %w", parts[2], err)
		}

		out = append(out, &pb.QueryFilter{
			Field: parts[0],
			Op:    parts[1],
			Value: value,
		})
	}
	return out, nil
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(b))
	return nil
}
