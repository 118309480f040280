package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/api-access-service/internal/domain/apiaccess"
)

const defaultProfile = "local"

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	profile   string
	configDir string
}

func newRootCmd(build runtimeBuilder) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "apiaccessctl",
		Short: "Manage API client accesses",
		Long: `apiaccessctl adds, edits and reads API client accesses.

Configuration is read from {config-dir}/base.yaml and {config-dir}/{profile}.yaml
and can be overridden with APP_ environment variables.`,
		// Errors are printed by main with their constraint details.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}
	root.PersistentFlags().StringVar(&opts.profile, "profile", profile, "configuration profile (defaults to $APP_PROFILE)")
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs", "directory holding the YAML configuration")

	root.AddCommand(
		newAddCmd(opts, build),
		newEditCmd(opts, build),
		newGetCmd(opts, build),
		newHealthCmd(opts, build),
	)
	return root
}

// withRuntime builds the runtime for one command and closes it afterwards.
func withRuntime(cmd *cobra.Command, opts *rootOptions, build runtimeBuilder, fn func(rt *runtime) error) (err error) {
	ctx := cmd.Context()

	rt, err := build(ctx, *opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rt.Close(ctx); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	return fn(rt)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// describeError renders an error for the terminal. Constraint failures name
// the field, kind and numeric code.
func describeError(err error) string {
	var cerr *apiaccess.ConstraintError
	if errors.As(err, &cerr) {
		return fmt.Sprintf("error: field=%s kind=%s code=%d (%s)",
			cerr.Field, cerr.Kind, int(cerr.Code), cerr.Code)
	}
	return "error: " + err.Error()
}
