package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/api-access-service/internal/domain"
	"github.com/jsamuelsen11/api-access-service/internal/domain/apiaccess"
)

const (
	flagClientName  = "client-name"
	flagClientID    = "client-id"
	flagEnabled     = "enabled"
	flagDescription = "description"
)

// apiAccessView is the JSON form of the editing read model.
type apiAccessView struct {
	ID          int64  `json:"id"`
	ClientName  string `json:"clientName"`
	APIClientID string `json:"apiClientId"`
	Enabled     bool   `json:"enabled"`
	Description string `json:"description"`
}

type idView struct {
	ID int64 `json:"id"`
}

func newAddCmd(opts *rootOptions, build runtimeBuilder) *cobra.Command {
	var cmdArgs apiaccess.AddAPIAccessCommand
	var enabled string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an API access",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed(flagEnabled) {
				cmdArgs.Enabled = parseEnabled(enabled)
			}

			return withRuntime(cmd, opts, build, func(rt *runtime) error {
				id, err := rt.service.AddAPIAccess(cmd.Context(), cmdArgs)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), idView{ID: id.Value()})
			})
		},
	}

	cmd.Flags().StringVar(&cmdArgs.ClientName, flagClientName, "", "unique client name")
	cmd.Flags().StringVar(&cmdArgs.APIClientID, flagClientID, "", "unique API client id")
	cmd.Flags().StringVar(&enabled, flagEnabled, "", "whether the access is enabled (true|false)")
	cmd.Flags().StringVar(&cmdArgs.Description, flagDescription, "", "free text description")

	return cmd
}

func newEditCmd(opts *rootOptions, build runtimeBuilder) *cobra.Command {
	var clientName, clientID, enabled, description string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the given fields of an API access",
		Long:  "Only the flags passed on the command line are changed; everything else is left as is.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var patch apiaccess.Patch
			flags := cmd.Flags()
			if flags.Changed(flagClientName) {
				patch.ClientName = domain.Some(clientName)
			}
			if flags.Changed(flagClientID) {
				patch.APIClientID = domain.Some(clientID)
			}
			if flags.Changed(flagEnabled) {
				v, ok := parseEnabled(enabled).Get()
				if !ok {
					return apiaccess.NewConstraintError(apiaccess.FieldEnabled, apiaccess.KindInvalid)
				}
				patch.Enabled = domain.Some(v)
			}
			if flags.Changed(flagDescription) {
				patch.Description = domain.Some(description)
			}

			return withRuntime(cmd, opts, build, func(rt *runtime) error {
				err := rt.service.EditAPIAccess(cmd.Context(), apiaccess.EditAPIAccessCommand{ID: id, Patch: patch})
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), idView{ID: id})
			})
		},
	}

	cmd.Flags().StringVar(&clientName, flagClientName, "", "new client name")
	cmd.Flags().StringVar(&clientID, flagClientID, "", "new API client id")
	cmd.Flags().StringVar(&enabled, flagEnabled, "", "enable or disable the access (true|false)")
	cmd.Flags().StringVar(&description, flagDescription, "", "new description")

	return cmd
}

func newGetCmd(opts *rootOptions, build runtimeBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print an API access for editing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withRuntime(cmd, opts, build, func(rt *runtime) error {
				a, err := rt.service.GetAPIAccessForEditing(cmd.Context(), apiaccess.GetAPIAccessForEditing{ID: id})
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), apiAccessView{
					ID:          a.ID.Value(),
					ClientName:  a.ClientName,
					APIClientID: a.APIClientID,
					Enabled:     a.Enabled,
					Description: a.Description,
				})
			})
		},
	}
}

func newHealthCmd(opts *rootOptions, build runtimeBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the configured store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd, opts, build, func(rt *runtime) error {
				rep := rt.health.Report(cmd.Context())
				if err := writeJSON(cmd.OutOrStdout(), rep); err != nil {
					return err
				}
				if !rep.Healthy {
					return errUnhealthy
				}
				return nil
			})
		},
	}
}

// parseID reads a positional id. Range checks are left to the service so the
// CLI reports the same error as any other caller.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", apiaccess.ErrInvalidID, raw)
	}
	return id, nil
}

// parseEnabled returns None for values strconv.ParseBool rejects.
func parseEnabled(raw string) domain.Optional[bool] {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return domain.None[bool]()
	}
	return domain.Some(v)
}
