package cli

import (
	"github.com/spf13/cobra"
)

// AdminOptions holds flags for the admin subcommands.
type AdminOptions struct {
	*RootOptions
	NewUser     string
	NewPassword string
}

// NewAdminCommand creates the admin command group.
func NewAdminCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin credentials",
	}

	cmd.AddCommand(newSetPasswordCommand(rootOpts))

	return cmd
}

func newSetPasswordCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AdminOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "set-password",
		Short: "Set the admin username and password",
		Long: `Set the admin username and password.

On a fresh store this bootstraps the credentials. Once credentials
exist, the current --user and --password must be supplied.

Example:
  comicstore admin set-password --new-user admin --new-password s3cret
  comicstore admin set-password --user admin --password s3cret --new-user admin --new-password other`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openStore(opts.RootOptions)
			if err != nil {
				return err
			}
			defer env.Close()

			if err := requireAdmin(opts.RootOptions, env); err != nil {
				return err
			}
			if err := env.auth.SetCredentials(opts.NewUser, opts.NewPassword); err != nil {
				return WrapExitError(ExitCommandError, "cannot set credentials", err)
			}

			out := formatter(opts.RootOptions, cmd)
			return out.Success("Admin credentials updated")
		},
	}

	cmd.Flags().StringVar(&opts.NewUser, "new-user", "", "new admin username (required)")
	cmd.Flags().StringVar(&opts.NewPassword, "new-password", "", "new admin password (required)")
	_ = cmd.MarkFlagRequired("new-user")
	_ = cmd.MarkFlagRequired("new-password")

	return cmd
}
