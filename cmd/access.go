package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	coreconfig "github.com/AzielCF/az-learn/core/config"
)

var accessCmd = &cobra.Command{
	Use:   "access",
	Short: "Manage free access grants",
}

var accessGrantCmd = &cobra.Command{
	Use:   "grant <email>...",
	Short: "Grant free access to one or more emails",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context(), coreconfig.Global)
		if err != nil {
			return err
		}
		defer rt.Close()

		if err := rt.services().Access.AddFreeAccess(cmd.Context(), args...); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "granted free access to %d email(s)\n", len(args))
		return nil
	},
}

var accessCheckCmd = &cobra.Command{
	Use:   "check <email>",
	Short: "Check whether an email has free access",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context(), coreconfig.Global)
		if err != nil {
			return err
		}
		defer rt.Close()

		svc := rt.services().Access
		fmt.Fprintf(cmd.OutOrStdout(), "free access: %t\nmessage limit: %d\n",
			svc.CheckFreeAccess(cmd.Context(), args[0]), svc.GetMessageLimit(cmd.Context()))
		return nil
	},
}

func init() {
	accessCmd.AddCommand(accessGrantCmd, accessCheckCmd)
	rootCmd.AddCommand(accessCmd)
}
