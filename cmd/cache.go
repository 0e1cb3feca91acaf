package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	coreconfig "github.com/AzielCF/az-learn/core/config"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the local cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show key count and size of the local cache",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := newRuntime(cmd.Context(), coreconfig.Global)
		if err != nil {
			return err
		}
		defer rt.Close()

		stats, err := rt.services().Cache.GetStats(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "driver: %s\nkeys:   %d\nsize:   %s\n", stats.Driver, stats.Keys, stats.HumanSize)
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear [user-id]",
	Short: "Clear the whole local cache, or one user's lists and counters",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context(), coreconfig.Global)
		if err != nil {
			return err
		}
		defer rt.Close()

		svc := rt.services().Cache
		if len(args) == 1 {
			if err := svc.ClearUserCache(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cleared cache for %s\n", args[0])
			return nil
		}
		if err := svc.ClearCache(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "cache cleared")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd, cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
