package cmd

import (
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	coreconfig "github.com/AzielCF/az-learn/core/config"
	domainAnalytics "github.com/AzielCF/az-learn/domains/analytics"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics <user-id>",
	Short: "Print chat analytics for a user as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalytics,
}

func init() {
	analyticsCmd.Flags().Int("days", domainAnalytics.DefaultRangeDays, "size of the range in days")
	analyticsCmd.Flags().Bool("historical", false, "use the 24 hour historical view with stale fallback")
	rootCmd.AddCommand(analyticsCmd)
}

func runAnalytics(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd.Context(), coreconfig.Global)
	if err != nil {
		return err
	}
	defer rt.Close()

	days, _ := cmd.Flags().GetInt("days")
	historical, _ := cmd.Flags().GetBool("historical")

	svc := rt.services().Analytics
	var result domainAnalytics.Result
	if historical {
		result, err = svc.GetHistoricalAnalytics(cmd.Context(), args[0], days)
	} else {
		result, err = svc.GetChatsAnalytics(cmd.Context(), args[0], days)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
