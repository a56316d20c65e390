package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayfleet/dayfleet/internal/types"
)

// GetFleetCmd returns the fleet command group
func GetFleetCmd() *cobra.Command {
	fleetCmd := &cobra.Command{
		Use:   "fleet",
		Short: "Inspect the managed instance fleet",
	}

	fleetCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all managed instances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			instances, err := apiClient.ListFleet(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list fleet: %w", err)
			}
			printInstances(instances)
			return nil
		},
	})

	fleetCmd.AddCommand(&cobra.Command{
		Use:   "orphans",
		Short: "List live instances with no gateway connection",
		Long:  "Instances left behind by partial provisioning attempts. They keep running at the provider until torn down by an operator.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			instances, err := apiClient.ListOrphans(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list orphans: %w", err)
			}
			if len(instances) == 0 {
				fmt.Println("no orphaned instances")
				return nil
			}
			printInstances(instances)
			return nil
		},
	})

	return fleetCmd
}

func printInstances(instances []types.ManagedInstance) {
	for _, inst := range instances {
		fmt.Printf("%-20s %-16s %-10s %-9s %-12s %s\n",
			inst.ID, inst.Name, inst.SizeClass, inst.Tier, inst.State, inst.ImageLabel)
	}
}
