package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// GetCatalogCmd returns the catalog command
func GetCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the current boot image catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			images, err := apiClient.ListCatalog(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list catalog: %w", err)
			}
			for _, image := range images {
				desktop := ""
				if image.SupportsDesktop {
					desktop = " [desktop]"
				}
				fmt.Printf("%-24s %s%s\n", image.ID, image.Label, desktop)
			}
			return nil
		},
	}
}
