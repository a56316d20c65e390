// Package commands implements the dayfleet CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dayfleet/dayfleet/pkg/api/v1/client"
)

const (
	flagServerAddress = "server-address"
	envServerAddress  = "DAYFLEET_SERVER_ADDRESS"
)

var (
	// apiClient is the shared API client instance
	apiClient *client.Client
	// serverAddress holds the target API server address
	serverAddress string
)

func initClient() error {
	var err error
	opts := client.DefaultOptions()
	opts.BaseURL = serverAddress
	apiClient, err = client.NewClient(opts)
	return err
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&serverAddress, flagServerAddress, "s",
		client.DefaultOptions().BaseURL, "Address of the dayfleet API server (env: DAYFLEET_SERVER_ADDRESS)")

	RootCmd.AddCommand(GetCatalogCmd())
	RootCmd.AddCommand(GetFleetCmd())
	RootCmd.AddCommand(GetProvisionCmd())
	RootCmd.AddCommand(GetTeardownCmd())
	RootCmd.AddCommand(GetStartCmd())
	RootCmd.AddCommand(GetStopCmd())
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "dayfleet",
	Short: "dayfleet CLI - manage on-demand desktop machines",
	Long:  `dayfleet CLI provisions, lists, and tears down short-lived desktop machines through the dayfleet API.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if !cmd.Flags().Changed(flagServerAddress) {
			if envAddr := os.Getenv(envServerAddress); envAddr != "" {
				serverAddress = envAddr
			}
		}
		if serverAddress == "" {
			return fmt.Errorf("server address cannot be empty")
		}
		return initClient()
	},
}
