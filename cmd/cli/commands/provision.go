package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayfleet/dayfleet/internal/types"
)

// GetProvisionCmd returns the provision command
func GetProvisionCmd() *cobra.Command {
	var (
		imageID  string
		name     string
		tier     string
		protocol string
	)

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Provision a new machine and register its gateway connection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := apiClient.Provision(cmd.Context(), types.ProvisionRequest{
				ImageID:  imageID,
				Name:     name,
				Tier:     tier,
				Protocol: protocol,
			})
			if err != nil {
				return fmt.Errorf("provisioning failed: %w", err)
			}
			fmt.Printf("instance:   %s\n", result.InstanceID)
			fmt.Printf("address:    %s\n", result.Address)
			fmt.Printf("connection: %s (%s)\n", result.ConnectionName, result.Protocol)
			return nil
		},
	}

	cmd.Flags().StringVar(&imageID, "image-id", "", "Boot image id from the catalog (required)")
	cmd.Flags().StringVar(&name, "name", "", "Machine name, used as the gateway connection name (required)")
	cmd.Flags().StringVar(&tier, "tier", "Standard", "Sizing tier: Basic, Standard, or Premium")
	cmd.Flags().StringVar(&protocol, "protocol", "", "Override the inferred protocol (rdp, ssh, vnc)")
	_ = cmd.MarkFlagRequired("image-id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// GetTeardownCmd returns the teardown command
func GetTeardownCmd() *cobra.Command {
	var (
		name       string
		instanceID string
	)

	cmd := &cobra.Command{
		Use:   "teardown",
		Short: "Terminate a machine and remove its gateway connection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := apiClient.Teardown(cmd.Context(), types.TeardownRequest{
				Name:       name,
				InstanceID: instanceID,
			})
			if err != nil {
				return fmt.Errorf("teardown failed: %w", err)
			}
			fmt.Printf("teardown of %s requested\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Machine name (required)")
	cmd.Flags().StringVar(&instanceID, "instance-id", "", "Provider instance id (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("instance-id")

	return cmd
}

// GetStartCmd returns the start command
func GetStartCmd() *cobra.Command {
	return lifecycleCmd("start", "Start a stopped instance", func(cmd *cobra.Command, instanceID string) error {
		return apiClient.Start(cmd.Context(), instanceID)
	})
}

// GetStopCmd returns the stop command
func GetStopCmd() *cobra.Command {
	return lifecycleCmd("stop", "Stop a running instance", func(cmd *cobra.Command, instanceID string) error {
		return apiClient.Stop(cmd.Context(), instanceID)
	})
}

func lifecycleCmd(use, short string, run func(*cobra.Command, string) error) *cobra.Command {
	var instanceID string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := run(cmd, instanceID); err != nil {
				return fmt.Errorf("%s failed: %w", use, err)
			}
			fmt.Printf("%s of %s requested\n", use, instanceID)
			return nil
		},
	}

	cmd.Flags().StringVar(&instanceID, "instance-id", "", "Provider instance id (required)")
	_ = cmd.MarkFlagRequired("instance-id")

	return cmd
}
