package cmd

import (
	"fmt"

	"object-storage/core/storage"
	"object-storage/feature/health"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixBucket bool

// healthCmd checks the configured bucket.
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the configured bucket exists",
	Long:  `Checks that the storage bucket is reachable. With --fix a missing bucket is created in the configured region.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		if err := cfg.Storage.Validate(); err != nil {
			return err
		}
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}

		svc := health.NewService(client, cfg.Storage, logg)
		check := svc.Check
		if fixBucket {
			check = svc.Fix
		}

		report, err := check(cmd.Context())
		if err != nil {
			return err
		}

		if !report.Exists {
			logg.Warn("Bucket missing. Run with --fix to create it.", zap.String("bucket", report.Bucket))
			return fmt.Errorf("bucket %s does not exist", report.Bucket)
		}
		logg.Info("Bucket is reachable",
			zap.String("bucket", report.Bucket),
			zap.String("region", report.Region),
			zap.Bool("created", report.Fixed),
		)
		return nil
	},
}

func init() {
	healthCmd.Flags().BoolVar(&fixBucket, "fix", false, "Create the bucket when missing")
	RootCmd.AddCommand(healthCmd)
}
