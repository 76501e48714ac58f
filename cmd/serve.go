package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgraph-io/ristretto"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/api"
	"cpu-scheduler/internal/report"
)

// serveCmd exposes the simulator over HTTP
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := ristretto.NewCache(&ristretto.Config{
			NumCounters: cfg.Cache.NumCounters,
			MaxCost:     cfg.Cache.MaxCost,
			BufferItems: 64,
		})
		if err != nil {
			return fmt.Errorf("initializing result cache: %w", err)
		}
		defer cache.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var uploader *report.S3Uploader
		if cfg.ReportS3.Enabled {
			s3 := cfg.ReportS3
			uploader, err = report.NewS3UploaderFromCredentials(ctx, s3.AccessKey, s3.SecretKey, s3.Bucket, s3.Region)
			if err != nil {
				return err
			}
			logrus.Infof("report upload enabled, bucket=%s", s3.Bucket)
		}

		app := api.NewApp(api.NewSchedulerHandlerImpl(cfg, cache, uploader))
		errs := make(chan error, 1)
		go func() {
			logrus.Infof("listening on :%d", cfg.Port)
			errs <- app.Listen(fmt.Sprintf(":%d", cfg.Port))
		}()

		select {
		case err := <-errs:
			return err
		case <-ctx.Done():
			logrus.Info("shutting down")
			return app.Shutdown()
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
