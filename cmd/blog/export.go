package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tobbylie/blog/internal/app"
	"github.com/tobbylie/blog/internal/export"
	"github.com/tobbylie/blog/internal/storage"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the site as static files",
	Long: `export renders Home, every post, the not-found page, sitemap.xml,
robots.txt, and the stylesheets. Files go to --out unless a bucket is set
with --bucket or S3_BUCKET.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if bucket := v.GetString("bucket"); bucket != "" {
			appCfg.S3Bucket = bucket
		}

		a, err := app.New(appCfg)
		if err != nil {
			return err
		}
		defer a.Close()

		store, err := storage.New(cmd.Context(), appCfg, v.GetString("out"))
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}

		result, err := export.New(a, store, export.WithConcurrency(v.GetInt("concurrency"))).Run(cmd.Context())
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "exported %d files (home: %s) in %s\n",
			len(result.Files), store.URL("index.html"), result.Duration.Round(time.Millisecond))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("out", "o", "public", "output directory when no bucket is configured")
	exportCmd.Flags().String("bucket", "", "S3 bucket to upload to (overrides S3_BUCKET)")
	exportCmd.Flags().Int("concurrency", export.DefaultConcurrency, "maximum uploads in flight")
}
