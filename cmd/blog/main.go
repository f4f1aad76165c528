package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tobbylie/blog/internal/config"
	"github.com/tobbylie/blog/internal/logger"
)

var (
	cfgFile string
	v       = viper.New()
	appCfg  *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "blog",
	Short: "Inspect, render, and export the blog",
	Long: `blog works on the posts compiled into this binary. It can list the
catalog, render a markdown file through the same sanitizing pipeline the
server uses, and export the whole site as static files to a directory or an
S3-compatible bucket.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./blog.yaml)")
	rootCmd.PersistentFlags().Bool("drafts", false, "include draft posts")
	rootCmd.PersistentFlags().String("url", "", "public site URL used in the sitemap (overrides APP_URL)")

	rootCmd.AddCommand(listCmd, renderCmd, exportCmd)
}

// initializeConfig loads the environment config the server uses, then layers
// flags, BLOG_* variables, and an optional blog.yaml on top through viper.
func initializeConfig(cmd *cobra.Command) error {
	appCfg = config.Load()

	v.SetDefault("out", "public")
	v.SetDefault("concurrency", 8)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("blog")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("BLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if url := v.GetString("url"); url != "" {
		appCfg.AppURL = url
	}
	if v.GetBool("drafts") {
		appCfg.ShowDrafts = true
	}

	logger.Init(logger.Options{
		Development: appCfg.IsDevelopment(),
		Level:       appCfg.LogLevel,
		SentryDSN:   appCfg.SentryDSN,
		Environment: appCfg.AppEnv,
	})
	if used := v.ConfigFileUsed(); used != "" {
		slog.Debug("using config file", "path", used)
	}

	return nil
}
