package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"webvello.com/site/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

type rootOptions struct {
	envFile  string
	logLevel string
}

func (o *rootOptions) loadConfig() (config.Config, error) {
	return config.Load(config.WithEnvFile(o.envFile))
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "bloggen",
		Short:        "Generate templated blog posts into the site's content directory",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file with configuration overrides (empty to skip)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (defaults to LOG_LEVEL or info)")

	cmd.AddCommand(runCmd(opts))
	cmd.AddCommand(previewCmd(opts))
	cmd.AddCommand(slugCmd())
	cmd.AddCommand(historyCmd(opts))
	return cmd
}
