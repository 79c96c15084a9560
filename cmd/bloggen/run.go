package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"cloud.google.com/go/pubsub"
	gcs "cloud.google.com/go/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"webvello.com/site/internal/blogfactory"
	"webvello.com/site/internal/config"
	"webvello.com/site/internal/observability"
)

type runFlags struct {
	contentDir  string
	maxRuntime  time.Duration
	delay       time.Duration
	maxPosts    int
	logInterval int
	logFile     string
	registry    string
	onCollision string
	seed        int64
	year        int
	once        bool
	sink        string
	bucket      string
}

func runCmd(root *rootOptions) *cobra.Command {
	f := &runFlags{}
	c := &cobra.Command{
		Use:   "run",
		Short: "Generate posts until the runtime or post budget is spent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			f.apply(cmd, &cfg)

			logger, err := observability.NewLogger(observability.Options{
				Level: root.logLevel,
				File:  cfg.Generator.LogFile,
			})
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			return generate(cmd, cfg, f, logger)
		},
	}

	flags := c.Flags()
	flags.StringVar(&f.contentDir, "content-dir", "", "directory posts are written to (default from WEB_CONTENT_DIR)")
	flags.DurationVar(&f.maxRuntime, "max-runtime", blogfactory.DefaultMaxRuntime, "stop after this much wall time")
	flags.DurationVar(&f.delay, "delay", blogfactory.DefaultDelay, "pause between posts")
	flags.IntVar(&f.maxPosts, "max-posts", blogfactory.DefaultMaxPosts, "stop after this many iterations")
	flags.IntVar(&f.logInterval, "log-interval", blogfactory.DefaultLogInterval, "log progress every N posts")
	flags.StringVar(&f.logFile, "log-file", "", "append log lines to this file (default from GEN_LOG_FILE)")
	flags.StringVar(&f.registry, "registry", "", "buntdb registry path, or :memory: (default from GEN_REGISTRY)")
	flags.StringVar(&f.onCollision, "on-collision", "", "slug collision policy: skip|overwrite")
	flags.Int64Var(&f.seed, "seed", 0, "random seed (0 picks one from the clock)")
	flags.IntVar(&f.year, "year", 0, "year used by trend titles (default current year)")
	flags.BoolVar(&f.once, "once", false, "generate a single post and exit")
	flags.StringVar(&f.sink, "sink", "", "where posts are written: file|gcs")
	flags.StringVar(&f.bucket, "bucket", "", "Cloud Storage bucket for the gcs sink")
	return c
}

// apply lets explicitly set flags win over configuration.
func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	gen := &cfg.Generator
	if changed("content-dir") {
		cfg.Content.Dir = f.contentDir
	}
	if changed("max-runtime") {
		gen.MaxRuntime = f.maxRuntime
	}
	if changed("delay") {
		gen.Delay = f.delay
	}
	if changed("max-posts") {
		gen.MaxPosts = f.maxPosts
	}
	if changed("log-interval") {
		gen.LogInterval = f.logInterval
	}
	if changed("log-file") {
		gen.LogFile = f.logFile
	}
	if changed("registry") {
		gen.RegistryPath = f.registry
	}
	if changed("on-collision") {
		gen.OnCollision = f.onCollision
	}
	if changed("year") {
		gen.Year = f.year
	}
	if changed("sink") {
		gen.Sink = f.sink
	}
	if changed("bucket") {
		gen.Bucket = f.bucket
	}
}

func generate(cmd *cobra.Command, cfg config.Config, f *runFlags, logger *zap.Logger) error {
	ctx := cmd.Context()
	gen := cfg.Generator

	policy, err := blogfactory.ParseCollisionPolicy(gen.OnCollision)
	if err != nil {
		return err
	}

	sink, closeSink, err := openSink(ctx, gen, cfg.Content.Dir)
	if err != nil {
		return err
	}
	defer closeSink()

	reg, err := blogfactory.OpenRegistry(gen.RegistryPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := reg.Close(); err != nil {
			logger.Warn("close registry", zap.Error(err))
		}
	}()

	seed := f.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := []blogfactory.Option{
		blogfactory.WithRegistry(reg),
		blogfactory.WithLogger(logger),
		blogfactory.WithRand(rand.New(rand.NewSource(seed))),
	}

	publisher, closePublisher, err := openPublisher(ctx, cfg.PubSub)
	if err != nil {
		return err
	}
	defer closePublisher()
	if publisher != nil {
		opts = append(opts, blogfactory.WithPublisher(publisher))
	}

	runner, err := blogfactory.NewRunner(sink, blogfactory.Config{
		MaxRuntime:  gen.MaxRuntime,
		Delay:       gen.Delay,
		MaxPosts:    gen.MaxPosts,
		LogInterval: gen.LogInterval,
		OnCollision: policy,
		Year:        gen.Year,
		BaseURL:     cfg.Site.BaseURL,
		Once:        f.once,
	}, opts...)
	if err != nil {
		return err
	}

	summary, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "generated %d posts in %s (%d collisions, %d duplicates, %d failures, %.2f posts/min)\n",
		summary.Generated, summary.Runtime.Round(time.Second), summary.Collisions, summary.Duplicates, summary.Failures, summary.PostsPerMinute())
	return nil
}

func openSink(ctx context.Context, gen config.GeneratorConfig, contentDir string) (blogfactory.Sink, func(), error) {
	switch gen.Sink {
	case "", "file":
		sink, err := blogfactory.NewFileSink(contentDir)
		return sink, func() {}, err
	case "gcs":
		client, err := gcs.NewClient(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("init storage client: %w", err)
		}
		sink, err := blogfactory.NewGCSSink(client, gen.Bucket)
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return sink, func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown sink %q", gen.Sink)
	}
}

func openPublisher(ctx context.Context, cfg config.PubSubConfig) (*blogfactory.PubSubPublisher, func(), error) {
	if cfg.Topic == "" {
		return nil, func() {}, nil
	}
	if cfg.ProjectID == "" {
		return nil, nil, errors.New("pubsub topic configured without GCP_PROJECT_ID")
	}
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, nil, fmt.Errorf("init pubsub client: %w", err)
	}
	topic := client.Topic(cfg.Topic)
	publisher, err := blogfactory.NewPubSubPublisher(topic)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return publisher, func() {
		topic.Stop()
		_ = client.Close()
	}, nil
}
