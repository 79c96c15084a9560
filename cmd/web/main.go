package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/pubsub"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"webvello.com/site/internal/cms"
	"webvello.com/site/internal/config"
	"webvello.com/site/internal/leads"
	"webvello.com/site/internal/observability"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Flags override the environment-derived config.
	var (
		envFile  string
		addr     string
		tmplPath string
		pubPath  string
		dev      bool
	)
	flag.StringVar(&envFile, "env-file", ".env", "dotenv file with configuration overrides")
	flag.StringVar(&addr, "addr", "", "HTTP listen address (default :$PORT)")
	flag.StringVar(&tmplPath, "templates", "", "templates directory")
	flag.StringVar(&pubPath, "public", "", "public assets directory")
	flag.BoolVar(&dev, "dev", false, "reparse templates on every request")
	flag.Parse()

	cfg, err := config.Load(config.WithEnvFile(envFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if tmplPath != "" {
		cfg.Server.TemplatesDir = tmplPath
	}
	if pubPath != "" {
		cfg.Server.PublicDir = pubPath
	}
	if dev {
		cfg.Server.DevMode = true
	}
	if addr == "" {
		addr = cfg.Server.Addr()
	}

	logger, err := observability.NewLogger(observability.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, addr, logger); err != nil {
		logger.Error("web server stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, addr string, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []serverOption
	store, err := leads.OpenStore(cfg.Leads.StorePath)
	if err != nil {
		// Leads are still logged and published without a store.
		logger.Warn("lead store disabled", zap.Error(err))
	} else {
		defer store.Close()
		opts = append(opts, withLeadStore(store))
	}
	notifier, closeNotifier, err := openLeadNotifier(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeNotifier()
	if notifier != nil {
		opts = append(opts, withNotifier(notifier))
	}

	s, err := newServer(cfg, logger, opts...)
	if err != nil {
		return fmt.Errorf("init server: %w", err)
	}

	if cfg.Content.Watch {
		watcher, err := cms.NewWatcher(s.content, logger)
		if err != nil {
			logger.Warn("content watcher disabled", zap.Error(err))
		} else if err := watcher.Start(ctx); err != nil {
			watcher.Stop()
			logger.Warn("content watcher disabled", zap.Error(err))
		} else {
			defer watcher.Stop()
		}
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(s),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("web listening",
			zap.String("addr", addr),
			zap.Bool("dev_mode", cfg.Server.DevMode),
			zap.String("content_dir", cfg.Content.Dir),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// openLeadNotifier publishes leads to WEB_LEADS_TOPIC when set. Without a topic
// the server falls back to logging them.
func openLeadNotifier(ctx context.Context, cfg config.Config) (*leads.PubSubNotifier, func(), error) {
	if cfg.Leads.Topic == "" {
		return nil, func() {}, nil
	}
	client, err := pubsub.NewClient(ctx, cfg.PubSub.ProjectID)
	if err != nil {
		return nil, nil, fmt.Errorf("init pubsub client: %w", err)
	}
	topic := client.Topic(cfg.Leads.Topic)
	notifier, err := leads.NewPubSubNotifier(topic)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return notifier, func() {
		topic.Stop()
		_ = client.Close()
	}, nil
}
