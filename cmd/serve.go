package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/stripe/stripe-go/v78/client"
	"go.uber.org/zap"

	"gemflush/internal/api"
	"gemflush/internal/api/handler/v1handler"
	"gemflush/internal/billing"
	"gemflush/internal/config"
	"gemflush/internal/pipeline"
	"gemflush/internal/worker"
	"gemflush/pkg/crawler/firecrawl"
	"gemflush/pkg/llm/openrouter"
	"gemflush/pkg/logger"
	"gemflush/pkg/metrics"
	"gemflush/pkg/wikidata"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			crawlerClient := firecrawl.New(&http.Client{
				Timeout: cfg.Crawler.Timeout,
			}, cfg.Crawler.BaseURL, cfg.Crawler.APIKey)

			llmClient := openrouter.New(&http.Client{
				Timeout: cfg.LLM.Timeout,
			}, openrouter.Options{
				BaseURL: cfg.LLM.BaseURL,
				Token:   cfg.LLM.APIKey,
			})

			var publisher wikidata.Publisher
			if cfg.Wikidata.Enabled {
				publisher = wikidata.New(&http.Client{
					Timeout: cfg.Wikidata.Timeout,
				}, cfg.Wikidata.APIURL, cfg.Wikidata.Token)
			}

			stripeClient := &client.API{}
			stripeClient.Init(cfg.Stripe.SecretKey, nil)
			billingService := billing.New(cfg.Stripe, stripeClient, strg)

			pipelineService := pipeline.New(strg, pipeline.NewOptions(cfg))

			pipelineMetrics, err := metrics.NewPipeline()
			if err != nil {
				logger.Fatal(ctx, "could not create pipeline metrics", zap.Error(err))
			}

			pipelineWorker := worker.NewPipelineWorker(strg,
				crawlerClient,
				llmClient,
				publisher,
				pipelineMetrics,
				worker.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, pipelineWorker, cfg.Pipeline.MaxWorkers)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Pipeline: pipelineService,
					Billing:  billingService,
					Storage:  strg,
				},

				RiverClient: riverClient,
				DBPool:      strg.Pool,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
