package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/RodReBer/barraca-toto/internal/catalog"
	"github.com/RodReBer/barraca-toto/internal/config"
	httpAPI "github.com/RodReBer/barraca-toto/internal/http"
	"github.com/RodReBer/barraca-toto/internal/http/controller"
	"github.com/RodReBer/barraca-toto/internal/http/middleware"
	"github.com/RodReBer/barraca-toto/internal/logger"
	"github.com/RodReBer/barraca-toto/internal/metrics"
	"github.com/RodReBer/barraca-toto/internal/overlay"
	"github.com/RodReBer/barraca-toto/internal/service"
	sqspkg "github.com/RodReBer/barraca-toto/internal/sqs"
)

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)

	logger.InitJSONLogger(conf.DebugMode)

	ctx := context.Background()

	overlayStore, cleanup, err := newOverlayStore(ctx, conf)
	handleErr("initializing overlay storage", err)
	defer cleanup()

	// The store is built once per process; everything below receives it by
	// reference.
	store := catalog.New(ctx, overlayStore)

	// Mutation events are optional: without a queue URL the catalog runs
	// standalone.
	var publisher *sqspkg.Publisher
	if conf.AWS.SQSQueueURL != "" {
		sqsClient, err := sqspkg.NewClient(ctx, conf.AWS.Region, conf.AWS.Endpoint)
		handleErr("creating SQS client", err)
		publisher = sqspkg.NewPublisher(sqsClient, conf.AWS.SQSQueueURL)
	}

	catalogService := service.NewCatalogService(store, publisher)

	sessions := middleware.NewSessions()
	ctr := controller.New(conf)
	catalogCtr := controller.NewCatalogController(store)
	adminCtr := controller.NewAdminController(catalogService, store, sessions, conf.AdminPassword)

	if !conf.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	httpServer := gin.Default()
	httpServer = httpAPI.InitRouter(conf, httpServer, ctr, catalogCtr, adminCtr, sessions)

	go func() {
		if err := httpServer.Run(":" + conf.HTTPServer.Port); err != nil {
			handleErr("listening to HTTP requests", err)
		}
	}()

	metrics.StartMetricsServer(conf)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Shutting down gracefully...")
}

// newOverlayStore builds the overlay driver the configuration selects and a
// cleanup function for its resources.
func newOverlayStore(ctx context.Context, conf *config.Config) (overlay.Store, func(), error) {
	switch conf.Overlay.Driver {
	case config.OverlayDriverFile:
		return overlay.NewFileStore(conf.Overlay.Path), func() {}, nil
	case config.OverlayDriverBolt:
		store, err := overlay.NewBoltStore(conf.Overlay.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	case config.OverlayDriverPostgres:
		db, err := overlay.StartDB(ctx, conf.Database)
		if err != nil {
			return nil, nil, err
		}
		return overlay.NewPostgresStore(db), func() { db.Close() }, nil
	}
	return nil, nil, fmt.Errorf("%w: %s", config.ErrUnknownOverlayDriver, conf.Overlay.Driver)
}

func handleErr(msg string, err error) {
	if err != nil {
		log.Fatalf("error while %s: %v", msg, err)
	}
}
