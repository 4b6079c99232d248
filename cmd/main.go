package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"gomoku/internal/adapters"
	"gomoku/internal/bootstrap"
	gameDelivery "gomoku/internal/delivery/game"
	"gomoku/internal/engine"
	ownMiddleware "gomoku/internal/middleware"
	repo "gomoku/internal/repository"
	gameuc "gomoku/internal/usecase/game"
)

type dataBaseAdapters struct {
	redisAdapter *adapters.AdapterRedis
	mongoAdapter *adapters.AdapterMongo
}

func main() {
	logger := NewLogger()
	defer logger.Sync()

	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		logger.Fatalw("failed to setup configuration", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	databaseAdapters := initDatabaseAdapters(ctx, logger, cfg)
	defer databaseAdapters.close(context.Background())

	r := chi.NewRouter()
	if cfg.IsLocalCors {
		r.Use(ownMiddleware.CORS)
	}
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	initializeDeliveryHandlers(cfg, logger, databaseAdapters).Routes(r)

	srv := &http.Server{Addr: ":" + cfg.ServerPort, Handler: r}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Infof("Server is running on port %s", cfg.ServerPort)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalw("failed to start server", zap.Error(err))
	}
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

// initDatabaseAdapters connects only to the stores that are configured.
// Without them the service keeps games and cached moves in memory.
func initDatabaseAdapters(ctx context.Context, log *zap.SugaredLogger, cfg *bootstrap.Config) *dataBaseAdapters {
	dbs := &dataBaseAdapters{}

	if cfg.MongoUri != "" {
		mongoAdapter := adapters.NewAdapterMongo(cfg, log)
		if err := mongoAdapter.Init(ctx); err != nil {
			log.Fatalw("failed to init mongodb", zap.Error(err))
		}
		dbs.mongoAdapter = mongoAdapter
	}

	if cfg.RedisUrl != "" {
		redisAdapter := adapters.NewAdapterRedis(cfg, log)
		if err := redisAdapter.Init(ctx); err != nil {
			log.Fatalw("failed to init redis", zap.Error(err))
		}
		dbs.redisAdapter = redisAdapter
	}

	log.Infow("database adapters initialized",
		"mongo", dbs.mongoAdapter != nil,
		"redis", dbs.redisAdapter != nil,
	)
	return dbs
}

func (d *dataBaseAdapters) close(ctx context.Context) {
	if d.mongoAdapter != nil {
		_ = d.mongoAdapter.Close(ctx)
	}
	if d.redisAdapter != nil {
		_ = d.redisAdapter.Close(ctx)
	}
}

func initializeDeliveryHandlers(cfg *bootstrap.Config, log *zap.SugaredLogger, databaseAdapters *dataBaseAdapters) *gameDelivery.GameHandler {
	var store gameuc.GameStore = repo.NewGameMapStorage()
	if databaseAdapters.mongoAdapter != nil {
		store = repo.NewGameRepository(log, databaseAdapters.mongoAdapter.Database)
	}

	var cache gameuc.MoveCache = repo.NewMoveMapCache(cfg.MoveCacheTTL())
	if databaseAdapters.redisAdapter != nil {
		cache = repo.NewMoveRedisCache(databaseAdapters.redisAdapter.GetClient(), cfg.MoveCacheTTL(), log)
	}

	eng := engine.New(engine.Options{
		Depth:    cfg.AIDepth,
		MaxNodes: cfg.AIMaxNodes,
		Timeout:  cfg.AITimeout(),
		Workers:  cfg.AIWorkers,
		UseBook:  cfg.AIUseBook,
	}, rand.New(rand.NewSource(time.Now().UnixNano())), log)

	return gameDelivery.NewGameHandler(log, gameuc.NewGameUseCase(store, cache, eng, cfg.AIDepth, log))
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
}
