package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/bookhive/lending-service/config"
	"github.com/bookhive/lending-service/internal/catalog"
	"github.com/bookhive/lending-service/internal/handler"
	"github.com/bookhive/lending-service/internal/ledger"
	"github.com/bookhive/lending-service/internal/membership"
	"github.com/bookhive/lending-service/internal/model"
	"github.com/bookhive/lending-service/internal/repository"
	"github.com/bookhive/lending-service/internal/server"
	"github.com/bookhive/lending-service/migrations"
	cb "github.com/bookhive/lending-service/pkg/circuit_breaker"
	"github.com/bookhive/lending-service/pkg/kafka"
	"github.com/bookhive/lending-service/pkg/logger"
	"github.com/bookhive/lending-service/pkg/postgres"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "lending")

	store, closeStore, err := newStore(cfg, log)
	if err != nil {
		log.Fatal("store init", zap.Error(err))
	}

	var (
		books   []model.Book
		users   []model.User
		records []model.BorrowingRecord
	)
	gg, ctx := errgroup.WithContext(context.Background())
	gg.Go(func() error {
		var err error
		books, err = store.LoadBooks(ctx)
		return err
	})
	gg.Go(func() error {
		var err error
		users, err = store.LoadUsers(ctx)
		return err
	})
	gg.Go(func() error {
		var err error
		records, err = store.LoadRecords(ctx)
		return err
	})
	if err := gg.Wait(); err != nil {
		log.Fatal("load snapshots", zap.Error(err))
	}
	log.Info("snapshots loaded",
		zap.Int("books", len(books)),
		zap.Int("users", len(users)),
		zap.Int("records", len(records)),
	)

	catalogSvc := catalog.NewService(store, books, log)
	membershipSvc := membership.NewService(store, users, log)
	ledgerSvc := ledger.New(catalogSvc, membershipSvc, store, records, log)

	var producer sarama.SyncProducer
	if cfg.Kafka.Enabled {
		producer, err = kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
	}

	h := handler.New(catalogSvc, membershipSvc, ledgerSvc, handler.NewEnqueuer(producer), log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Error("producer.Close", zap.Error(err))
		}
	}
	closeStore()
	log.Info("Graceful shutdown finished")
}

func newStore(cfg config.Config, log *zap.Logger) (repository.Store, func(), error) {
	breaker := cb.New(20, 30*time.Second, 0.5, 5)

	switch cfg.Store.Driver {
	case "postgres":
		db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
		if err != nil {
			return nil, nil, err
		}
		pg, err := repository.NewPostgresStore(db, log)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewBreakerStore(pg, breaker), func() { db.Close() }, nil
	default:
		fs, err := repository.NewFileStore(cfg.Store.DataDir, log)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewBreakerStore(fs, breaker), func() {}, nil
	}
}
