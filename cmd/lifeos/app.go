package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	httpcontext "github.com/dtroode/lifeos-server/internal/api/http/context"
	"github.com/dtroode/lifeos-server/internal/api/http/handler"
	"github.com/dtroode/lifeos-server/internal/api/http/router"
	"github.com/dtroode/lifeos-server/internal/config"
	"github.com/dtroode/lifeos-server/internal/hasher"
	"github.com/dtroode/lifeos-server/internal/logger"
	"github.com/dtroode/lifeos-server/internal/model"
	"github.com/dtroode/lifeos-server/internal/repository/memory"
	"github.com/dtroode/lifeos-server/internal/repository/postgres"
	"github.com/dtroode/lifeos-server/internal/service"
	minioStorage "github.com/dtroode/lifeos-server/internal/storage/minio"
	s3Storage "github.com/dtroode/lifeos-server/internal/storage/s3"
	"github.com/dtroode/lifeos-server/internal/token"
)

// app holds the wired HTTP handler and the resources to release on exit.
type app struct {
	handler http.Handler
	closers []func() error
}

func newApp(ctx context.Context, cfg *config.Config, log *logger.Logger) (*app, error) {
	a := &app{}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	var (
		userStore    model.UserStore
		capsuleStore model.CapsuleStore
		pinger       handler.Pinger
	)

	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.closers = append(a.closers, conn.Close)

		userStore = postgres.NewUserRepository(conn)
		capsuleStore = postgres.NewCapsuleRepository(conn)
		pinger = conn
	case config.StoreDriverMemory:
		log.Warn("using in-memory store, data is lost on restart")
		userStore = memory.NewUserRepository()
		capsuleStore = memory.NewCapsuleRepository()
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	storage, err := newStorage(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}

	var revocations model.RevocationStore
	if cfg.Session.Revocation {
		revocations = memory.NewRevocationList()
	}

	bcrypt, err := hasher.NewBcrypt(cfg.Auth.BcryptCost)
	if err != nil {
		a.Close()
		return nil, err
	}

	serviceLog := log.With("layer", "service")
	sessions := service.NewSession(token.NewJWT(cfg.JWT.Secret), revocations, serviceLog)
	authService := service.NewAuth(userStore, bcrypt, sessions, cfg.Auth.AllowPasswordReset, serviceLog)
	capsuleService := service.NewCapsule(capsuleStore, storage, serviceLog,
		service.WithMaxAttachmentSize(cfg.Attachment.MaxBytes))

	r := router.New(authService, sessions, capsuleService, pinger, httpcontext.NewManager(), router.Options{
		Gate: model.GateConfig{
			ProtectedPrefixes: cfg.Gate.ProtectedPaths,
			PublicOnlyPaths:   cfg.Gate.PublicOnlyPaths,
			LoginPath:         cfg.Gate.LoginPath,
			LandingPath:       cfg.Gate.LandingPath,
		},
		CookieName:    cfg.Session.CookieName,
		SecureCookie:  !cfg.IsDevelopment(),
		MaxAttachment: cfg.Attachment.MaxBytes,
	}, log.With("layer", "http"))
	a.handler = r.Register()

	log.Info("application initialized",
		"env", cfg.Env,
		"store", cfg.StoreDriver,
		"storage", cfg.StorageDriver,
		"revocation", cfg.Session.Revocation,
		"password_reset", cfg.Auth.AllowPasswordReset)

	return a, nil
}

// newStorage returns nil when attachments are disabled.
func newStorage(ctx context.Context, cfg *config.Config) (model.Storage, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverNone:
		return nil, nil
	case config.StorageDriverMinio:
		client, err := minioStorage.New(ctx, minioStorage.Config{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			Bucket:    cfg.Minio.Bucket,
			UseSSL:    cfg.Minio.UseSSL,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.StorageDriverS3:
		client, err := s3Storage.New(ctx, s3Storage.Config{
			Region:       cfg.S3.Region,
			BaseEndpoint: cfg.S3.BaseEndpoint,
			AccessKey:    cfg.S3.AccessKey,
			SecretKey:    cfg.S3.SecretKey,
			Bucket:       cfg.S3.Bucket,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
