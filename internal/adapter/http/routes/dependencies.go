package routes

import (
	"context"
	"fmt"

	"github.com/alexferreiraaf/osmaster/internal/adapter/blob"
	"github.com/alexferreiraaf/osmaster/internal/adapter/http/handlers"
	"github.com/alexferreiraaf/osmaster/internal/adapter/notify"
	"github.com/alexferreiraaf/osmaster/internal/adapter/persistence/repository"
	"github.com/alexferreiraaf/osmaster/internal/adapter/session"
	"github.com/alexferreiraaf/osmaster/internal/adapter/suggest"
	"github.com/alexferreiraaf/osmaster/internal/config"
	"github.com/alexferreiraaf/osmaster/internal/infrastructure/cache"
	"github.com/alexferreiraaf/osmaster/internal/infrastructure/database"
	"github.com/alexferreiraaf/osmaster/internal/infrastructure/storage"
	"github.com/alexferreiraaf/osmaster/internal/usecase"
	"github.com/alexferreiraaf/osmaster/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type stores struct {
	orders    interfaces.IOrderRepository
	employees interfaces.IEmployeeRepository
	users     interfaces.IUserRepository
}

// dependencies is the wired application. close releases broker and cache
// connections in reverse order of creation.
type dependencies struct {
	handlers    Handlers
	auth        usecase.IAuthUseCase
	attachments *usecase.AttachmentUseCase
	closers     []func()
}

func (d *dependencies) close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

func buildDependencies(ctx context.Context, cfg config.Config, logger *zap.Logger) (*dependencies, error) {
	d := &dependencies{}

	st, err := buildStores(ctx, cfg.Store, logger)
	if err != nil {
		return nil, err
	}

	sessions, err := buildSessions(ctx, cfg.Redis, logger, d)
	if err != nil {
		d.close()
		return nil, err
	}

	s3Client, err := storage.ConnectS3(ctx, cfg.Blob)
	if err != nil {
		d.close()
		return nil, err
	}
	blobs := blob.NewS3BlobStore(s3Client, cfg.Blob.Bucket, cfg.Blob.Region, cfg.Blob.PublicBaseURL)

	events, err := buildEvents(cfg.MQTT, logger, d)
	if err != nil {
		d.close()
		return nil, err
	}

	var suggester interfaces.ITechnicianSuggester
	if cfg.Suggestion.URL != "" {
		suggester = suggest.NewHTTPSuggester(cfg.Suggestion.URL, cfg.Suggestion.APIKey, cfg.Suggestion.Timeout, logger)
	} else {
		logger.Info("technician suggestion disabled: SUGGESTION_URL not set")
	}

	orderUseCase := usecase.NewOrderUseCase(st.orders, st.employees, events, logger)
	queryUseCase := usecase.NewQueryUseCase(st.orders, logger)
	rosterUseCase := usecase.NewRosterUseCase(st.employees, st.orders, logger)
	attachmentUseCase := usecase.NewAttachmentUseCase(st.orders, blobs, usecase.AttachmentConfig{
		MaxSize: cfg.Blob.MaxSize,
		Timeout: cfg.Blob.Timeout,
	}, logger)
	authUseCase := usecase.NewAuthUseCase(st.users, sessions, notify.NewLogResetNotifier(logger), usecase.AuthConfig{
		SessionTTL: cfg.Auth.SessionTTL,
		ResetTTL:   cfg.Auth.ResetTTL,
	}, logger)
	suggestionUseCase := usecase.NewSuggestionUseCase(suggester, logger)

	d.auth = authUseCase
	d.attachments = attachmentUseCase
	d.handlers = Handlers{
		Orders:      handlers.NewOrderHandler(orderUseCase, queryUseCase),
		Attachments: handlers.NewAttachmentHandler(attachmentUseCase, cfg.Blob.MaxSize),
		Roster:      handlers.NewRosterHandler(rosterUseCase),
		Auth:        handlers.NewAuthHandler(authUseCase),
		Suggestion:  handlers.NewSuggestionHandler(suggestionUseCase),
		Export:      handlers.NewExportHandler(queryUseCase),
	}
	return d, nil
}

func buildStores(ctx context.Context, cfg config.StoreConfig, logger *zap.Logger) (stores, error) {
	if cfg.Driver == config.StoreDriverMemory {
		logger.Warn("using in-memory store; data is lost on restart")
		return stores{
			orders:    repository.NewOrderMemoryRepository(),
			employees: repository.NewEmployeeMemoryRepository(),
			users:     repository.NewUserMemoryRepository(),
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return stores{}, err
	}
	if cfg.CreateTables {
		if err := database.EnsureTables(ctx, ddb, cfg); err != nil {
			return stores{}, fmt.Errorf("failed to provision tables: %w", err)
		}
		logger.Info("dynamodb tables ready",
			zap.String("orders", cfg.OrdersTable),
			zap.String("employees", cfg.EmployeesTable),
			zap.String("users", cfg.UsersTable),
		)
	}
	return stores{
		orders:    repository.NewOrderDynamoRepository(ddb, cfg.OrdersTable),
		employees: repository.NewEmployeeDynamoRepository(ddb, cfg.EmployeesTable),
		users:     repository.NewUserDynamoRepository(ddb, cfg.UsersTable),
	}, nil
}

func buildSessions(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger, d *dependencies) (interfaces.ISessionStore, error) {
	if cfg.Addr == "" {
		logger.Warn("REDIS_ADDR not set; sessions are kept in memory")
		return session.NewMemorySessionStore(), nil
	}

	client := cache.NewRedisClient(cfg)
	d.closers = append(d.closers, func() { _ = client.Close() })
	if err := cache.Ping(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.Addr, err)
	}
	return session.NewRedisSessionStore(client), nil
}

func buildEvents(cfg config.MQTTConfig, logger *zap.Logger, d *dependencies) (interfaces.IEventPublisher, error) {
	if !cfg.Enabled {
		return notify.NoopPublisher{}, nil
	}

	client, err := notify.ConnectMQTT(cfg)
	if err != nil {
		return nil, err
	}
	d.closers = append(d.closers, func() { client.Disconnect(250) })
	logger.Info("publishing order events", zap.String("broker", cfg.Broker), zap.String("topic", cfg.Topic))
	return notify.NewMQTTEventPublisher(client, cfg.Topic, cfg.QoS), nil
}
