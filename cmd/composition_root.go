package cmd

import (
	"log/slog"
	"os"

	"storefront/internal/adapters/out/kafka"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/customerrepo"
	"storefront/internal/adapters/out/postgres/outboxrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/jobs"
	"storefront/internal/notifications"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	queue      *kafka.NotificationQueue
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	queue, err := kafka.NewNotificationQueue(config.KafkaHost, config.KafkaNotificationsTopic)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		queue:      queue,
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}, nil
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) NotificationQueue() *kafka.NotificationQueue {
	return c.queue
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddProductCommandHandler() commands.AddProductCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddProductCommandHandler(f, productrepo.NewGormCatalogGateway(c.gormDB))
}

func (c *CompositionRoot) CreateRemoveProductCommandHandler() commands.RemoveProductCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveProductCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveAllProductsCommandHandler() commands.RemoveAllProductsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveAllProductsCommandHandler(f)
}

func (c *CompositionRoot) CreateReleasePaymentCommandHandler() commands.ReleasePaymentCommandHandler {
	return commands.NewReleasePaymentCommandHandler(c.notifyingUoWFactory(), c.transitionNotifier())
}

func (c *CompositionRoot) CreateReleaseDeliveryCommandHandler() commands.ReleaseDeliveryCommandHandler {
	return commands.NewReleaseDeliveryCommandHandler(c.notifyingUoWFactory(), c.transitionNotifier())
}

func (c *CompositionRoot) CreateFinishOrderCommandHandler() commands.FinishOrderCommandHandler {
	return commands.NewFinishOrderCommandHandler(c.notifyingUoWFactory(), c.transitionNotifier())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.notifyingUoWFactory(), c.transitionNotifier())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		outboxrepo.NewGormNotificationOutboxRepository(c.gormDB),
		c.queue,
		c.logger,
	)
}

func (c *CompositionRoot) CreateNotificationWorker() (*notifications.Worker, error) {
	consumer, err := kafka.NewNotificationConsumer(
		c.config.KafkaHost,
		c.config.KafkaNotificationsTopic,
		c.config.KafkaConsumerGroup,
	)
	if err != nil {
		return nil, err
	}

	registry := notifications.NewSenderRegistry()
	registry.Register(c.config.NotificationSenderKey, notifications.NewLogSender(c.logger))

	dispatcher := notifications.NewDispatcher(registry, c.logger)
	return notifications.NewWorker(consumer, dispatcher, c.config.NotificationWorkerJobs, c.logger), nil
}

func (c *CompositionRoot) notifyingUoWFactory() commands.NotifyingUoWFactory {
	return FuncNotifyingUoWFactory(func() commands.NotifyingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) transitionNotifier() commands.TransitionNotifier {
	return commands.NewTransitionNotifier(
		customerrepo.NewGormContactDirectory(c.gormDB),
		c.queue,
		outboxrepo.NewGormNotificationOutboxRepository(c.gormDB),
		c.config.NotificationSenderKey,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncNotifyingUoWFactory func() commands.NotifyingUoW

func (f FuncNotifyingUoWFactory) Create() commands.NotifyingUoW {
	return f()
}
