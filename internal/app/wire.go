//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	billingGateway "logiflow/internal/gateway/rest/billing"
	fleetGateway "logiflow/internal/gateway/rest/fleet"
	"logiflow/internal/handlers/amqp-consumer/order_created"
	"logiflow/internal/handlers/amqp-consumer/order_status_changed"
	assignment_post "logiflow/internal/handlers/rest/assignment_post"
	assignment_release_post "logiflow/internal/handlers/rest/assignment_release_post"
	courier_get "logiflow/internal/handlers/rest/courier_get"
	courier_post "logiflow/internal/handlers/rest/courier_post"
	courier_put "logiflow/internal/handlers/rest/courier_put"
	courier_rate_post "logiflow/internal/handlers/rest/courier_rate_post"
	couriers_get "logiflow/internal/handlers/rest/couriers_get"
	invoice_get_by_order "logiflow/internal/handlers/rest/invoice_get_by_order"
	invoice_post "logiflow/internal/handlers/rest/invoice_post"
	order_cancel_post "logiflow/internal/handlers/rest/order_cancel_post"
	order_get "logiflow/internal/handlers/rest/order_get"
	order_post "logiflow/internal/handlers/rest/order_post"
	order_status_put "logiflow/internal/handlers/rest/order_status_put"
	orders_get "logiflow/internal/handlers/rest/orders_get"
	"logiflow/internal/handlers/tasks/outbox_relay"
	"logiflow/internal/pkg/config"
	"logiflow/internal/pkg/factory/distance_policy"
	"logiflow/internal/pkg/factory/tariff_policy"
	"logiflow/internal/pkg/notifier"
	"logiflow/internal/pkg/rabbitmq"

	assignmentRepo "logiflow/internal/repository/assignment"
	courierRepo "logiflow/internal/repository/courier"
	inboxRepo "logiflow/internal/repository/inbox"
	invoiceRepo "logiflow/internal/repository/invoice"
	notificationRepo "logiflow/internal/repository/notification"
	orderRepo "logiflow/internal/repository/order"
	outboxRepo "logiflow/internal/repository/outbox"
	billingService "logiflow/internal/service/billing"
	courierService "logiflow/internal/service/courier"
	fleetService "logiflow/internal/service/fleet"
	notificationService "logiflow/internal/service/notification"
	orderService "logiflow/internal/service/order"

	"logiflow/pkg/background"
	"logiflow/pkg/logger"
	"logiflow/pkg/querier"
	"logiflow/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	OutboxRelayInterval  time.Duration
	OutboxRelayBatchSize int
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceFleet      ServiceFleet
	ServiceBilling    ServiceBilling
	ServiceCourier    ServiceCourier
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	orders_get.Service
	order_cancel_post.Service
	order_status_put.Service
}

type ServiceFleet interface {
	assignment_post.Service
	assignment_release_post.Service
}

type ServiceBilling interface {
	invoice_post.Service
	invoice_get_by_order.Service
}

type ServiceCourier interface {
	courier_get.Service
	courier_post.Service
	courier_put.Service
	couriers_get.Service
	courier_rate_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	rabbit *rabbitmq.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideHTTPClient,
		provideOutboxRelayInterval,
		provideOutboxRelayBatchSize,

		provideOrderRepository,
		provideCourierRepository,
		provideAssignmentRepository,
		provideInvoiceRepository,
		provideOutboxRepository,

		provideBillingGateway,
		provideFleetGateway,
		distance_policy.New,
		tariff_policy.New,

		provideServiceOrder,
		provideServiceFleet,
		provideServiceBilling,
		provideServiceCourier,

		provideOutboxRelayTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceFleet), new(*fleetService.Fleet)),
		wire.Bind(new(ServiceBilling), new(*billingService.Billing)),
		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.OutboxRepository), new(*outboxRepo.Repository)),
		wire.Bind(new(orderService.BillingGateway), new(*billingGateway.BillingGateway)),
		wire.Bind(new(orderService.FleetGateway), new(*fleetGateway.FleetGateway)),
		wire.Bind(new(orderService.DistancePolicy), new(*distance_policy.DistanceFactory)),
		wire.Bind(new(fleetService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(fleetService.AssignmentRepository), new(*assignmentRepo.Repository)),
		wire.Bind(new(billingService.Repository), new(*invoiceRepo.Repository)),
		wire.Bind(new(billingService.TariffPolicy), new(*tariff_policy.TariffFactory)),
		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(fleetService.TxManager), new(*tx.Manager)),
		wire.Bind(new(billingService.TxManager), new(*tx.Manager)),
		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),

		wire.Bind(new(outbox_relay.OutboxRepository), new(*outboxRepo.Repository)),
		wire.Bind(new(outbox_relay.Publisher), new(*rabbitmq.Client)),
		wire.Bind(new(outbox_relay.TxManager), new(*tx.Manager)),
	)
	return &Application{}, nil
}

type RabbitWorkerApp struct {
	OrderCreatedHandler       *order_created.Handler
	OrderStatusChangedHandler *order_status_changed.Handler
}

// InitializeRabbitWorkerApp для AMQP воркера (cmd/worker-notifications)
func InitializeRabbitWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*RabbitWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideInboxRepository,
		provideNotificationRepository,
		provideLogSender,
		provideServiceNotification,

		provideOrderCreatedHandler,
		provideOrderStatusChangedHandler,

		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),
		wire.Bind(new(notificationService.Sender), new(*notifier.LogSender)),

		wire.Bind(new(order_created.Service), new(*notificationService.Notification)),
		wire.Bind(new(order_created.InboxRepository), new(*inboxRepo.Repository)),
		wire.Bind(new(order_created.TxManager), new(*tx.Manager)),
		wire.Bind(new(order_status_changed.Service), new(*notificationService.Notification)),
		wire.Bind(new(order_status_changed.InboxRepository), new(*inboxRepo.Repository)),
		wire.Bind(new(order_status_changed.TxManager), new(*tx.Manager)),

		wire.Struct(new(RabbitWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideHTTPClient() *http.Client {
	return &http.Client{}
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideAssignmentRepository(querier *querier.Querier) *assignmentRepo.Repository {
	return assignmentRepo.New(querier)
}

func provideInvoiceRepository(querier *querier.Querier) *invoiceRepo.Repository {
	return invoiceRepo.New(querier)
}

func provideOutboxRepository(querier *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(querier)
}

func provideInboxRepository(querier *querier.Querier) *inboxRepo.Repository {
	return inboxRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideBillingGateway(cfg *config.Config, client *http.Client) *billingGateway.BillingGateway {
	return billingGateway.New(cfg.Gateways.BillingBaseURL, client, cfg.Gateways.RequestTimeout)
}

func provideFleetGateway(cfg *config.Config, client *http.Client) *fleetGateway.FleetGateway {
	return fleetGateway.New(cfg.Gateways.FleetBaseURL, client, cfg.Gateways.RequestTimeout)
}

func provideServiceOrder(
	log logger.Logger,
	repository orderService.Repository,
	outbox orderService.OutboxRepository,
	billing orderService.BillingGateway,
	fleet orderService.FleetGateway,
	distancePolicy orderService.DistancePolicy,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(log, repository, outbox, billing, fleet, distancePolicy, txManager)
}

func provideServiceFleet(
	couriers fleetService.CourierRepository,
	assignments fleetService.AssignmentRepository,
	txManager fleetService.TxManager,
) *fleetService.Fleet {
	return fleetService.New(couriers, assignments, txManager)
}

func provideServiceBilling(
	repository billingService.Repository,
	tariffPolicy billingService.TariffPolicy,
	txManager billingService.TxManager,
) *billingService.Billing {
	return billingService.New(repository, tariffPolicy, txManager)
}

func provideServiceCourier(
	repository courierService.Repository,
	txManager courierService.TxManager,
) *courierService.Courier {
	return courierService.New(repository, txManager)
}

func provideLogSender(log logger.Logger) *notifier.LogSender {
	return notifier.NewLogSender(log)
}

func provideServiceNotification(
	log logger.Logger,
	repository notificationService.Repository,
	sender notificationService.Sender,
) *notificationService.Notification {
	return notificationService.New(log, repository, sender)
}

func provideOrderCreatedHandler(
	log logger.Logger,
	service order_created.Service,
	inbox order_created.InboxRepository,
	txManager order_created.TxManager,
	cfg *config.Config,
) *order_created.Handler {
	return order_created.New(log, service, inbox, txManager, cfg.Rabbit.Handlers.OrderCreated.ProcessTimeout)
}

func provideOrderStatusChangedHandler(
	log logger.Logger,
	service order_status_changed.Service,
	inbox order_status_changed.InboxRepository,
	txManager order_status_changed.TxManager,
	cfg *config.Config,
) *order_status_changed.Handler {
	return order_status_changed.New(log, service, inbox, txManager, cfg.Rabbit.Handlers.OrderStatusChanged.ProcessTimeout)
}

func provideOutboxRelayInterval(cfg *config.Config) OutboxRelayInterval {
	return OutboxRelayInterval(cfg.Tasks.OutboxRelayInterval)
}

func provideOutboxRelayBatchSize(cfg *config.Config) OutboxRelayBatchSize {
	return OutboxRelayBatchSize(cfg.Tasks.OutboxRelayBatchSize)
}

func provideOutboxRelayTask(
	outbox outbox_relay.OutboxRepository,
	publisher outbox_relay.Publisher,
	txManager outbox_relay.TxManager,
	interval OutboxRelayInterval,
	batchSize OutboxRelayBatchSize,
) *outbox_relay.OutboxRelay {
	return outbox_relay.New(outbox, publisher, txManager, time.Duration(interval), int(batchSize))
}

func provideTaskList(
	outboxRelayTask *outbox_relay.OutboxRelay,
) []background.Task {
	return []background.Task{
		outboxRelayTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
