package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sales-crm-be/internal/entity"
	"sales-crm-be/internal/pkg/logger"
	"sales-crm-be/internal/repository/unitofwork"
	"sales-crm-be/pkg/events"
	natspkg "sales-crm-be/pkg/nats"
)

// IActivityConsumerService drains activity events off the bus and writes
// the audit trail rows. Runs in the background from main.
type IActivityConsumerService interface {
	Consume(ctx context.Context) error
}

type activityConsumerService struct {
	subscriber *natspkg.Subscriber
	uowFactory unitofwork.RepositoryFactory
	sysLogger  logger.ILogger
}

func NewActivityConsumerService(
	subscriber *natspkg.Subscriber,
	uowFactory unitofwork.RepositoryFactory,
	sysLogger logger.ILogger,
) IActivityConsumerService {
	return &activityConsumerService{
		subscriber: subscriber,
		uowFactory: uowFactory,
		sysLogger:  sysLogger,
	}
}

func (s *activityConsumerService) Consume(ctx context.Context) error {
	if s.subscriber == nil {
		return fmt.Errorf("activity consumer: no subscriber available")
	}

	err := s.subscriber.Subscribe("crm.activity.>", "activity-log-writer", func(ctx context.Context, event events.Event) error {
		return s.persist(ctx, event)
	})
	if err != nil {
		return err
	}

	<-ctx.Done()
	return ctx.Err()
}

func (s *activityConsumerService) persist(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	action, _ := payload["action"].(string)
	objectType, _ := payload["object_type"].(string)
	if action == "" || objectType == "" {
		// Malformed event, ack and drop rather than redeliver forever
		s.sysLogger.Warn("activity", "dropping malformed activity event", map[string]interface{}{
			"subject": event.EventType(),
		})
		return nil
	}

	actorId := parseUUIDField(payload, "actor_id")
	objectId := parseUUIDField(payload, "object_id")
	details, _ := payload["details"].(map[string]interface{})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	log := &entity.ActivityLog{
		Id:         uuid.New(),
		ActorId:    actorId,
		Action:     action,
		ObjectType: objectType,
		ObjectId:   objectId,
		Details:    details,
		CreatedAt:  time.Now(),
	}
	return uow.ActivityLogRepository().Create(ctx, log)
}

func parseUUIDField(payload map[string]interface{}, key string) uuid.UUID {
	raw, _ := payload[key].(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}
