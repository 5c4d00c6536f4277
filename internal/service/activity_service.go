package service

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sales-crm-be/internal/dto"
	"sales-crm-be/internal/entity"
	"sales-crm-be/internal/pkg/logger"
	"sales-crm-be/internal/repository/specification"
	"sales-crm-be/internal/repository/unitofwork"
	"sales-crm-be/pkg/events"
	natspkg "sales-crm-be/pkg/nats"
)

// IActivityService records CRM mutations on the audit trail. Recording is
// best-effort: a bus outage must never fail the mutation that triggered it.
// Reading the trail is restricted to privileged roles.
type IActivityService interface {
	Record(ctx context.Context, actorId uuid.UUID, action, objectType string, objectId uuid.UUID, details map[string]interface{})
	List(ctx context.Context, role string, q *dto.ListActivityLogsQuery) (*dto.ListActivityLogsResponse, error)
}

type activityService struct {
	publisher  *natspkg.Publisher
	uowFactory unitofwork.RepositoryFactory
	sysLogger  logger.ILogger
}

func NewActivityService(
	publisher *natspkg.Publisher,
	uowFactory unitofwork.RepositoryFactory,
	sysLogger logger.ILogger,
) IActivityService {
	return &activityService{
		publisher:  publisher,
		uowFactory: uowFactory,
		sysLogger:  sysLogger,
	}
}

func (s *activityService) Record(ctx context.Context, actorId uuid.UUID, action, objectType string, objectId uuid.UUID, details map[string]interface{}) {
	if s.publisher != nil {
		event := events.NewActivityEvent(action, objectType, objectId, actorId, details)
		if err := s.publisher.Publish(ctx, event); err == nil {
			return
		} else {
			s.sysLogger.Warn("activity", "event publish failed, writing log row directly", map[string]interface{}{
				"action": action,
				"error":  err.Error(),
			})
		}
	}

	// Fallback: persist synchronously so the trail stays complete
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
	if err := uow.ActivityLogRepository().Create(ctx, log); err != nil {
		s.sysLogger.Error("activity", "failed to persist activity log", map[string]interface{}{
			"action": action,
			"error":  err.Error(),
		})
	}
}

func (s *activityService) List(ctx context.Context, role string, q *dto.ListActivityLogsQuery) (*dto.ListActivityLogsResponse, error) {
	if !isPrivileged(role) {
		return nil, fiber.NewError(fiber.StatusForbidden, "audit trail requires a privileged role")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	var filters []specification.Specification
	if q.Action != "" {
		filters = append(filters, specification.Filter("action", q.Action))
	}
	if q.ObjectType != "" {
		filters = append(filters, specification.Filter("object_type", q.ObjectType))
	}
	if q.Since != "" {
		cutoff, err := time.Parse(time.RFC3339, q.Since)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "since must be RFC3339")
		}
		filters = append(filters, specification.CreatedAfter{Cutoff: cutoff})
	}

	total, err := uow.ActivityLogRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	specs := append(append([]specification.Specification{}, filters...),
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: q.Limit, Offset: q.Offset},
	)

	logs, err := uow.ActivityLogRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ActivityLogResponse, len(logs))
	for i, l := range logs {
		result[i] = &dto.ActivityLogResponse{
			Id:         l.Id,
			ActorId:    l.ActorId,
			Action:     l.Action,
			ObjectType: l.ObjectType,
			ObjectId:   l.ObjectId,
			Details:    l.Details,
			CreatedAt:  l.CreatedAt.Format(time.RFC3339),
		}
	}

	return &dto.ListActivityLogsResponse{
		Logs:  result,
		Total: total,
	}, nil
}
