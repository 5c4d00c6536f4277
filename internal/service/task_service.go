package service

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sales-crm-be/internal/dto"
	"sales-crm-be/internal/entity"
	"sales-crm-be/internal/repository/specification"
	"sales-crm-be/internal/repository/unitofwork"
)

type ITaskService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTaskRequest) (*dto.CreateTaskResponse, error)
	Show(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) (*dto.TaskResponse, error)
	List(ctx context.Context, userId uuid.UUID, role string, q *dto.ListTasksQuery) ([]*dto.TaskResponse, error)
	Complete(ctx context.Context, userId uuid.UUID, role string, req *dto.CompleteTaskRequest) (*dto.CompleteTaskResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) error
}

type taskService struct {
	uowFactory      unitofwork.RepositoryFactory
	activityService IActivityService
}

func NewTaskService(
	uowFactory unitofwork.RepositoryFactory,
	activityService IActivityService,
) ITaskService {
	return &taskService{
		uowFactory:      uowFactory,
		activityService: activityService,
	}
}

func (s *taskService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTaskRequest) (*dto.CreateTaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var dueAt *time.Time
	if req.DueAt != nil && *req.DueAt != "" {
		parsed, err := time.Parse(time.RFC3339, *req.DueAt)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "due_at must be RFC3339")
		}
		dueAt = &parsed
	}

	activity := entity.SalesActivity{
		Id:           uuid.New(),
		Subject:      req.Subject,
		ActivityType: entity.ActivityType(req.ActivityType),
		Status:       entity.ActivityStatusPending,
		Notes:        req.Notes,
		LeadId:       req.LeadId,
		AccountId:    req.AccountId,
		AssignedTo:   userId,
		DueAt:        dueAt,
		CreatedAt:    time.Now(),
	}

	if err := uow.SalesActivityRepository().Create(ctx, &activity); err != nil {
		return nil, err
	}

	s.activityService.Record(ctx, userId, "task_created", "sales_activity", activity.Id, map[string]interface{}{
		"subject": activity.Subject,
		"type":    string(activity.ActivityType),
	})

	return &dto.CreateTaskResponse{Id: activity.Id}, nil
}

func (s *taskService) Show(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) (*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := append([]specification.Specification{specification.ByID{ID: id}},
		ownershipSpecs("assigned_to", userId, role)...)
	activity, err := uow.SalesActivityRepository().FindOne(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "task not found")
	}

	return taskToResponse(activity), nil
}

func (s *taskService) List(ctx context.Context, userId uuid.UUID, role string, q *dto.ListTasksQuery) ([]*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := ownershipSpecs("assigned_to", userId, role)
	if q.Status != "" {
		specs = append(specs, specification.ByStatus{Status: q.Status})
	}
	if q.Type != "" {
		specs = append(specs, specification.Filter("activity_type", q.Type))
	}
	if q.DueBefore != "" {
		cutoff, err := time.Parse(time.RFC3339, q.DueBefore)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "due_before must be RFC3339")
		}
		specs = append(specs, specification.DueBefore{Cutoff: cutoff})
	}
	specs = append(specs,
		specification.OrderBy{Field: "due_at", Desc: false},
		specification.Pagination{Limit: q.Limit, Offset: q.Offset},
	)

	activities, err := uow.SalesActivityRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TaskResponse, len(activities))
	for i, a := range activities {
		result[i] = taskToResponse(a)
	}
	return result, nil
}

func (s *taskService) Complete(ctx context.Context, userId uuid.UUID, role string, req *dto.CompleteTaskRequest) (*dto.CompleteTaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	activity, err := uow.SalesActivityRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if activity == nil || !canAccess(activity.AssignedTo, userId, role) {
		return nil, fiber.NewError(fiber.StatusNotFound, "task not found")
	}
	if activity.Status == entity.ActivityStatusCompleted {
		return nil, fiber.NewError(fiber.StatusConflict, "task already completed")
	}

	now := time.Now()
	activity.Status = entity.ActivityStatusCompleted
	activity.CompletedAt = &now
	if req.Notes != nil {
		activity.Notes = req.Notes
	}
	activity.UpdatedAt = now

	if err := uow.SalesActivityRepository().Update(ctx, activity); err != nil {
		return nil, err
	}

	s.activityService.Record(ctx, userId, "task_completed", "sales_activity", activity.Id, nil)

	return &dto.CompleteTaskResponse{
		Id:          activity.Id,
		Status:      string(activity.Status),
		CompletedAt: now.Format(time.RFC3339),
	}, nil
}

func (s *taskService) Delete(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	activity, err := uow.SalesActivityRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if activity == nil || !canAccess(activity.AssignedTo, userId, role) {
		return fiber.NewError(fiber.StatusNotFound, "task not found")
	}

	if err := uow.SalesActivityRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.activityService.Record(ctx, userId, "task_deleted", "sales_activity", id, nil)
	return nil
}

func taskToResponse(a *entity.SalesActivity) *dto.TaskResponse {
	var dueAt, completedAt *string
	if a.DueAt != nil {
		v := a.DueAt.Format(time.RFC3339)
		dueAt = &v
	}
	if a.CompletedAt != nil {
		v := a.CompletedAt.Format(time.RFC3339)
		completedAt = &v
	}
	return &dto.TaskResponse{
		Id:           a.Id,
		Subject:      a.Subject,
		ActivityType: string(a.ActivityType),
		Status:       string(a.Status),
		Notes:        a.Notes,
		LeadId:       a.LeadId,
		AccountId:    a.AccountId,
		AssignedTo:   a.AssignedTo,
		DueAt:        dueAt,
		CompletedAt:  completedAt,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
	}
}
