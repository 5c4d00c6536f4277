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

type ILeadService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateLeadRequest) (*dto.CreateLeadResponse, error)
	Show(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) (*dto.LeadResponse, error)
	List(ctx context.Context, userId uuid.UUID, role string, q *dto.ListLeadsQuery) (*dto.ListLeadsResponse, error)
	UpdateStage(ctx context.Context, userId uuid.UUID, role string, req *dto.UpdateLeadStageRequest) (*dto.UpdateLeadStageResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) error
}

type leadService struct {
	uowFactory      unitofwork.RepositoryFactory
	activityService IActivityService
}

func NewLeadService(
	uowFactory unitofwork.RepositoryFactory,
	activityService IActivityService,
) ILeadService {
	return &leadService{
		uowFactory:      uowFactory,
		activityService: activityService,
	}
}

func (s *leadService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateLeadRequest) (*dto.CreateLeadResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stage := entity.LeadStageNew
	if req.Stage != "" {
		stage = entity.LeadStage(req.Stage)
	}

	lead := entity.Lead{
		Id:             uuid.New(),
		ContactId:      req.ContactId,
		AccountId:      req.AccountId,
		Source:         req.Source,
		Stage:          stage,
		Status:         entity.LeadStatusOpen,
		EstimatedValue: req.EstimatedValue,
		AssignedTo:     userId,
		CreatedAt:      time.Now(),
	}

	if err := uow.LeadRepository().Create(ctx, &lead); err != nil {
		return nil, err
	}

	s.activityService.Record(ctx, userId, "lead_created", "lead", lead.Id, map[string]interface{}{
		"stage":           string(lead.Stage),
		"estimated_value": lead.EstimatedValue,
	})

	return &dto.CreateLeadResponse{Id: lead.Id}, nil
}

func (s *leadService) Show(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) (*dto.LeadResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := append([]specification.Specification{specification.ByID{ID: id}},
		ownershipSpecs("assigned_to", userId, role)...)
	lead, err := uow.LeadRepository().FindOne(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "lead not found")
	}

	return leadToResponse(lead), nil
}

func (s *leadService) List(ctx context.Context, userId uuid.UUID, role string, q *dto.ListLeadsQuery) (*dto.ListLeadsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	filters := ownershipSpecs("assigned_to", userId, role)
	if q.Stage != "" {
		filters = append(filters, specification.ByStage{Stage: q.Stage})
	}
	if q.Status != "" {
		filters = append(filters, specification.ByStatus{Status: q.Status})
	}
	if q.Source != "" {
		filters = append(filters, specification.Filter("source", q.Source))
	}

	specs := append(append([]specification.Specification{}, filters...),
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: q.Limit, Offset: q.Offset},
	)

	leads, err := uow.LeadRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	// Pipeline total covers the whole filtered set, not just the page
	pipelineValue, err := uow.LeadRepository().SumEstimatedValue(ctx, filters...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.LeadResponse, len(leads))
	for i, l := range leads {
		result[i] = leadToResponse(l)
	}
	return &dto.ListLeadsResponse{
		Leads:         result,
		PipelineValue: pipelineValue,
	}, nil
}

func (s *leadService) UpdateStage(ctx context.Context, userId uuid.UUID, role string, req *dto.UpdateLeadStageRequest) (*dto.UpdateLeadStageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	lead, err := uow.LeadRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if lead == nil || !canAccess(lead.AssignedTo, userId, role) {
		return nil, fiber.NewError(fiber.StatusNotFound, "lead not found")
	}

	previous := lead.Stage
	lead.Stage = entity.LeadStage(req.Stage)
	if lead.Stage == entity.LeadStageClosedWon || lead.Stage == entity.LeadStageClosedLost {
		now := time.Now()
		lead.Status = entity.LeadStatusClosed
		lead.ClosedAt = &now
	} else {
		lead.Status = entity.LeadStatusOpen
		lead.ClosedAt = nil
	}
	lead.UpdatedAt = time.Now()

	if err := uow.LeadRepository().Update(ctx, lead); err != nil {
		return nil, err
	}

	s.activityService.Record(ctx, userId, "lead_stage_changed", "lead", lead.Id, map[string]interface{}{
		"from": string(previous),
		"to":   string(lead.Stage),
	})

	return &dto.UpdateLeadStageResponse{
		Id:     lead.Id,
		Stage:  string(lead.Stage),
		Status: string(lead.Status),
	}, nil
}

func (s *leadService) Delete(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	lead, err := uow.LeadRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if lead == nil || !canAccess(lead.AssignedTo, userId, role) {
		return fiber.NewError(fiber.StatusNotFound, "lead not found")
	}

	if err := uow.LeadRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.activityService.Record(ctx, userId, "lead_deleted", "lead", id, nil)
	return nil
}

func leadToResponse(l *entity.Lead) *dto.LeadResponse {
	var closedAt *string
	if l.ClosedAt != nil {
		v := l.ClosedAt.Format(time.RFC3339)
		closedAt = &v
	}
	return &dto.LeadResponse{
		Id:             l.Id,
		ContactId:      l.ContactId,
		AccountId:      l.AccountId,
		Source:         l.Source,
		Stage:          string(l.Stage),
		Status:         string(l.Status),
		EstimatedValue: l.EstimatedValue,
		AssignedTo:     l.AssignedTo,
		ClosedAt:       closedAt,
		CreatedAt:      l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      l.UpdatedAt.Format(time.RFC3339),
	}
}
