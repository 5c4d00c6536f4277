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

type IAccountService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateAccountRequest) (*dto.CreateAccountResponse, error)
	Show(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) (*dto.AccountResponse, error)
	List(ctx context.Context, userId uuid.UUID, role string, q *dto.ListAccountsQuery) ([]*dto.AccountResponse, error)
	Update(ctx context.Context, userId uuid.UUID, role string, req *dto.UpdateAccountRequest) (*dto.UpdateAccountResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) error
}

type accountService struct {
	uowFactory      unitofwork.RepositoryFactory
	activityService IActivityService
}

func NewAccountService(
	uowFactory unitofwork.RepositoryFactory,
	activityService IActivityService,
) IAccountService {
	return &accountService{
		uowFactory:      uowFactory,
		activityService: activityService,
	}
}

func (s *accountService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateAccountRequest) (*dto.CreateAccountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	account := entity.Account{
		Id:              uuid.New(),
		Name:            req.Name,
		Industry:        req.Industry,
		Region:          req.Region,
		Website:         req.Website,
		EngagementScore: req.EngagementScore,
		OwnerId:         userId,
		CreatedAt:       time.Now(),
	}

	if err := uow.AccountRepository().Create(ctx, &account); err != nil {
		return nil, err
	}

	s.activityService.Record(ctx, userId, "account_created", "account", account.Id, map[string]interface{}{
		"name": account.Name,
	})

	return &dto.CreateAccountResponse{Id: account.Id}, nil
}

func (s *accountService) Show(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) (*dto.AccountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := append([]specification.Specification{specification.ByID{ID: id}},
		ownershipSpecs("owner_id", userId, role)...)
	account, err := uow.AccountRepository().FindOne(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "account not found")
	}

	return accountToResponse(account), nil
}

func (s *accountService) List(ctx context.Context, userId uuid.UUID, role string, q *dto.ListAccountsQuery) ([]*dto.AccountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := ownershipSpecs("owner_id", userId, role)
	if q.Region != "" {
		specs = append(specs, specification.Filter("region", q.Region))
	}
	if q.Industry != "" {
		specs = append(specs, specification.Filter("industry", q.Industry))
	}
	specs = append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: q.Limit, Offset: q.Offset},
	)

	accounts, err := uow.AccountRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = accountToResponse(a)
	}
	return result, nil
}

func (s *accountService) Update(ctx context.Context, userId uuid.UUID, role string, req *dto.UpdateAccountRequest) (*dto.UpdateAccountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	account, err := uow.AccountRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if account == nil || !canAccess(account.OwnerId, userId, role) {
		return nil, fiber.NewError(fiber.StatusNotFound, "account not found")
	}

	account.Name = req.Name
	account.Industry = req.Industry
	account.Region = req.Region
	account.Website = req.Website
	account.EngagementScore = req.EngagementScore
	account.UpdatedAt = time.Now()

	if err := uow.AccountRepository().Update(ctx, account); err != nil {
		return nil, err
	}

	s.activityService.Record(ctx, userId, "account_updated", "account", account.Id, map[string]interface{}{
		"name": account.Name,
	})

	return &dto.UpdateAccountResponse{Id: account.Id}, nil
}

func (s *accountService) Delete(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	account, err := uow.AccountRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if account == nil || !canAccess(account.OwnerId, userId, role) {
		return fiber.NewError(fiber.StatusNotFound, "account not found")
	}

	if err := uow.AccountRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.activityService.Record(ctx, userId, "account_deleted", "account", id, nil)
	return nil
}

func accountToResponse(a *entity.Account) *dto.AccountResponse {
	return &dto.AccountResponse{
		Id:              a.Id,
		Name:            a.Name,
		Industry:        a.Industry,
		Region:          a.Region,
		Website:         a.Website,
		EngagementScore: a.EngagementScore,
		OwnerId:         a.OwnerId,
		CreatedAt:       a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       a.UpdatedAt.Format(time.RFC3339),
	}
}
