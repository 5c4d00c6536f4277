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

type IContactService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateContactRequest) (*dto.CreateContactResponse, error)
	Show(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) (*dto.ContactResponse, error)
	List(ctx context.Context, userId uuid.UUID, role string, q *dto.ListContactsQuery) ([]*dto.ContactResponse, error)
	Update(ctx context.Context, userId uuid.UUID, role string, req *dto.UpdateContactRequest) (*dto.UpdateContactResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) error
}

type contactService struct {
	uowFactory      unitofwork.RepositoryFactory
	activityService IActivityService
}

func NewContactService(
	uowFactory unitofwork.RepositoryFactory,
	activityService IActivityService,
) IContactService {
	return &contactService{
		uowFactory:      uowFactory,
		activityService: activityService,
	}
}

func (s *contactService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateContactRequest) (*dto.CreateContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if req.AccountId != nil {
		account, err := uow.AccountRepository().FindOne(ctx, specification.ByID{ID: *req.AccountId})
		if err != nil {
			return nil, err
		}
		if account == nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "account does not exist")
		}
	}

	contact := entity.Contact{
		Id:        uuid.New(),
		AccountId: req.AccountId,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Title:     req.Title,
		Status:    entity.ContactStatusActive,
		OwnerId:   userId,
		CreatedAt: time.Now(),
	}

	if err := uow.ContactRepository().Create(ctx, &contact); err != nil {
		return nil, err
	}

	s.activityService.Record(ctx, userId, "contact_created", "contact", contact.Id, map[string]interface{}{
		"email": contact.Email,
	})

	return &dto.CreateContactResponse{Id: contact.Id}, nil
}

func (s *contactService) Show(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) (*dto.ContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := append([]specification.Specification{specification.ByID{ID: id}},
		ownershipSpecs("owner_id", userId, role)...)
	contact, err := uow.ContactRepository().FindOne(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "contact not found")
	}

	return contactToResponse(contact), nil
}

func (s *contactService) List(ctx context.Context, userId uuid.UUID, role string, q *dto.ListContactsQuery) ([]*dto.ContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := ownershipSpecs("owner_id", userId, role)
	if q.AccountId != "" {
		accountId, err := uuid.Parse(q.AccountId)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "invalid account_id")
		}
		specs = append(specs, specification.ByAccountID{AccountID: accountId})
	}
	if q.Status != "" {
		specs = append(specs, specification.ByStatus{Status: q.Status})
	}
	specs = append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: q.Limit, Offset: q.Offset},
	)

	contacts, err := uow.ContactRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ContactResponse, len(contacts))
	for i, c := range contacts {
		result[i] = contactToResponse(c)
	}
	return result, nil
}

func (s *contactService) Update(ctx context.Context, userId uuid.UUID, role string, req *dto.UpdateContactRequest) (*dto.UpdateContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	contact, err := uow.ContactRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if contact == nil || !canAccess(contact.OwnerId, userId, role) {
		return nil, fiber.NewError(fiber.StatusNotFound, "contact not found")
	}

	contact.AccountId = req.AccountId
	contact.FirstName = req.FirstName
	contact.LastName = req.LastName
	contact.Email = req.Email
	contact.Phone = req.Phone
	contact.Title = req.Title
	if req.Status != "" {
		contact.Status = entity.ContactStatus(req.Status)
	}
	contact.UpdatedAt = time.Now()

	if err := uow.ContactRepository().Update(ctx, contact); err != nil {
		return nil, err
	}

	s.activityService.Record(ctx, userId, "contact_updated", "contact", contact.Id, nil)

	return &dto.UpdateContactResponse{Id: contact.Id}, nil
}

func (s *contactService) Delete(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	contact, err := uow.ContactRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if contact == nil || !canAccess(contact.OwnerId, userId, role) {
		return fiber.NewError(fiber.StatusNotFound, "contact not found")
	}

	if err := uow.ContactRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.activityService.Record(ctx, userId, "contact_deleted", "contact", id, nil)
	return nil
}

func contactToResponse(c *entity.Contact) *dto.ContactResponse {
	return &dto.ContactResponse{
		Id:        c.Id,
		AccountId: c.AccountId,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Title:     c.Title,
		Status:    string(c.Status),
		OwnerId:   c.OwnerId,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}
