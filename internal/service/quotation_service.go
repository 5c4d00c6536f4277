package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sales-crm-be/internal/dto"
	"sales-crm-be/internal/entity"
	"sales-crm-be/internal/pkg/logger"
	"sales-crm-be/internal/pkg/mailer"
	"sales-crm-be/internal/repository/specification"
	"sales-crm-be/internal/repository/unitofwork"
)

type IQuotationService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateQuotationRequest) (*dto.CreateQuotationResponse, error)
	Show(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) (*dto.QuotationResponse, error)
	List(ctx context.Context, userId uuid.UUID, role string, q *dto.ListQuotationsQuery) ([]*dto.QuotationResponse, error)
	Send(ctx context.Context, userId uuid.UUID, role string, req *dto.SendQuotationRequest) (*dto.SendQuotationResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) error
}

type quotationService struct {
	uowFactory      unitofwork.RepositoryFactory
	emailService    mailer.IEmailService
	activityService IActivityService
	sysLogger       logger.ILogger
}

func NewQuotationService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	activityService IActivityService,
	sysLogger logger.ILogger,
) IQuotationService {
	return &quotationService{
		uowFactory:      uowFactory,
		emailService:    emailService,
		activityService: activityService,
		sysLogger:       sysLogger,
	}
}

func (s *quotationService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateQuotationRequest) (*dto.CreateQuotationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	account, err := uow.AccountRepository().FindOne(ctx, specification.ByID{ID: req.AccountId})
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "account does not exist")
	}

	var validUntil *time.Time
	if req.ValidUntil != nil && *req.ValidUntil != "" {
		parsed, err := time.Parse(time.RFC3339, *req.ValidUntil)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "valid_until must be RFC3339")
		}
		validUntil = &parsed
	}

	quotation := entity.Quotation{
		Id:          uuid.New(),
		QuoteNumber: newQuoteNumber(),
		AccountId:   req.AccountId,
		ContactId:   req.ContactId,
		Status:      entity.QuotationStatusDraft,
		ValidUntil:  validUntil,
		CreatedBy:   userId,
		CreatedAt:   time.Now(),
	}

	var total float64
	products := make([]*entity.QuotationProduct, 0, len(req.Products))
	for _, line := range req.Products {
		lineTotal := float64(line.Quantity) * line.UnitPrice * (1 - line.Discount/100)
		total += lineTotal
		products = append(products, &entity.QuotationProduct{
			Id:          uuid.New(),
			QuotationId: quotation.Id,
			ProductName: line.ProductName,
			ProductCode: line.ProductCode,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Discount:    line.Discount,
			LineTotal:   lineTotal,
			CreatedAt:   time.Now(),
		})
	}
	quotation.TotalAmount = total

	// Header and line items commit together
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.QuotationRepository().Create(ctx, &quotation); err != nil {
		return nil, err
	}
	for _, product := range products {
		if err := uow.QuotationRepository().CreateProduct(ctx, product); err != nil {
			return nil, err
		}
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.activityService.Record(ctx, userId, "quotation_created", "quotation", quotation.Id, map[string]interface{}{
		"quote_number": quotation.QuoteNumber,
		"total_amount": quotation.TotalAmount,
	})

	return &dto.CreateQuotationResponse{
		Id:          quotation.Id,
		QuoteNumber: quotation.QuoteNumber,
		TotalAmount: quotation.TotalAmount,
	}, nil
}

func (s *quotationService) Show(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) (*dto.QuotationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := append([]specification.Specification{specification.ByID{ID: id}},
		ownershipSpecs("created_by", userId, role)...)
	quotation, err := uow.QuotationRepository().FindOne(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "quotation not found")
	}

	products, err := uow.QuotationRepository().FindProducts(ctx, quotation.Id)
	if err != nil {
		return nil, err
	}
	quotation.Products = products

	return quotationToResponse(quotation), nil
}

func (s *quotationService) List(ctx context.Context, userId uuid.UUID, role string, q *dto.ListQuotationsQuery) ([]*dto.QuotationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := ownershipSpecs("created_by", userId, role)
	if q.Status != "" {
		specs = append(specs, specification.ByStatus{Status: q.Status})
	}
	specs = append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: q.Limit, Offset: q.Offset},
	)

	quotations, err := uow.QuotationRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.QuotationResponse, len(quotations))
	for i, quotation := range quotations {
		result[i] = quotationToResponse(quotation)
	}
	return result, nil
}

func (s *quotationService) Send(ctx context.Context, userId uuid.UUID, role string, req *dto.SendQuotationRequest) (*dto.SendQuotationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	quotation, err := uow.QuotationRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if quotation == nil || !canAccess(quotation.CreatedBy, userId, role) {
		return nil, fiber.NewError(fiber.StatusNotFound, "quotation not found")
	}

	account, err := uow.AccountRepository().FindOne(ctx, specification.ByID{ID: quotation.AccountId})
	if err != nil {
		return nil, err
	}

	products, err := uow.QuotationRepository().FindProducts(ctx, quotation.Id)
	if err != nil {
		return nil, err
	}

	email := mailer.QuotationEmail{
		QuoteNumber: quotation.QuoteNumber,
		TotalAmount: quotation.TotalAmount,
	}
	if account != nil {
		email.AccountName = account.Name
	}
	if quotation.ValidUntil != nil {
		email.ValidUntil = quotation.ValidUntil.Format("2006-01-02")
	}
	for _, p := range products {
		email.Lines = append(email.Lines, mailer.QuotationLine{
			ProductName: p.ProductName,
			Quantity:    p.Quantity,
			UnitPrice:   p.UnitPrice,
			LineTotal:   p.LineTotal,
		})
	}

	if err := s.emailService.SendQuotation(req.ToEmail, email); err != nil {
		s.sysLogger.Error("quotation", "email delivery failed", map[string]interface{}{
			"quote_number": quotation.QuoteNumber,
			"error":        err.Error(),
		})
		return nil, fiber.NewError(fiber.StatusBadGateway, "failed to deliver quotation email")
	}

	quotation.Status = entity.QuotationStatusSent
	quotation.UpdatedAt = time.Now()
	if err := uow.QuotationRepository().Update(ctx, quotation); err != nil {
		return nil, err
	}

	s.activityService.Record(ctx, userId, "quotation_sent", "quotation", quotation.Id, map[string]interface{}{
		"to": req.ToEmail,
	})

	return &dto.SendQuotationResponse{
		Id:     quotation.Id,
		Status: string(quotation.Status),
	}, nil
}

func (s *quotationService) Delete(ctx context.Context, userId uuid.UUID, role string, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	quotation, err := uow.QuotationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if quotation == nil || !canAccess(quotation.CreatedBy, userId, role) {
		return fiber.NewError(fiber.StatusNotFound, "quotation not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.QuotationRepository().DeleteProductsByQuotationId(ctx, id); err != nil {
		return err
	}
	if err := uow.QuotationRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.activityService.Record(ctx, userId, "quotation_deleted", "quotation", id, nil)
	return nil
}

func newQuoteNumber() string {
	return fmt.Sprintf("Q-%s-%s", time.Now().Format("20060102"), uuid.NewString()[:8])
}

func quotationToResponse(q *entity.Quotation) *dto.QuotationResponse {
	var validUntil *string
	if q.ValidUntil != nil {
		v := q.ValidUntil.Format(time.RFC3339)
		validUntil = &v
	}
	lines := make([]dto.QuotationLineResponse, len(q.Products))
	for i, p := range q.Products {
		lines[i] = dto.QuotationLineResponse{
			ProductName: p.ProductName,
			ProductCode: p.ProductCode,
			Quantity:    p.Quantity,
			UnitPrice:   p.UnitPrice,
			Discount:    p.Discount,
			LineTotal:   p.LineTotal,
		}
	}
	return &dto.QuotationResponse{
		Id:          q.Id,
		QuoteNumber: q.QuoteNumber,
		AccountId:   q.AccountId,
		ContactId:   q.ContactId,
		Status:      string(q.Status),
		TotalAmount: q.TotalAmount,
		ValidUntil:  validUntil,
		CreatedBy:   q.CreatedBy,
		CreatedAt:   q.CreatedAt.Format(time.RFC3339),
		Products:    lines,
	}
}
