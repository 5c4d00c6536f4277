package mapper

import (
	"sales-crm-be/internal/entity"
	"sales-crm-be/internal/model"
)

type QuotationMapper struct{}

func NewQuotationMapper() *QuotationMapper {
	return &QuotationMapper{}
}

func (m *QuotationMapper) ToEntity(q *model.Quotation) *entity.Quotation {
	if q == nil {
		return nil
	}
	return &entity.Quotation{
		Id:          q.Id,
		QuoteNumber: q.QuoteNumber,
		AccountId:   q.AccountId,
		ContactId:   q.ContactId,
		Status:      entity.QuotationStatus(q.Status),
		TotalAmount: q.TotalAmount,
		ValidUntil:  q.ValidUntil,
		CreatedBy:   q.CreatedBy,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func (m *QuotationMapper) ToModel(q *entity.Quotation) *model.Quotation {
	if q == nil {
		return nil
	}
	return &model.Quotation{
		Id:          q.Id,
		QuoteNumber: q.QuoteNumber,
		AccountId:   q.AccountId,
		ContactId:   q.ContactId,
		Status:      string(q.Status),
		TotalAmount: q.TotalAmount,
		ValidUntil:  q.ValidUntil,
		CreatedBy:   q.CreatedBy,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func (m *QuotationMapper) ToEntities(quotations []*model.Quotation) []*entity.Quotation {
	entities := make([]*entity.Quotation, len(quotations))
	for i, q := range quotations {
		entities[i] = m.ToEntity(q)
	}
	return entities
}

func (m *QuotationMapper) ProductToEntity(p *model.QuotationProduct) *entity.QuotationProduct {
	if p == nil {
		return nil
	}
	return &entity.QuotationProduct{
		Id:          p.Id,
		QuotationId: p.QuotationId,
		ProductName: p.ProductName,
		ProductCode: p.ProductCode,
		Quantity:    p.Quantity,
		UnitPrice:   p.UnitPrice,
		Discount:    p.Discount,
		LineTotal:   p.LineTotal,
		CreatedAt:   p.CreatedAt,
	}
}

func (m *QuotationMapper) ProductToModel(p *entity.QuotationProduct) *model.QuotationProduct {
	if p == nil {
		return nil
	}
	return &model.QuotationProduct{
		Id:          p.Id,
		QuotationId: p.QuotationId,
		ProductName: p.ProductName,
		ProductCode: p.ProductCode,
		Quantity:    p.Quantity,
		UnitPrice:   p.UnitPrice,
		Discount:    p.Discount,
		LineTotal:   p.LineTotal,
		CreatedAt:   p.CreatedAt,
	}
}

func (m *QuotationMapper) ProductsToEntities(products []*model.QuotationProduct) []*entity.QuotationProduct {
	entities := make([]*entity.QuotationProduct, len(products))
	for i, p := range products {
		entities[i] = m.ProductToEntity(p)
	}
	return entities
}
