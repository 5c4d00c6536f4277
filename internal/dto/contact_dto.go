package dto

import "github.com/google/uuid"

type CreateContactRequest struct {
	AccountId *uuid.UUID `json:"account_id"`
	FirstName string     `json:"first_name" validate:"required,min=1"`
	LastName  string     `json:"last_name" validate:"required,min=1"`
	Email     string     `json:"email" validate:"omitempty,email"`
	Phone     *string    `json:"phone"`
	Title     *string    `json:"title"`
}

type CreateContactResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateContactRequest struct {
	Id        uuid.UUID
	AccountId *uuid.UUID `json:"account_id"`
	FirstName string     `json:"first_name" validate:"required,min=1"`
	LastName  string     `json:"last_name" validate:"required,min=1"`
	Email     string     `json:"email" validate:"omitempty,email"`
	Phone     *string    `json:"phone"`
	Title     *string    `json:"title"`
	Status    string     `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateContactResponse struct {
	Id uuid.UUID `json:"id"`
}

type ContactResponse struct {
	Id        uuid.UUID  `json:"id"`
	AccountId *uuid.UUID `json:"account_id,omitempty"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone,omitempty"`
	Title     *string    `json:"title,omitempty"`
	Status    string     `json:"status"`
	OwnerId   uuid.UUID  `json:"owner_id"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
}

type ListContactsQuery struct {
	AccountId string `query:"account_id"`
	Status    string `query:"status"`
	Limit     int    `query:"limit"`
	Offset    int    `query:"offset"`
}
