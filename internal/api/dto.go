package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/estateflow/estateflow/internal/models"
)

// CreateLandlordRequest is the request body for registering a landlord.
type CreateLandlordRequest struct {
	Name               string              `json:"name" example:"김건물" validate:"required"`
	Type               models.PartyType    `json:"type" example:"Individual" validate:"required"`
	RegistrationNumber string              `json:"registrationNumber,omitempty" example:"800101-1234567"`
	Phone              string              `json:"phone,omitempty" example:"010-1234-5678"`
	Email              string              `json:"email,omitempty" example:"owner@example.com"`
	BankAccount        *models.BankAccount `json:"bankAccount,omitempty"`
	Memo               string              `json:"memo,omitempty"`
}

// Validate implements request validation.
func (r CreateLandlordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Type, validation.Required, validation.In(models.PartyIndividual, models.PartyCorporate)),
		validation.Field(&r.Email, is.Email),
	)
}

// CreatePropertyRequest is the request body for registering a property.
type CreatePropertyRequest struct {
	LandlordID  string `json:"landlordId" example:"l1" validate:"required"`
	Name        string `json:"name" example:"강남 선샤인 빌라" validate:"required"`
	Address     string `json:"address" example:"서울특별시 강남구 테헤란로 123" validate:"required"`
	Type        string `json:"type" example:"빌라"`
	TotalFloors int    `json:"totalFloors" example:"4"`
}

// Validate implements request validation.
func (r CreatePropertyRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.LandlordID, validation.Required),
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Address, validation.Required),
		validation.Field(&r.TotalFloors, validation.Min(0)),
	)
}

// CreateUnitRequest is the request body for registering a unit.
type CreateUnitRequest struct {
	PropertyID string  `json:"propertyId" example:"prop1" validate:"required"`
	Floor      int     `json:"floor" example:"1" validate:"required"`
	Name       string  `json:"name" example:"101호" validate:"required"`
	Area       float64 `json:"area,omitempty" example:"23.1"`
	Memo       string  `json:"memo,omitempty"`
}

// Validate implements request validation.
func (r CreateUnitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PropertyID, validation.Required),
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Area, validation.Min(0.0)),
	)
}

// CreateTenantRequest is the request body for registering a tenant. Lease
// dates travel as YYYY-MM-DD strings and are parsed after validation.
type CreateTenantRequest struct {
	UnitID             string           `json:"unitId" example:"u101" validate:"required"`
	Name               string           `json:"name" example:"김철수" validate:"required"`
	Type               models.PartyType `json:"type" example:"Individual" validate:"required"`
	RegistrationNumber string           `json:"registrationNumber,omitempty"`
	Phone              string           `json:"phone,omitempty" example:"010-1111-2222"`
	Email              string           `json:"email,omitempty"`
	Deposit            int64            `json:"deposit" example:"50000000"`
	RentAmount         int64            `json:"rentAmount" example:"600000"`
	MaintenanceAmount  int64            `json:"maintenanceAmount" example:"50000"`
	LeaseStartDate     string           `json:"leaseStartDate" example:"2023-01-01" validate:"required"`
	LeaseEndDate       string           `json:"leaseEndDate" example:"2025-01-01" validate:"required"`
	Memo               string           `json:"memo,omitempty"`
}

// Validate implements request validation.
func (r CreateTenantRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UnitID, validation.Required),
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Type, validation.Required, validation.In(models.PartyIndividual, models.PartyCorporate)),
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.Deposit, validation.Min(0)),
		validation.Field(&r.RentAmount, validation.Min(0)),
		validation.Field(&r.MaintenanceAmount, validation.Min(0)),
		validation.Field(&r.LeaseStartDate, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&r.LeaseEndDate, validation.Required, validation.Date("2006-01-02")),
	)
}

// UpdatePaymentStatusRequest is the request body for a payment status
// transition.
type UpdatePaymentStatusRequest struct {
	Status models.PaymentStatus `json:"status" example:"PAID" validate:"required"`
}

// Validate implements request validation.
func (r UpdatePaymentStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required,
			validation.In(models.StatusPending, models.StatusPaid, models.StatusOverdue)),
	)
}

// ChatRequest is the request body for a free-text assistant prompt.
type ChatRequest struct {
	Prompt string `json:"prompt" example:"연체 관리 어떻게 하면 좋을까?" validate:"required"`
}

// Validate implements request validation.
func (r ChatRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Prompt, validation.Required),
	)
}

// DraftNoticeRequest is the request body for drafting an overdue notice.
type DraftNoticeRequest struct {
	PaymentID string `json:"paymentId" example:"p3" validate:"required"`
}

// Validate implements request validation.
func (r DraftNoticeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PaymentID, validation.Required),
	)
}
