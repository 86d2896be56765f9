// Package models defines the domain types for EstateFlow.
package models

// PartyType distinguishes individual and corporate counterparties.
type PartyType string

// Party types.
const (
	PartyIndividual PartyType = "Individual"
	PartyCorporate  PartyType = "Corporate"
)

// PaymentStatus is the lifecycle state of a payment record.
type PaymentStatus string

// Payment statuses.
const (
	StatusPending PaymentStatus = "PENDING"
	StatusPaid    PaymentStatus = "PAID"
	StatusOverdue PaymentStatus = "OVERDUE"
)

// Valid reports whether s is one of the known statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// Label returns the Korean display label used in assistant prompts.
func (s PaymentStatus) Label() string {
	switch s {
	case StatusPaid:
		return "납부완료"
	case StatusOverdue:
		return "연체"
	default:
		return "대기중"
	}
}

// PaymentType classifies what a payment record is owed for.
type PaymentType string

// Payment types.
const (
	TypeRent        PaymentType = "RENT"
	TypeMaintenance PaymentType = "MAINTENANCE"
	TypeDeposit     PaymentType = "DEPOSIT"
)

// Label returns the Korean display label used in assistant prompts.
func (t PaymentType) Label() string {
	switch t {
	case TypeRent:
		return "월세"
	case TypeMaintenance:
		return "관리비"
	case TypeDeposit:
		return "보증금"
	}
	return string(t)
}

// BankAccount holds a landlord's payout account.
type BankAccount struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	HolderName    string `json:"holderName"`
}

// Landlord is a property owner. Root entity; nothing references upward.
type Landlord struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Type               PartyType    `json:"type"`
	RegistrationNumber string       `json:"registrationNumber"`
	Phone              string       `json:"phone"`
	Email              string       `json:"email,omitempty"`
	BankAccount        *BankAccount `json:"bankAccount,omitempty"`
	Memo               string       `json:"memo,omitempty"`
}

// Property is a building owned by exactly one landlord.
type Property struct {
	ID          string `json:"id"`
	LandlordID  string `json:"landlordId"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Type        string `json:"type"`
	TotalFloors int    `json:"totalFloors"`
}

// Unit is a rentable sub-space of a property. The display name is a free-form
// label such as "101호"; (propertyId, name) uniqueness is expected but not
// enforced.
type Unit struct {
	ID         string  `json:"id"`
	PropertyID string  `json:"propertyId"`
	Floor      int     `json:"floor"`
	Name       string  `json:"name"`
	Area       float64 `json:"area,omitempty"`
	Memo       string  `json:"memo,omitempty"`
}

// Tenant holds an active lease on a unit together with its contract terms.
// Amounts are integer KRW.
type Tenant struct {
	ID                 string    `json:"id"`
	UnitID             string    `json:"unitId"`
	Name               string    `json:"name"`
	Type               PartyType `json:"type"`
	RegistrationNumber string    `json:"registrationNumber,omitempty"`
	Phone              string    `json:"phone"`
	Email              string    `json:"email,omitempty"`
	Deposit            int64     `json:"deposit"`
	RentAmount         int64     `json:"rentAmount"`
	MaintenanceAmount  int64     `json:"maintenanceAmount"`
	LeaseStartDate     Date      `json:"leaseStartDate"`
	LeaseEndDate       Date      `json:"leaseEndDate"`
	Memo               string    `json:"memo,omitempty"`
}

// PaymentRecord is one due obligation tied to a tenant. PaidDate is set only
// while the status is PAID.
type PaymentRecord struct {
	ID       string        `json:"id"`
	TenantID string        `json:"tenantId"`
	Date     Date          `json:"date"`
	Type     PaymentType   `json:"type"`
	Amount   int64         `json:"amount"`
	Status   PaymentStatus `json:"status"`
	PaidDate *Date         `json:"paidDate,omitempty"`
}
