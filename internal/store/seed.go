package store

import (
	"time"

	"github.com/estateflow/estateflow/internal/models"
)

// Seed returns the built-in sample portfolio: one landlord with one
// four-floor villa, three of its four units leased, and four payment records
// for May 2024.
func Seed() Snapshot {
	paidMay1 := models.NewDate(2024, time.May, 1)
	return Snapshot{
		Landlords: []models.Landlord{
			{
				ID:                 "l1",
				Name:               "김건물",
				Type:               models.PartyIndividual,
				RegistrationNumber: "800101-1234567",
				Phone:              "010-1111-2222",
				BankAccount: &models.BankAccount{
					BankName:      "신한은행",
					AccountNumber: "110-123-456789",
					HolderName:    "김건물",
				},
				Memo: "주요 고객",
			},
		},
		Properties: []models.Property{
			{
				ID:          "prop1",
				LandlordID:  "l1",
				Name:        "강남 선샤인 빌라",
				Address:     "서울특별시 강남구 테헤란로 123 (역삼동)",
				Type:        "Villa",
				TotalFloors: 4,
			},
		},
		Units: []models.Unit{
			{ID: "u101", PropertyID: "prop1", Floor: 1, Name: "101호"},
			{ID: "u202", PropertyID: "prop1", Floor: 2, Name: "202호"},
			{ID: "u305", PropertyID: "prop1", Floor: 3, Name: "305호"},
			{ID: "u401", PropertyID: "prop1", Floor: 4, Name: "401호"},
		},
		Tenants: []models.Tenant{
			{
				ID:                "t1",
				UnitID:            "u101",
				Name:              "김철수",
				Type:              models.PartyIndividual,
				Phone:             "010-1234-5678",
				Deposit:           50000000,
				RentAmount:        600000,
				MaintenanceAmount: 50000,
				LeaseStartDate:    models.NewDate(2023, time.January, 1),
				LeaseEndDate:      models.NewDate(2025, time.January, 1),
				Memo:              "반려견 있음",
			},
			{
				ID:                "t2",
				UnitID:            "u202",
				Name:              "이영희",
				Type:              models.PartyIndividual,
				Phone:             "010-9876-5432",
				Deposit:           30000000,
				RentAmount:        450000,
				MaintenanceAmount: 50000,
				LeaseStartDate:    models.NewDate(2023, time.June, 15),
				LeaseEndDate:      models.NewDate(2025, time.June, 15),
			},
			{
				ID:                "t3",
				UnitID:            "u305",
				Name:              "박민수",
				Type:              models.PartyIndividual,
				Phone:             "010-5555-4444",
				Deposit:           10000000,
				RentAmount:        800000,
				MaintenanceAmount: 100000,
				LeaseStartDate:    models.NewDate(2024, time.January, 1),
				LeaseEndDate:      models.NewDate(2025, time.January, 1),
			},
		},
		Payments: []models.PaymentRecord{
			{
				ID:       "p1",
				TenantID: "t1",
				Date:     models.NewDate(2024, time.May, 1),
				Type:     models.TypeRent,
				Amount:   600000,
				Status:   models.StatusPaid,
				PaidDate: &paidMay1,
			},
			{
				ID:       "p2",
				TenantID: "t1",
				Date:     models.NewDate(2024, time.May, 1),
				Type:     models.TypeMaintenance,
				Amount:   50000,
				Status:   models.StatusPaid,
				PaidDate: &paidMay1,
			},
			{
				ID:       "p3",
				TenantID: "t2",
				Date:     models.NewDate(2024, time.May, 15),
				Type:     models.TypeRent,
				Amount:   450000,
				Status:   models.StatusOverdue,
			},
			{
				ID:       "p4",
				TenantID: "t3",
				Date:     models.NewDate(2024, time.May, 1),
				Type:     models.TypeRent,
				Amount:   800000,
				Status:   models.StatusPending,
			},
		},
	}
}
