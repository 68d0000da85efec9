package dto

import (
	"fmt"
	"time"

	"finance-tracker/internal/services"
)

// GenerateSampleRequest asks for a batch of fake transactions
type GenerateSampleRequest struct {
	Count       int    `json:"count" validate:"required,min=1,max=500"`
	AccountIDs  []uint `json:"account_ids" validate:"required,min=1,dive,gt=0"`
	CategoryIDs []uint `json:"category_ids" validate:"required,min=1,dive,gt=0"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// ToOptions converts a validated request into generator options
func (r GenerateSampleRequest) ToOptions() (services.SampleOptions, error) {
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return services.SampleOptions{}, fmt.Errorf("invalid start_date: %w", err)
	}

	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return services.SampleOptions{}, fmt.Errorf("invalid end_date: %w", err)
	}

	return services.SampleOptions{
		Count:       r.Count,
		AccountIDs:  r.AccountIDs,
		CategoryIDs: r.CategoryIDs,
		StartDate:   start,
		EndDate:     end,
	}, nil
}

// GenerateSampleResponse lists the stored sample transactions
type GenerateSampleResponse struct {
	Created      int                   `json:"created"`
	Transactions []TransactionResponse `json:"transactions"`
}
