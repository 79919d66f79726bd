package request

import (
	"rent-elegance/internal/domain/rental"
	"rent-elegance/internal/pkg/patch"
	"rent-elegance/internal/usecase/commands"
)

type RentalDatesRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

func (r *RentalDatesRequest) ToDateRange() (rental.DateRange, error) {
	return rental.ParseDateRange(r.StartDate, r.EndDate)
}

// AddCartItemRequest leaves quantity optional; anything below one is stored as one.
// Quantities beyond cart.MaxQuantity are rejected.
type AddCartItemRequest struct {
	ProductID   string              `json:"productId" binding:"required"`
	Quantity    *int                `json:"quantity" binding:"omitempty,max=99"`
	RentalDates *RentalDatesRequest `json:"rentalDates"`
}

func (r *AddCartItemRequest) ToCommand() (commands.AddToCartRequest, error) {
	cmd := commands.AddToCartRequest{
		ProductID: r.ProductID,
		Quantity:  patch.Coalesce(r.Quantity, 1),
	}
	if r.RentalDates != nil {
		dates, err := r.RentalDates.ToDateRange()
		if err != nil {
			return commands.AddToCartRequest{}, err
		}
		cmd.RentalDates = &dates
	}
	return cmd, nil
}

// UpdateCartItemRequest with a quantity of zero or less removes the entry.
type UpdateCartItemRequest struct {
	Quantity   *int `json:"quantity" binding:"required,max=99"`
	RentalDays *int `json:"rentalDays" binding:"omitempty,min=1"`
}

func (r *UpdateCartItemRequest) ToCommand() commands.UpdateCartItemRequest {
	return commands.UpdateCartItemRequest{
		Quantity:   *r.Quantity,
		RentalDays: r.RentalDays,
	}
}
