package dto

import (
	"time"

	"github.com/SscSPs/money_forecast_app/internal/core/domain"
	"github.com/SscSPs/money_forecast_app/internal/core/projection"
	"github.com/shopspring/decimal"
)

// ProjectionQuery holds the query parameters of a projection request.
// Dates are calendar days in UTC.
type ProjectionQuery struct {
	FromDate time.Time `form:"fromDate" binding:"required" time_format:"2006-01-02" time_utc:"1"`
	ToDate   time.Time `form:"toDate" binding:"required" time_format:"2006-01-02" time_utc:"1"`
}

// ProjectedTransactionResponse is one entry of a projected timeline.
type ProjectedTransactionResponse struct {
	SourceID    string              `json:"sourceID"`
	SourceKind  domain.SourceKind   `json:"sourceKind"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Date        string              `json:"date" example:"2020-01-06"`
	Amount      decimal.Decimal     `json:"amount" swaggertype:"string" example:"-100"`
	Balance     decimal.NullDecimal `json:"balance" swaggertype:"string" example:"400"`
}

// ProjectionResponse is the balanced timeline of an account.
type ProjectionResponse struct {
	AccountID       string                         `json:"accountID"`
	CurrentBalance  decimal.Decimal                `json:"currentBalance" swaggertype:"string" example:"1000"`
	WishlistsPlaced int                            `json:"wishlistsPlaced"`
	Transactions    []ProjectedTransactionResponse `json:"transactions"`
}

// ToProjectionResponse converts an engine result to its API shape.
func ToProjectionResponse(r *projection.Result) ProjectionResponse {
	resp := ProjectionResponse{
		AccountID:       r.AccountID,
		CurrentBalance:  r.CurrentBalance,
		WishlistsPlaced: r.WishlistsPlaced,
		Transactions:    make([]ProjectedTransactionResponse, 0, len(r.Transactions)),
	}
	for _, tx := range r.Transactions {
		resp.Transactions = append(resp.Transactions, ProjectedTransactionResponse{
			SourceID:    tx.SourceID,
			SourceKind:  tx.SourceKind,
			Title:       tx.Title,
			Description: tx.Description,
			Date:        tx.Date.Format(time.DateOnly),
			Amount:      tx.Amount,
			Balance:     tx.Balance,
		})
	}
	return resp
}

// ScheduleResponse reports how many materialization jobs were queued.
type ScheduleResponse struct {
	AccountID string `json:"accountID"`
	Scheduled int    `json:"scheduled"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
