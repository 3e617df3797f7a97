package handlers

import (
	"net/http"
	"time"

	"finanzas/internal/models"
	"finanzas/internal/repositories"

	"github.com/labstack/echo/v4"
)

// SummaryHandler handles the monthly summary endpoint
type SummaryHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(transactionRepo repositories.TransactionRepositoryInterface) *SummaryHandler {
	return &SummaryHandler{transactionRepo: transactionRepo}
}

// GetSummary aggregates income and expenses from 00:00 on the first of the
// current calendar month, in server local time.
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	income, err := h.transactionRepo.SumAmountByTypeSince(models.EntryTypeIncome, monthStart)
	if err != nil {
		return SendSystemError(c, err)
	}

	expenses, err := h.transactionRepo.SumAmountByTypeSince(models.EntryTypeExpense, monthStart)
	if err != nil {
		return SendSystemError(c, err)
	}

	summary := models.MonthlySummary{
		Income:   income,
		Expenses: expenses,
		Balance:  income - expenses,
		Period:   monthStart.Format("January 2006"),
	}

	return c.JSON(http.StatusOK, summary)
}
