package handlers

import (
	"net/http"
	"strconv"

	"finanzas/internal/dto"
	"finanzas/internal/errors"
	"finanzas/internal/models"
	"finanzas/internal/repositories"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
) *TransactionHandler {
	return &TransactionHandler{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// ListTransactions returns every transaction, newest date first
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	transactions, err := h.transactionRepo.GetAll()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionListResponse(transactions))
}

// CreateTransaction validates and persists a new transaction
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	req := new(dto.CreateTransactionRequest)
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	transaction := &models.Transaction{
		Amount:      float64(*req.Amount),
		Description: req.Description,
		Type:        req.Type,
		CategoryID:  uint(*req.CategoryID),
	}

	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
		transaction.Date = date
	}

	if _, err := h.categoryRepo.GetByID(transaction.CategoryID); err != nil {
		if err == repositories.ErrCategoryNotFound {
			return SendError(c, errors.CategoryUnknownReference)
		}
		return SendSystemError(c, err)
	}

	if err := h.transactionRepo.Create(transaction); err != nil {
		if code, ok := mapModelError(err); ok {
			return SendError(c, code, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewTransactionResponse(*transaction))
}

// GetTransaction retrieves a specific transaction by ID
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be an integer"))
	}

	transaction, err := h.transactionRepo.GetByID(id)
	if err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(*transaction))
}

// UpdateTransaction applies the supplied fields to an existing transaction.
// Keys absent from the body keep their stored values; a key present with an
// explicit null is a validation error. Date is only touched when the key is
// present.
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be an integer"))
	}

	transaction, err := h.transactionRepo.GetByID(id)
	if err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	req := new(dto.UpdateTransactionRequest)
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	// a key that is present must reparse; null never means "keep stored value"
	if nullFields := req.NullFields(); len(nullFields) > 0 {
		details := make([]string, 0, len(nullFields))
		for _, field := range nullFields {
			details = append(details, field+": must not be null")
		}
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(details...))
	}

	if req.Amount != nil {
		transaction.Amount = float64(*req.Amount)
	}
	if req.Description != nil {
		transaction.Description = *req.Description
	}
	if req.Type != nil {
		transaction.Type = *req.Type
	}
	if req.CategoryID != nil {
		transaction.CategoryID = uint(*req.CategoryID)
		if _, err := h.categoryRepo.GetByID(transaction.CategoryID); err != nil {
			if err == repositories.ErrCategoryNotFound {
				return SendError(c, errors.CategoryUnknownReference)
			}
			return SendSystemError(c, err)
		}
	}
	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
		transaction.Date = date
	}

	if err := h.transactionRepo.Update(transaction); err != nil {
		if code, ok := mapModelError(err); ok {
			return SendError(c, code, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(*transaction))
}

// DeleteTransaction removes a transaction by ID
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be an integer"))
	}

	if _, err := h.transactionRepo.GetByID(id); err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	if err := h.transactionRepo.Delete(id); err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted successfully"})
}

// parseIDParam parses the :id path parameter
func parseIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// mapModelError translates model validation failures to taxonomy codes.
// Anything unrecognized stays a system error so store internals do not leak.
func mapModelError(err error) (errors.ErrorCode, bool) {
	switch {
	case isErr(err, models.ErrEmptyDescription), isErr(err, models.ErrDescriptionTooLong):
		return errors.TransactionDescriptionLen, true
	case isErr(err, models.ErrInvalidEntryType):
		return errors.ValidationInvalidType, true
	case isErr(err, models.ErrMissingCategory):
		return errors.CategoryUnknownReference, true
	default:
		return "", false
	}
}
