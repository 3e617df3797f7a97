package dto

import (
	"encoding/json"
	"time"

	"finanzas/internal/models"
)

// CreateTransactionRequest is the body for POST /api/transactions.
// Amount and category_id tolerate numeric strings; date defaults to now.
type CreateTransactionRequest struct {
	Amount      *FloatField `json:"amount" validate:"required"`
	Description string      `json:"description" validate:"required,max=255"`
	Type        string      `json:"type" validate:"required,oneof=income expense"`
	CategoryID  *IntField   `json:"category_id" validate:"required"`
	Date        *string     `json:"date"`
}

// UpdateTransactionRequest is the body for PUT /api/transactions/:id.
// Every field is optional; an omitted key leaves the stored value unchanged,
// but a key that is present must carry a parseable value. An explicit null
// fails reparse and is rejected, it never falls back to the stored value.
type UpdateTransactionRequest struct {
	Amount      *FloatField `json:"amount"`
	Description *string     `json:"description" validate:"omitempty,min=1,max=255"`
	Type        *string     `json:"type" validate:"omitempty,oneof=income expense"`
	CategoryID  *IntField   `json:"category_id"`
	Date        *string     `json:"date"`

	presentKeys map[string]bool
}

// UnmarshalJSON records which keys appeared in the body, so a field that is
// present with a JSON null can be told apart from an omitted one. The json
// package sets pointer fields to nil for both.
func (r *UpdateTransactionRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	type plain UpdateTransactionRequest
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*r = UpdateTransactionRequest(decoded)
	r.presentKeys = make(map[string]bool, len(raw))
	for key := range raw {
		r.presentKeys[key] = true
	}
	return nil
}

// Has reports whether the key appeared in the request body at all.
func (r *UpdateTransactionRequest) Has(key string) bool {
	return r.presentKeys[key]
}

// NullFields lists the updatable keys that were present with an explicit
// null value.
func (r *UpdateTransactionRequest) NullFields() []string {
	var fields []string
	if r.Has("amount") && r.Amount == nil {
		fields = append(fields, "amount")
	}
	if r.Has("description") && r.Description == nil {
		fields = append(fields, "description")
	}
	if r.Has("type") && r.Type == nil {
		fields = append(fields, "type")
	}
	if r.Has("category_id") && r.CategoryID == nil {
		fields = append(fields, "category_id")
	}
	if r.Has("date") && r.Date == nil {
		fields = append(fields, "date")
	}
	return fields
}

// TransactionResponse is the serialized form of a transaction. The referenced
// category is embedded in full, and all timestamps render as ISO-8601 strings.
type TransactionResponse struct {
	ID          uint             `json:"id"`
	Amount      float64          `json:"amount"`
	Description string           `json:"description"`
	Type        string           `json:"type"`
	Category    CategoryResponse `json:"category"`
	Date        string           `json:"date"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

// MessageResponse carries a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewTransactionResponse converts a transaction model to its response shape.
// The Category association must be loaded.
func NewTransactionResponse(transaction models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          transaction.ID,
		Amount:      transaction.Amount,
		Description: transaction.Description,
		Type:        transaction.Type,
		Category:    NewCategoryResponse(transaction.Category),
		Date:        transaction.Date.Format(time.RFC3339),
		CreatedAt:   transaction.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   transaction.UpdatedAt.Format(time.RFC3339),
	}
}

// NewTransactionListResponse converts transaction models to their response shapes
func NewTransactionListResponse(transactions []models.Transaction) []TransactionResponse {
	result := make([]TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		result = append(result, NewTransactionResponse(transaction))
	}
	return result
}
