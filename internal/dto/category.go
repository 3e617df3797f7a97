package dto

import "finanzas/internal/models"

// CategoryResponse is the serialized form of a category.
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// NewCategoryResponse converts a category model to its response shape
func NewCategoryResponse(category models.Category) CategoryResponse {
	return CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
		Type: category.Type,
	}
}

// NewCategoryListResponse converts category models to their response shapes
func NewCategoryListResponse(categories []models.Category) []CategoryResponse {
	result := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, NewCategoryResponse(category))
	}
	return result
}
