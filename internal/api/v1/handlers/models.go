package handlers

type CreateRequestBody struct {
	Location  string `json:"location" validate:"required"`
	Unit      string `json:"unit" validate:"omitempty,oneof=standard metric imperial"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// UpdateRequestBody carries a partial field set; absent fields are
// left untouched on the stored record.
type UpdateRequestBody struct {
	Location  *string `json:"location"`
	Unit      *string `json:"unit" validate:"omitempty,oneof=standard metric imperial"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
}

type HealthResponse struct {
	OK bool `json:"ok"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
