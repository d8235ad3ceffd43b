package request

import "time"

type CreateRequestRequest struct {
	Type        string `json:"type" validate:"required,oneof=conge attestation autre"`
	Description string `json:"description" validate:"required,min=3"`
	StartDate   string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type ProcessRequestRequest struct {
	Status  string `json:"status" validate:"required,oneof=approuvee rejetee"`
	Comment string `json:"comment" validate:"omitempty,max=512"`
}

type RequestResponse struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employee_id"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Status      string     `json:"status"`
	ProcessedBy string     `json:"processed_by,omitempty"`
	Comment     string     `json:"comment,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type RequestListResponse struct {
	Requests []RequestResponse `json:"requests"`
	Total    int               `json:"total"`
}
