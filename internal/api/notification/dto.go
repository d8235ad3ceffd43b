package notification

import "time"

type NotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
	Unread        int                    `json:"unread"`
}

type CreateDeadlineRequest struct {
	EmployeeID       string `json:"employee_id" validate:"required"`
	Type             string `json:"type" validate:"required,min=2,max=128"`
	DueDate          string `json:"due_date" validate:"required,datetime=2006-01-02"`
	Description      string `json:"description" validate:"omitempty,max=512"`
	NotifyDaysBefore *int   `json:"notify_days_before" validate:"omitempty,gte=0,lte=365"`
}

type DeadlineResponse struct {
	ID               string    `json:"id"`
	EmployeeID       string    `json:"employee_id"`
	Type             string    `json:"type"`
	DueDate          time.Time `json:"due_date"`
	Description      string    `json:"description,omitempty"`
	NotifyDaysBefore int       `json:"notify_days_before"`
	Notified         bool      `json:"notified"`
	CreatedAt        time.Time `json:"created_at"`
}

type DeadlineListResponse struct {
	Deadlines []DeadlineResponse `json:"deadlines"`
	Total     int                `json:"total"`
}

type CheckDeadlinesResponse struct {
	NotificationsCreated int `json:"notifications_created"`
}
