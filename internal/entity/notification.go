package entity

import "time"

type Notification struct {
	ID         string    `db:"id"`
	EmployeeID string    `db:"employee_id"`
	Title      string    `db:"title"`
	Body       string    `db:"body"`
	IsRead     bool      `db:"is_read"`
	CreatedAt  time.Time `db:"created_at"`
}

type Deadline struct {
	ID               string    `db:"id"`
	EmployeeID       string    `db:"employee_id"`
	Type             string    `db:"type"`
	DueDate          time.Time `db:"due_date"`
	Description      string    `db:"description"`
	NotifyDaysBefore int       `db:"notify_days_before"`
	Notified         bool      `db:"notified"`
	CreatedAt        time.Time `db:"created_at"`
}

// DueDeadline is a deadline row joined with the employee's email, used by
// the periodic check to notify without a second lookup.
type DueDeadline struct {
	Deadline
	EmployeeEmail string `db:"employee_email"`
}
