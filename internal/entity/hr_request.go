package entity

import (
	"database/sql"
	"time"
)

type HRRequest struct {
	ID          string         `db:"id"`
	EmployeeID  string         `db:"employee_id"`
	Type        string         `db:"type"`
	Description string         `db:"description"`
	StartDate   sql.NullTime   `db:"start_date"`
	EndDate     sql.NullTime   `db:"end_date"`
	Status      string         `db:"status"`
	ProcessedBy sql.NullString `db:"processed_by"`
	Comment     sql.NullString `db:"comment"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

const (
	RequestTypeLeave       = "conge"
	RequestTypeAttestation = "attestation"
	RequestTypeOther       = "autre"
)

const (
	RequestStatusPending   = "en_attente"
	RequestStatusApproved  = "approuvee"
	RequestStatusRejected  = "rejetee"
	RequestStatusCancelled = "annulee"
)
