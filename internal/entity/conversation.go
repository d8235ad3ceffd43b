package entity

import (
	"database/sql"
	"time"
)

type Conversation struct {
	ID         string         `db:"id"`
	EmployeeID sql.NullString `db:"employee_id"`
	SessionID  string         `db:"session_id"`
	Message    string         `db:"message"`
	Intent     string         `db:"intent"`
	Response   string         `db:"response"`
	Confidence float64        `db:"confidence"`
	Entities   []byte         `db:"entities"`
	Feedback   sql.NullInt64  `db:"feedback"`
	CreatedAt  time.Time      `db:"created_at"`
}
