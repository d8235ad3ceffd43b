package entity

import (
	"time"

	"github.com/lib/pq"
)

type Intent struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Category  string         `db:"category"`
	Response  string         `db:"response"`
	Keywords  pq.StringArray `db:"keywords"`
	Priority  int            `db:"priority"`
	IsActive  bool           `db:"is_active"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}
