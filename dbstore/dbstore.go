package dbstore

import (
	"errors"
	"time"
)

// Conversion statuses.
const (
	STATUS_PENDING   = "pending"
	STATUS_UNLOCKED  = "unlocked"
	STATUS_COMPLETED = "completed"
)

var ErrNotFound = errors.New("conversion not found")

// Conversion is one conversion request persisted by the service. Pending
// rows hold the raw payload so the artifact can be regenerated once the
// conversion is unlocked.
type Conversion struct {
	ID          string
	TableName   string
	Format      string
	Payload     string
	RecordCount int
	Status      string
	CreatedAt   time.Time
}

type ConversionStore interface {
	Connect(host string, port string, user string, password string, dbname string) error
	Disconnect()
	EnsureSchema() error
	Save(conv *Conversion) error
	Get(id string) (*Conversion, error)
	UpdateStatus(id string, status string) error
	Recent(limit int) ([]*Conversion, error)
}
