package readings

import "time"

// Reading is the last environmental triple written for a subject. It is
// overwritten wholesale on every write; there is no history.
type Reading struct {
	SubjectID         uint64
	Humidity          uint64
	MoistureContent   uint64
	StorageConditions uint64
	UpdatedAt         time.Time
}
