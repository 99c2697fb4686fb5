package constants

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// QualStatus mirrors the Postgres ENUM 'qual_status'.
// Ordered by proficiency: NMQ < MQT < FMQ, with IP additionally instructor-capable.
type QualStatus string

const (
	StatusNMQ QualStatus = "NMQ"
	StatusMQT QualStatus = "MQT"
	StatusFMQ QualStatus = "FMQ"
	StatusIP  QualStatus = "IP"
)

func (s QualStatus) String() string { return string(s) }

// Rank returns the proficiency ordering (NMQ lowest).
func (s QualStatus) Rank() int {
	switch s {
	case StatusNMQ:
		return 0
	case StatusMQT:
		return 1
	case StatusFMQ:
		return 2
	case StatusIP:
		return 3
	}
	return -1
}

// Qualified reports whether the status counts toward combat readiness.
func (s QualStatus) Qualified() bool {
	return s == StatusFMQ || s == StatusIP
}

// ParseQualStatus normalizes raw input (trimmed, case-insensitive) to a
// QualStatus. The second return is false for anything outside the enum.
func ParseQualStatus(raw string) (QualStatus, bool) {
	s := QualStatus(strings.ToUpper(strings.TrimSpace(raw)))
	switch s {
	case StatusNMQ, StatusMQT, StatusFMQ, StatusIP:
		return s, true
	}
	return "", false
}

/* ---------- DB adapters ---------- */

func (s *QualStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = QualStatus(v)
	case []byte:
		*s = QualStatus(v)
	default:
		return fmt.Errorf("QualStatus: cannot scan type %T", src)
	}
	return nil
}

func (s QualStatus) Value() (driver.Value, error) { return string(s), nil }
