package workflow

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON column wrappers so both requisitions and leave requests persist
// their full stage map and audit trail inside their own row.

type StageRecords []StageRecord

func (s StageRecords) Value() (driver.Value, error) {
	if s == nil {
		s = StageRecords{}
	}
	return json.Marshal(s)
}

func (s *StageRecords) Scan(v any) error {
	return scanJSON(v, s)
}

type HistoryLog []HistoryEntry

func (h HistoryLog) Value() (driver.Value, error) {
	if h == nil {
		h = HistoryLog{}
	}
	return json.Marshal(h)
}

func (h *HistoryLog) Scan(v any) error {
	return scanJSON(v, h)
}

func scanJSON(v, dst any) error {
	switch b := v.(type) {
	case []byte:
		return json.Unmarshal(b, dst)
	case string:
		return json.Unmarshal([]byte(b), dst)
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported column type %T", v)
	}
}
