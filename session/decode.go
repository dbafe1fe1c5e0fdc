package session

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// UnmarshalJSON decodes a record without ever rejecting a JSON object.
// Missing or wrong-typed fields fall back to their zero values.
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}

	*r = Record{
		Username:  decodeText(fields["username"]),
		Date:      decodeText(fields["date"]),
		Duration:  decodeLabel(fields["duration"]),
		TasksDone: decodeTasks(fields["tasks_done"]),
		TaskCount: decodeCount(fields["task_count"]),
	}
	return nil
}

// DecodeRecords decodes the body of a fetch-all response: either null, an
// empty body, or an object mapping opaque record IDs to records.
func DecodeRecords(data []byte) ([]Record, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode record set: %w", err)
	}
	return DecodeRecordSet(raw), nil
}

// DecodeRecordSet decodes records keyed by ID, ordered by ID. Entries that
// are not JSON objects are skipped.
func DecodeRecordSet(raw map[string]json.RawMessage) []Record {
	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	records := make([]Record, 0, len(ids))
	for _, id := range ids {
		if !IsObject(raw[id]) {
			continue
		}
		var record Record
		if err := json.Unmarshal(raw[id], &record); err != nil {
			continue
		}
		records = append(records, record)
	}
	return records
}

// IsObject reports whether raw holds a JSON object.
func IsObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{' && json.Valid(raw)
}

func decodeText(raw json.RawMessage) string {
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return value
}

// decodeLabel keeps numeric durations as their literal text, so 25 reads
// as "25" and still parses as 25 minutes.
func decodeLabel(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	if isNumberLiteral(raw) {
		return string(raw)
	}
	return decodeText(raw)
}

func decodeTasks(raw json.RawMessage) []string {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}
	tasks := make([]string, 0, len(items))
	for _, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '"' {
			continue
		}
		var text string
		if err := json.Unmarshal(item, &text); err != nil {
			continue
		}
		tasks = append(tasks, text)
	}
	return tasks
}

func decodeCount(raw json.RawMessage) int {
	raw = bytes.TrimSpace(raw)
	if !isNumberLiteral(raw) {
		return 0
	}
	var number json.Number
	if err := json.Unmarshal(raw, &number); err != nil {
		return 0
	}
	if value, err := number.Int64(); err == nil {
		if value < 0 || value > math.MaxInt32 {
			return 0
		}
		return int(value)
	}
	value, err := number.Float64()
	if err != nil || value < 0 || value > math.MaxInt32 || value != math.Trunc(value) {
		return 0
	}
	return int(value)
}

func isNumberLiteral(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	first := raw[0]
	return first == '-' || (first >= '0' && first <= '9')
}
