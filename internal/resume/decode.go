package resume

import (
	"encoding/json"
	"fmt"
)

// Decode unmarshals raw extracted data into Data, tolerating missing or
// extra fields. Absent lists come back nil; renderers treat those as
// sections to omit.
func Decode(raw json.RawMessage) (Data, error) {
	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("decode resume data: %w", err)
	}
	return data, nil
}

// requiredFields are the top-level keys the extraction schema demands.
var requiredFields = []string{"name", "email", "phone", "address", "skills", "education", "work_experience"}

// DecodeStrict unmarshals raw data and verifies every schema field is
// present. It reports which field is missing so callers can log the
// deviation; it is used for classification, never to reject a payload.
func DecodeStrict(raw json.RawMessage) (Data, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Data{}, fmt.Errorf("decode resume data: %w", err)
	}
	for _, key := range requiredFields {
		if _, ok := fields[key]; !ok {
			return Data{}, fmt.Errorf("decode resume data: missing field %q", key)
		}
	}
	return Decode(raw)
}

// IsRawTextFallback reports whether raw is a degraded {raw_text} payload.
func IsRawTextFallback(raw json.RawMessage) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return false
	}
	_, ok := fields[RawTextKey]
	return ok && len(fields) == 1
}
