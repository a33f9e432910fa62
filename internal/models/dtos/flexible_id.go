package dtos

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexID is an identifier field that the upstream API serializes
// inconsistently: integer primary keys on accounts and memberships, UUID
// strings on communities, discussions and events. It always compares as a
// string on our side.
type FlexID string

func (id FlexID) String() string { return string(id) }

// IsZero reports whether the field was absent or null in the payload.
func (id FlexID) IsZero() bool { return id == "" }

func (id *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = FlexID(n.String())
	return nil
}

func (id FlexID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return json.Marshal(n)
	}
	return json.Marshal(string(id))
}
