// Package dto defines data transfer objects for API requests and responses.
package dto

import "encoding/json"

// OptionalString distinguishes an absent JSON field from an explicit null,
// which PATCH endpoints need for clearable fields.
type OptionalString struct {
	Set   bool
	Valid bool
	Value string
}

// UnmarshalJSON implements json.Unmarshaler. It only runs when the field is
// present, so Set records presence and Valid records non-null.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}
