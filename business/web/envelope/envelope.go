// Package envelope provides the response shape shared by every API call.
package envelope

import (
	"encoding/json"
	"errors"
)

// Envelope is the result of an API call. It holds either a data payload or
// an error message, never both. The zero value is not usable, construct one
// with Success or Failure.
type Envelope struct {
	data any
	err  string
	ok   bool
}

// Success constructs an envelope carrying data.
func Success(data any) Envelope {
	return Envelope{data: data, ok: true}
}

// Failure constructs an envelope carrying an error message.
func Failure(message string) Envelope {
	return Envelope{err: message}
}

// wire is the JSON form. Only one of Data and Error is ever populated.
type wire struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *string         `json:"error,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface.
func (e Envelope) MarshalJSON() ([]byte, error) {
	if !e.ok {
		msg := e.err
		return json.Marshal(wire{Error: &msg})
	}

	data, err := json.Marshal(e.data)
	if err != nil {
		return nil, err
	}

	return json.Marshal(wire{Success: true, Data: data})
}

// Decode reads an envelope from JSON, unmarshaling the data of a successful
// envelope into v. A failed envelope is returned as an error holding its
// message.
func Decode(b []byte, v any) error {
	var w wire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	if !w.Success {
		if w.Error == nil {
			return errors.New("failure without a message")
		}
		return errors.New(*w.Error)
	}

	if v == nil || len(w.Data) == 0 {
		return nil
	}

	return json.Unmarshal(w.Data, v)
}
