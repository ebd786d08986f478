// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cms

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/polaris-parent/sitegate/models"
)

type validator interface {
	Validate() error
}

// decodeList unwraps {"data": [...]} and validates every item.
// A null or absent data member decodes to an empty list.
func decodeList[T any, PT interface {
	*T
	validator
}](body []byte) ([]T, error) {
	var env models.DataResponse[[]T]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	if env.Data == nil {
		return []T{}, nil
	}
	for i := range env.Data {
		if err := PT(&env.Data[i]).Validate(); err != nil {
			return nil, fmt.Errorf("%w: item %d: %w", ErrMalformedEnvelope, i, err)
		}
	}
	return env.Data, nil
}

// decodeOne unwraps {"data": {...}} and validates the entry.
func decodeOne[T any, PT interface {
	*T
	validator
}](body []byte) (*T, error) {
	var env models.DataResponse[*T]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	if env.Data == nil {
		return nil, fmt.Errorf("%w: missing data", ErrMalformedEnvelope)
	}
	if err := PT(env.Data).Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	return env.Data, nil
}

// decodeData returns the raw data member of an envelope, or JSON null.
func decodeData(body []byte) (json.RawMessage, error) {
	var env models.DataResponse[json.RawMessage]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	if len(env.Data) == 0 {
		return json.RawMessage("null"), nil
	}
	return env.Data, nil
}

// rawJSON passes an upstream body through after checking it is JSON.
func rawJSON(body []byte) (json.RawMessage, error) {
	body = bytes.TrimSpace(body)
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: body is not JSON", ErrMalformedEnvelope)
	}
	return json.RawMessage(body), nil
}
