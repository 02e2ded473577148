package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// unwrap декодирует тело ответа в T
// Сервис каталога отдаёт значение либо как есть, либо обёрнутым в {"data": ...}
func unwrap[T any](body []byte) (T, error) {
	var result T

	payload := bytes.TrimSpace(body)
	if len(payload) > 0 && payload[0] == '{' {
		var env envelope
		if err := json.Unmarshal(payload, &env); err == nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
			payload = env.Data
		}
	}

	if err := json.Unmarshal(payload, &result); err != nil {
		return result, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return result, nil
}
