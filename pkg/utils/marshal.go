package utils

import (
	"encoding/json"
	"errors"
)

// ErrCacheMiss is returned by object caches when a key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

func Marshal(value interface{}) []byte {
	b, err := json.Marshal(value)
	if err != nil {
		return nil
	}
	return b
}

func Unmarshal(data []byte, value interface{}) error {
	if len(data) == 0 {
		return errors.New("empty payload")
	}
	return json.Unmarshal(data, value)
}
