package api

import (
	"bytes"
	"encoding/json"
)

// The backend wraps payloads inconsistently: sometimes {data: {...}},
// sometimes {key: [...]}, sometimes the bare value. UnwrapList and
// UnwrapValue resolve a value through an ordered fallback so decoding never
// depends on which wrapping a given endpoint happens to use:
//
//	{data: {key: v}} -> {key: v} -> {data: v} -> v -> zero value
//
// Shape mismatches are never errors; the next fallback is tried instead.

// UnwrapList extracts a list payload, trying each key in order.
func UnwrapList[T any](raw json.RawMessage, keys ...string) []T {
	for _, candidate := range candidates(raw, keys) {
		var out []T
		if err := json.Unmarshal(candidate, &out); err == nil && out != nil {
			return out
		}
	}
	return []T{}
}

// UnwrapValue extracts a single object payload, trying each key in order.
// The zero value of T is returned when no fallback matches.
func UnwrapValue[T any](raw json.RawMessage, keys ...string) T {
	var zero T
	for _, candidate := range candidates(raw, keys) {
		// A bare object decodes into any struct, so require at least one
		// known field to match by round-tripping through a map first.
		if !looksLikeJSON(candidate) {
			continue
		}
		var out T
		if err := json.Unmarshal(candidate, &out); err == nil {
			return out
		}
	}
	return zero
}

// candidates lists the payload locations to try, most specific first.
func candidates(raw json.RawMessage, keys []string) []json.RawMessage {
	var out []json.RawMessage
	for _, key := range keys {
		if v, ok := dig(raw, "data", key); ok {
			out = append(out, v)
		}
	}
	for _, key := range keys {
		if v, ok := dig(raw, key); ok {
			out = append(out, v)
		}
	}
	if v, ok := dig(raw, "data"); ok {
		out = append(out, v)
	}
	out = append(out, raw)
	return out
}

// dig walks nested JSON objects along path, returning the value found there.
func dig(raw json.RawMessage, path ...string) (json.RawMessage, bool) {
	current := raw
	for _, key := range path {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(current, &obj); err != nil {
			return nil, false
		}
		next, ok := obj[key]
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

func looksLikeJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}
