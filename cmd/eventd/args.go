package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// splitCSV splits a comma-separated flag value, dropping blanks.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// parseData merges a JSON object and key=value pairs into one data bag.
// Pairs win over JSON keys of the same name.
func parseData(jsonObj string, pairs []string) (map[string]any, error) {
	data := map[string]any{}
	if strings.TrimSpace(jsonObj) != "" {
		dec := json.NewDecoder(bytes.NewReader([]byte(jsonObj)))
		dec.UseNumber()
		if err := dec.Decode(&data); err != nil {
			return nil, fmt.Errorf("--json must be a JSON object: %w", err)
		}
	}
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("--data %q: want key=value", p)
		}
		data[k] = v
	}
	return data, nil
}
