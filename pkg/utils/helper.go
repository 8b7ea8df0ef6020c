package utils

import (
	"fmt"
	"net/url"
	"strconv"
)

// ParseIntStrict returns defaultValue for an empty value and an error for
// anything that is not an integer
func ParseIntStrict(value string, defaultValue int) (int, error) {
	if value == "" {
		return defaultValue, nil
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", value)
	}

	return result, nil
}

// FirstQueryValue returns the first non-empty value among the given keys
func FirstQueryValue(query url.Values, keys ...string) string {
	for _, key := range keys {
		if v := query.Get(key); v != "" {
			return v
		}
	}
	return ""
}
