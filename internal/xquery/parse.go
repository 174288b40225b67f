package xquery

import (
	"net/url"
	"strconv"
)

func ParseInt(query url.Values, name string, defaultValue int) int {
	value := query.Get(name)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return parsed
}

func ParseString(query url.Values, name string, defaultValue string) string {
	value := query.Get(name)
	if value == "" {
		return defaultValue
	}
	return value
}
