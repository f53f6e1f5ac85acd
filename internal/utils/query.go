package utils

import (
	"net/url"
	"strconv"
)

// QueryInt parses an integer query parameter, falling back to def when it
// is missing or malformed.
func QueryInt(q url.Values, key string, def int) int {
	if n, err := strconv.Atoi(q.Get(key)); err == nil {
		return n
	}
	return def
}

// QueryBool is QueryInt for true/false flags.
func QueryBool(q url.Values, key string, def bool) bool {
	if b, err := strconv.ParseBool(q.Get(key)); err == nil {
		return b
	}
	return def
}
