package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Param is a single query-string key/value pair. Values may be strings,
// integers, floats, or booleans.
type Param struct {
	Key   string
	Value any
}

// Params is an ordered list of query parameters. Encoding preserves
// insertion order so request URLs are deterministic.
type Params []Param

// Encode returns the percent-encoded query string, without a leading
// "?". An empty Params encodes to "".
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(formatParamValue(kv.Value)))
	}
	return b.String()
}

func formatParamValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
