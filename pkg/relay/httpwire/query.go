package httpwire

import "strings"

// splitRoute splits a request-target into path and raw query string at
// the first '?'. If there is no '?', query is empty.
func splitRoute(target string) (path, query string) {
	if idx := strings.IndexByte(target, '?'); idx >= 0 {
		return target[:idx], target[idx+1:]
	}
	return target, ""
}

// parseQuery decodes "a=1&b=hello%20world" into a map, URL-decoding
// both sides of each pair. A pair without '=' decodes to an empty value.
func parseQuery(raw string) map[string]string {
	out := make(map[string]string)
	if raw == "" {
		return out
	}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		var key, value string
		if idx := strings.IndexByte(pair, '='); idx >= 0 {
			key, value = pair[:idx], pair[idx+1:]
		} else {
			key = pair
		}
		out[urlDecode(key)] = urlDecode(value)
	}
	return out
}

// urlDecode percent-decodes %XX hex escapes and translates '+' to
// space. Malformed %XX sequences (truncated or non-hex) are passed
// through literally rather than rejected.
func urlDecode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '+':
			b.WriteByte(' ')
		case '%':
			if i+2 < len(s) {
				hi, okHi := hexVal(s[i+1])
				lo, okLo := hexVal(s[i+2])
				if okHi && okLo {
					b.WriteByte(hi<<4 | lo)
					i += 2
					continue
				}
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
