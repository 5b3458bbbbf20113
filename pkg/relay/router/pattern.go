package router

import "strings"

// Pattern is a compiled route template, e.g. "/items/{id}".
type Pattern struct {
	Original   string
	segments   []string
	paramNames []string
}

// CompilePattern splits pattern on '/', drops empty segments, and
// records which segments are parameters (length >= 3, bracketed with
// "{" and "}"; the interior is the parameter name).
func CompilePattern(pattern string) *Pattern {
	p := &Pattern{Original: pattern}
	for _, seg := range strings.Split(pattern, "/") {
		if seg == "" {
			continue
		}
		p.segments = append(p.segments, seg)
		if isParamSegment(seg) {
			p.paramNames = append(p.paramNames, seg[1:len(seg)-1])
		}
	}
	return p
}

func isParamSegment(seg string) bool {
	return len(seg) >= 3 && seg[0] == '{' && seg[len(seg)-1] == '}'
}

// Matches compares path against the compiled pattern. Segment counts
// must agree; each literal segment must equal its corresponding path
// segment exactly, and each parameter segment captures its
// corresponding path segment under its parameter name.
//
// This is the one place the original source has a documented bug:
// its matches() only ever advances a parameter cursor and never
// actually compares literal segments against the path, so a pattern
// like "/a/{x}/wrong" would wrongly match "/a/V/right". Literal
// segments are compared here.
func (p *Pattern) Matches(path string) (map[string]string, bool) {
	var pathSegs []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			pathSegs = append(pathSegs, seg)
		}
	}
	if len(pathSegs) != len(p.segments) {
		return nil, false
	}

	params := make(map[string]string)
	for i, seg := range p.segments {
		if isParamSegment(seg) {
			params[seg[1:len(seg)-1]] = pathSegs[i]
			continue
		}
		if seg != pathSegs[i] {
			return nil, false
		}
	}
	return params, true
}

// HasParams reports whether pattern contains both '{' and '}' anywhere,
// i.e. whether AddRoute routes it into the parameterized table instead
// of the exact table. It does not check that those braces form a
// parameter segment.
func HasParams(pattern string) bool {
	return strings.Contains(pattern, "{") && strings.Contains(pattern, "}")
}
