package match

import (
	"regexp"
	"strings"

	"github.com/gobwas/glob"

	"logwatch/internal/app/errors"
)

// Rule decides whether a log line is of interest. A line matches when any
// configured criterion matches: the regex, a case-insensitive keyword
// substring, or a literal IP substring. Exclude patterns veto a match.
type Rule struct {
	keywords []string
	folded   []string
	ips      []string
	regex    *regexp.Regexp
	excludes []glob.Glob
}

// NewRule compiles a Rule from the configured criteria. Malformed regex or
// exclude patterns are rejected here so matching itself cannot fail.
func NewRule(keywords, ips []string, pattern string, excludes []string) (*Rule, error) {
	r := &Rule{
		keywords: keywords,
		folded:   make([]string, 0, len(keywords)),
		ips:      ips,
		excludes: make([]glob.Glob, 0, len(excludes)),
	}

	for _, kw := range keywords {
		r.folded = append(r.folded, strings.ToLower(kw))
	}

	if pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, errors.ErrInvalidRegexPattern
		}

		r.regex = re
	}

	for _, p := range excludes {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.ErrInvalidExcludePattern
		}

		r.excludes = append(r.excludes, g)
	}

	return r, nil
}

// Matches reports whether the line matches any configured criterion
func (r *Rule) Matches(line string) bool {
	for _, g := range r.excludes {
		if g.Match(line) {
			return false
		}
	}

	if r.regex != nil && r.regex.MatchString(line) {
		return true
	}

	if len(r.folded) > 0 {
		lower := strings.ToLower(line)

		for _, kw := range r.folded {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}

	for _, ip := range r.ips {
		if strings.Contains(line, ip) {
			return true
		}
	}

	return false
}

// Empty reports whether no positive criterion is configured. An empty rule
// matches nothing; callers should warn rather than silently discard input.
func (r *Rule) Empty() bool {
	return r.regex == nil && len(r.keywords) == 0 && len(r.ips) == 0
}

// Keywords returns the configured keyword list
func (r *Rule) Keywords() []string {
	return r.keywords
}
