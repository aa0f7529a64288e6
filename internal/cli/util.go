package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var wsRegexp = regexp.MustCompile(`\s+`)

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid index %q", s)
	}
	return n, nil
}

func compactText(v string, max int) string {
	v = strings.TrimSpace(wsRegexp.ReplaceAllString(v, " "))
	if max <= 0 || len(v) <= max {
		return v
	}
	return v[:max-1] + "..."
}

func fallback(v, fb string) string {
	if strings.TrimSpace(v) == "" {
		return fb
	}
	return v
}

func lower(v string) string {
	return strings.ToLower(v)
}
