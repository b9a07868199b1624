package notifications

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// placeholderPattern matches a braced identifier such as {event_title}.
var placeholderPattern = regexp.MustCompile(`\{([A-Za-z][A-Za-z0-9_]*)\}`)

// Render substitutes {name} placeholders in pattern with the stringified
// values from vars. Every occurrence of a known variable is replaced;
// placeholders with no matching variable are left verbatim. That graceful
// degrade is intentional: the repair sweep detects exactly this leftover
// state, so missing variables must not raise an error or alter the token.
func Render(pattern string, vars map[string]any) string {
	if pattern == "" || len(vars) == 0 {
		return pattern
	}

	// Sorted key order keeps output independent of map iteration order.
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	out := pattern
	for _, name := range names {
		out = strings.ReplaceAll(out, "{"+name+"}", stringifyValue(vars[name]))
	}
	return out
}

// HasPlaceholder reports whether s still contains an unsubstituted
// placeholder token.
func HasPlaceholder(s string) bool {
	return placeholderPattern.MatchString(s)
}

// placeholderNames returns the variable names referenced by pattern, in order
// of first appearance, without duplicates.
func placeholderNames(pattern string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(pattern, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		names = append(names, m[1])
	}
	return names
}

// stringifyValue produces a locale-free, deterministic textual representation:
// numbers in decimal, times in RFC 3339 UTC. Output must be reproducible so
// that re-rendering the same payload yields byte-identical text.
func stringifyValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.UTC().Format(time.RFC3339)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
