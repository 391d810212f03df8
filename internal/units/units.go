// Package units converts between the human-readable quantities Docker
// prints and normalized numeric/string forms. All values are carried
// internally as MiB.
package units

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rusenback/dockmon/internal/errors"
)

const (
	timestampInputLayout  = "2006-01-02 15:04:05"
	timestampOutputLayout = "2006-01-02 15:04"
)

var memValueRe = regexp.MustCompile(`^([0-9.]+)([A-Z]+)$`)

// NormalizeTimestamp converts a Docker CreatedAt string, whose first 19
// characters are "YYYY-MM-DD HH:MM:SS", into "YYYY-MM-DD HH:MM" in local
// time. Malformed input is returned unchanged.
func NormalizeTimestamp(s string) string {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) < len(timestampInputLayout) {
		return s
	}
	t, err := time.ParseInLocation(timestampInputLayout, trimmed[:len(timestampInputLayout)], time.Local)
	if err != nil {
		return s
	}
	return t.Format(timestampOutputLayout)
}

// ParseMemValue parses a quantity like "512MiB" or "1.5GiB" into MiB.
// Units are matched case-insensitively after stripping spaces. The
// sentinels N/A, NA, N and A mean zero. Unknown units or unparseable
// numbers return a PARSE error together with zero.
func ParseMemValue(s string) (float64, error) {
	clean := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), " ", "")
	switch clean {
	case "N/A", "NA", "N", "A":
		return 0, nil
	}

	m := memValueRe.FindStringSubmatch(clean)
	if m == nil {
		return 0, errors.Newf(errors.ErrParse, "invalid memory value %q", s)
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrParse, fmt.Sprintf("invalid number in %q", s))
	}

	switch m[2] {
	case "GIB":
		return value * 1024, nil
	case "MIB":
		return value, nil
	case "KIB":
		return value / 1024, nil
	default:
		return 0, errors.Newf(errors.ErrParse, "unknown memory unit %q in %q", m[2], s)
	}
}

// FormatBytes formats a MiB quantity with the largest unit that keeps the
// value under 1024, falling through to PiB.
func FormatBytes(mib float64) string {
	for _, unit := range []string{"MiB", "GiB", "TiB"} {
		if mib < 1024 {
			return fmt.Sprintf("%.1f%s", mib, unit)
		}
		mib /= 1024
	}
	return fmt.Sprintf("%.1fPiB", mib)
}

// ReformatMemUsage rewrites a Docker "<used>/<limit>" memory string with
// both sides normalized through FormatBytes, joined as "<used> / <limit>".
// Anything that does not split into exactly two parts is returned
// unchanged. Unparseable sides degrade to zero.
func ReformatMemUsage(s string) string {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return s
	}
	used, _ := ParseMemValue(parts[0])
	limit, _ := ParseMemValue(parts[1])
	return FormatBytes(used) + " / " + FormatBytes(limit)
}
