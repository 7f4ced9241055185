package extraction

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	tmpPrefixRe   = regexp.MustCompile(`^tmp[A-Z0-9_]*`)
	fromClauseRe  = regexp.MustCompile(`(.+) from (.+)`)
	labelCharsRe  = regexp.MustCompile(`[^a-zA-Z0-9 \-_]`)
)

// DistributorName derives a human-readable distributor label from a report's
// original file name. Temp-upload prefixes and the extension are stripped; a
// "<report> from <origin>" stem keeps the origin part; anything outside
// alnum/space/hyphen/underscore is removed. Stems shorter than 3 characters
// get a generated placeholder label so the dashboard never shows a blank
// distributor. Pure function of the name string.
func DistributorName(fileName string) string {
	base := filepath.Base(fileName)
	base = tmpPrefixRe.ReplaceAllString(base, "")

	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if name == "" {
		if ext != "" {
			name = "Distributor-" + ext[1:]
		} else {
			name = "Unknown-Distributor"
		}
	}

	// Upload names embed the workbook origin as "<report> from <origin>".
	if m := fromClauseRe.FindStringSubmatch(name); m != nil {
		if origin := strings.TrimSpace(m[2]); origin != "" {
			name = origin
		}
	}

	name = strings.TrimSpace(labelCharsRe.ReplaceAllString(name, ""))
	if len(name) < 3 {
		if name == "" {
			name = "Unknown"
		}
		name = "Distributor-" + name
	}
	return name
}
