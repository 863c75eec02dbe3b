package numeric

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Optional minus sign followed by ASCII digits only
	digitStringRegex = regexp.MustCompile(`^-?[0-9]+$`)
)
