package utils

import (
	"strings"
	"unicode"
)

// ToCamelCase converts a snake_case string to camelCase: "data_format" becomes "dataFormat".
// If upperFirst is true the first letter is capitalized ("DataFormat"), otherwise it is lower-cased
// ("DstT" becomes "dstT").
//
// Leading and repeated underscores are dropped.
func ToCamelCase(s string, upperFirst bool) string {
	var res strings.Builder
	res.Grow(len(s))
	upperNext := false
	for _, r := range s {
		if r == '_' {
			upperNext = true
			continue
		}
		switch {
		case res.Len() == 0 && upperFirst:
			r = unicode.ToUpper(r)
		case res.Len() == 0:
			r = unicode.ToLower(r)
		case upperNext:
			r = unicode.ToUpper(r)
		}
		upperNext = false
		res.WriteRune(r)
	}
	return res.String()
}
