package validators

import "strings"

// TrimPtr trims the pointed-to value in place and returns p.
func TrimPtr(p *string) *string {
	if p != nil {
		*p = strings.TrimSpace(*p)
	}
	return p
}
