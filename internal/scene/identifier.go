package scene

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName converts a host object name into an identifier the document
// schema accepts: NFC-normalized with every '.' replaced by '_'.
func NormalizeName(name string) string {
	return strings.ReplaceAll(norm.NFC.String(name), ".", "_")
}
