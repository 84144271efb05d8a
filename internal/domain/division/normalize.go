package division

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents descompone a NFD, elimina las marcas diacríticas y recompone.
// Los nombres de proveedor/cliente llegan con tildes inconsistentes desde el
// store; sin esto "Café" y "Cafe" no casarían con la misma keyword.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza un texto para el matching por keywords: sin tildes y en mayúsculas.
func Fold(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		out = s
	}
	return strings.ToUpper(out)
}

// containsAny reporta si el texto ya normalizado contiene alguna keyword.
// Las keywords de las tablas se guardan pre-normalizadas; el orden del slice
// es significativo y se respeta tal cual.
func containsAny(folded string, keywords []string) bool {
	if folded == "" {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}
