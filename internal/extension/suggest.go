package extension

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gosimple/slug"
)

// SuggestNamespace builds "{VendorPascal}\{SlugPascal}" from a vendor and an
// extension slug.
func SuggestNamespace(vendor, extSlug string) string {
	return pascal(vendor) + NamespaceSeparator + pascal(extSlug)
}

// SuggestSlug derives a slug from a display name. It returns "" when the
// result would not pass ValidateSlug.
func SuggestSlug(name string) string {
	s := slug.Make(name)
	if ValidateSlug(s) != nil {
		return ""
	}
	return s
}

// pascal upper-cases the first letter of every hyphen-separated word and
// joins them. The rest of each word is left as typed.
func pascal(s string) string {
	var b strings.Builder
	for _, word := range strings.Fields(strings.ReplaceAll(s, "-", " ")) {
		r, size := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(word[size:])
	}
	return b.String()
}
