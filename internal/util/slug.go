package util

import "strings"

// Unslug turns a path segment back into a display name by replacing every
// hyphen with a space. Names that contain a literal hyphen do not survive.
func Unslug(s string) string {
	return strings.ReplaceAll(s, "-", " ")
}

func Slug(name string) string {
	return strings.ReplaceAll(name, " ", "-")
}

// EscapeLike escapes LIKE wildcards using '!' as the escape character.
func EscapeLike(s string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return r.Replace(s)
}
