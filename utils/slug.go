package utils

import "strings"

// Slugify lowers a title into a URL-safe identity: runs of anything that is
// not an ASCII letter or digit collapse into a single hyphen, and leading or
// trailing hyphens are trimmed. Apostrophes are dropped outright rather than
// treated as word boundaries, so "Grandma's" becomes "grandmas". An empty
// result means the title is unusable; that decision belongs to the caller.
// Uniqueness is not guaranteed here — the meals table's primary key is the
// arbiter when two titles collide.
func Slugify(title string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
		case r == '\'', r == '’':
			// not a word boundary
		default:
			pending = true
		}
	}
	return b.String()
}
