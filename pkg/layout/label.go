package layout

import "regexp"

var extensionRe = regexp.MustCompile(`\.[^/.]+$`)

// Label derives a display label from a filename by stripping a trailing
// extension: a final "." followed by one or more characters that are neither
// "." nor "/". "a.tar.gz" becomes "a.tar"; "dir.v1/file" and "file." are
// returned unchanged.
func Label(filename string) string {
	return extensionRe.ReplaceAllString(filename, "")
}
