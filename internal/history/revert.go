package history

import "strings"

const revertPrefix = `Revert "`

// ParseRevertSubject extracts the quoted original subject from a revert
// commit message of the form `Revert "<original-subject>"`. The subject runs
// to the last quote, so subjects containing quotes survive intact.
func ParseRevertSubject(message string) (string, bool) {
	if !strings.HasPrefix(message, revertPrefix) {
		return "", false
	}
	rest := message[len(revertPrefix):]
	end := strings.LastIndex(rest, `"`)
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}
