package rulebook

import (
	"strings"

	"golang.org/x/text/cases"
)

var keyReplacer = strings.NewReplacer(" ", "-", "_", "-", "'", "", "’", "", ":", "", ",", "")

// Key normalizes a display name ("Eldritch Knight", "Stone's Endurance") into
// the lookup key used by every table ("eldritch-knight", "stones-endurance").
// A trailing parenthetical such as "Channel Divinity (1/rest)" is dropped.
func Key(name string) string {
	if i := strings.Index(name, "("); i >= 0 {
		name = name[:i]
	}
	folded := cases.Fold().String(strings.TrimSpace(name))
	return strings.Trim(keyReplacer.Replace(folded), "-")
}
