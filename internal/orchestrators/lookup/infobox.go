package lookup

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// infoboxLinePattern matches a single infobox parameter line: a pipe, a key,
// an equals sign, and the rest of the line as the value. Nested templates,
// multi-line values, and wiki-link syntax are not unwrapped; values are kept
// as raw trimmed substrings.
var infoboxLinePattern = regexp.MustCompile(`^\s*\|\s*([^=]+?)\s*=\s*(.*?)\s*$`)

// weightUnitPattern strips a trailing weight unit like " oz." from a value.
var weightUnitPattern = regexp.MustCompile(`(?i)\s*oz\.?\s*$`)

// parseInfobox scans markup line by line and collects key=value parameters.
// Keys are lowercased; a duplicate key overwrites the earlier value, so the
// last occurrence wins. Lines that are not parameters are ignored.
func parseInfobox(wikitext string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(wikitext, "\n") {
		matches := infoboxLinePattern.FindStringSubmatch(line)
		if matches == nil {
			continue
		}
		fields[strings.ToLower(matches[1])] = matches[2]
	}
	return fields
}

// firstField returns the first present field among the given keys.
func firstField(fields map[string]string, keys ...string) (string, bool) {
	for _, key := range keys {
		if value, ok := fields[key]; ok {
			return value, true
		}
	}
	return "", false
}

// startsWithVowel reports whether the name's first letter is a vowel.
func startsWithVowel(name string) bool {
	if name == "" {
		return false
	}
	return strings.ContainsRune("aeiou", rune(strings.ToLower(name)[0]))
}

// composeItemDescription assembles the fixed-template item description from
// parsed infobox fields. The input name is the fallback display name.
func composeItemDescription(name string, fields map[string]string) (title, body string) {
	actualName := name
	if explicit, ok := fields["actualname"]; ok {
		actualName = explicit
	}

	article, ok := fields["article"]
	if !ok {
		article = "a"
		if startsWithVowel(actualName) {
			article = "an"
		}
	}

	var attrs []string
	if armor, ok := fields["armor"]; ok {
		attrs = append(attrs, "Arm:"+armor)
	}
	if attrib, ok := fields["attrib"]; ok {
		attrs = append(attrs, attrib)
	}
	if resist, ok := fields["resist"]; ok {
		attrs = append(attrs, "protection "+resist)
	}

	var lines []string

	seen := fmt.Sprintf("You see %s %s", article, strings.ToLower(actualName))
	if len(attrs) > 0 {
		seen += fmt.Sprintf(" (%s)", strings.Join(attrs, ", "))
	}
	lines = append(lines, seen+".")

	lines = append(lines, "Imbuements: "+imbuementSlots(fields))

	if upgradeClass, ok := firstField(fields, "upclass", "upgradeclass"); ok {
		tier, hasTier := fields["tier"]
		if !hasTier {
			tier = "0"
		}
		lines = append(lines, fmt.Sprintf("Classification: %s Tier: %s.", upgradeClass, tier))
	}

	vocation, hasVocation := firstField(fields, "vocrequired", "vocation")
	level, hasLevel := firstField(fields, "levelrequired", "level")
	switch {
	case hasVocation && hasLevel:
		lines = append(lines, fmt.Sprintf("It can only be wielded properly by %s of level %s or higher.", vocation, level))
	case hasVocation:
		lines = append(lines, fmt.Sprintf("It can only be wielded properly by %s.", vocation))
	case hasLevel:
		lines = append(lines, fmt.Sprintf("It can only be wielded properly by players of level %s or higher.", level))
	}

	if weight, ok := fields["weight"]; ok {
		weight = weightUnitPattern.ReplaceAllString(weight, "")
		lines = append(lines, fmt.Sprintf("It weighs %s oz.", weight))
	}

	return actualName, strings.Join(lines, "\n")
}

// imbuementSlots renders the imbuement line body: "None" for zero slots,
// otherwise one "(Empty Slot)" marker per slot, space-joined. A value that
// does not parse as an integer counts as zero slots.
func imbuementSlots(fields map[string]string) string {
	raw, ok := firstField(fields, "imbueslots", "imbuementslots")
	if !ok {
		return "None"
	}

	slots, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || slots <= 0 {
		return "None"
	}

	markers := make([]string, slots)
	for i := range markers {
		markers[i] = "(Empty Slot)"
	}
	return strings.Join(markers, " ")
}
