package lookup

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/soloran/tibiabot/internal/clients/tibiadata"
)

// nonNumericPattern strips everything but digits and dots from a raw damage
// modifier like "110%" or "110% (reduced by shielding)".
var nonNumericPattern = regexp.MustCompile(`[^0-9.]`)

// classifyModifiers splits the creature's damage modifiers into weaknesses
// (takes more than 100% damage) and strengths (takes less). A modifier of
// exactly 100%, or one whose value cannot be parsed, lands in neither list.
// Entries keep the raw modifier string: "fire (110%)".
func classifyModifiers(mods []tibiadata.DamageModifier) (weaknesses, strengths []string) {
	for _, mod := range mods {
		cleaned := nonNumericPattern.ReplaceAllString(mod.Raw, "")
		value, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			continue
		}

		entry := fmt.Sprintf("%s (%s)", mod.Element, mod.Raw)
		switch {
		case value > 100:
			weaknesses = append(weaknesses, entry)
		case value < 100:
			strengths = append(strengths, entry)
		}
	}
	return weaknesses, strengths
}

// composeCreatureDescription assembles the fixed-template creature body.
func composeCreatureDescription(record *tibiadata.CreatureData) string {
	weaknesses, strengths := classifyModifiers(record.DamageModifiers())

	return fmt.Sprintf(
		"Hit Points: %s\nExperience: %s\nWeak against: %s\nStrong against: %s",
		record.HP,
		record.Exp,
		joinOrNone(weaknesses),
		joinOrNone(strengths),
	)
}

func joinOrNone(entries []string) string {
	if len(entries) == 0 {
		return "none"
	}
	return strings.Join(entries, ", ")
}
