package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInfobox(t *testing.T) {
	testCases := []struct {
		name     string
		wikitext string
		key      string
		expected string
	}{
		{
			name:     "plain line",
			wikitext: "| Foo = Bar",
			key:      "foo",
			expected: "Bar",
		},
		{
			name:     "leading and trailing whitespace",
			wikitext: "   |   Foo   =   Bar   ",
			key:      "foo",
			expected: "Bar",
		},
		{
			name:     "value containing equals",
			wikitext: "| attrib = magic level +1 (arcane=true)",
			key:      "attrib",
			expected: "magic level +1 (arcane=true)",
		},
		{
			name:     "empty value",
			wikitext: "| resist =",
			key:      "resist",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fields := parseInfobox(tc.wikitext)
			value, ok := fields[tc.key]
			require.True(t, ok, "expected key %q to be present", tc.key)
			assert.Equal(t, tc.expected, value)
		})
	}
}

func TestParseInfobox_DuplicateKeyLastWins(t *testing.T) {
	// Duplicate keys overwrite silently; the last occurrence wins. This is
	// load-bearing behavior, change it deliberately.
	fields := parseInfobox("| armor = 1\n| armor = 17")
	assert.Equal(t, "17", fields["armor"])
}

func TestParseInfobox_IgnoresNonParameterLines(t *testing.T) {
	wikitext := "{{Infobox Item|List={{{1|}}}\n| armor = 17\n}}\nSome prose about the item.\n"
	fields := parseInfobox(wikitext)
	assert.Len(t, fields, 1)
	assert.Equal(t, "17", fields["armor"])
}

func TestComposeItemDescription_Golden(t *testing.T) {
	wikitext := `{{Infobox Item|List={{{1|}}}|GetValue=
| name          = Magic Plate Armor
| actualname    = magic plate armor
| article       = a
| armor         = 10
| attrib        = distance fighting +1
| resist        = physical 5%, fire 5%
| imbueslots    = 2
| upclass       = 4
| tier          = 0
| vocrequired   = paladins
| levelrequired = 50
| weight        = 84.00 oz
}}`

	title, body := composeItemDescription("Magic Plate Armor", parseInfobox(wikitext))

	assert.Equal(t, "magic plate armor", title)
	assert.Equal(t,
		"You see a magic plate armor (Arm:10, distance fighting +1, protection physical 5%, fire 5%).\n"+
			"Imbuements: (Empty Slot) (Empty Slot)\n"+
			"Classification: 4 Tier: 0.\n"+
			"It can only be wielded properly by paladins of level 50 or higher.\n"+
			"It weighs 84.00 oz.",
		body)
}

func TestComposeItemDescription_MinimalFields(t *testing.T) {
	title, body := composeItemDescription("Axe", parseInfobox("no infobox here"))

	assert.Equal(t, "Axe", title)
	assert.Equal(t, "You see an axe.\nImbuements: None", body)
}

func TestComposeItemDescription_ArticleFallback(t *testing.T) {
	testCases := []struct {
		name     string
		itemName string
		expected string
	}{
		{name: "consonant", itemName: "Sword", expected: "You see a sword."},
		{name: "vowel", itemName: "Umbral Blade", expected: "You see an umbral blade."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, body := composeItemDescription(tc.itemName, map[string]string{})
			assert.Contains(t, body, tc.expected)
		})
	}
}

func TestComposeItemDescription_LevelOnlyRequirement(t *testing.T) {
	fields := map[string]string{"levelrequired": "8"}
	_, body := composeItemDescription("Sword", fields)
	assert.Contains(t, body, "It can only be wielded properly by players of level 8 or higher.")
}

func TestImbuementSlots(t *testing.T) {
	testCases := []struct {
		name     string
		fields   map[string]string
		expected string
	}{
		{name: "absent", fields: map[string]string{}, expected: "None"},
		{name: "zero", fields: map[string]string{"imbueslots": "0"}, expected: "None"},
		{name: "one", fields: map[string]string{"imbueslots": "1"}, expected: "(Empty Slot)"},
		{name: "three", fields: map[string]string{"imbueslots": "3"}, expected: "(Empty Slot) (Empty Slot) (Empty Slot)"},
		{name: "alternate spelling", fields: map[string]string{"imbuementslots": "1"}, expected: "(Empty Slot)"},
		// A bad value defaults to zero slots instead of failing the lookup
		{name: "unparsable", fields: map[string]string{"imbueslots": "two"}, expected: "None"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, imbuementSlots(tc.fields))
		})
	}
}

func TestComposeItemDescription_WeightUnitStripped(t *testing.T) {
	testCases := []struct {
		name   string
		weight string
	}{
		{name: "bare number", weight: "29.00"},
		{name: "oz suffix", weight: "29.00 oz"},
		{name: "oz dot suffix", weight: "29.00 oz."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, body := composeItemDescription("Shield", map[string]string{"weight": tc.weight})
			assert.Contains(t, body, "It weighs 29.00 oz.")
		})
	}
}
