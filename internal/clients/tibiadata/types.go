package tibiadata

import (
	"bytes"
	"encoding/json"
)

// FlexString decodes a JSON value that the API emits sometimes as a string
// and sometimes as a number. Absent fields stay empty.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(data)
	return nil
}

// CreatureData represents a creature record from the creature-data API.
type CreatureData struct {
	// Name is the capitalized display name
	Name string `json:"name"`
	// ActualName is the in-game lowercase name
	ActualName string `json:"actualname"`
	// HP is the creature's hit points; a record without one is not a creature
	HP FlexString `json:"hp"`
	// Exp is the experience awarded on kill
	Exp FlexString `json:"exp"`

	// Elemental damage modifiers, raw percentage strings like "110%".
	// Absent fields are unremarkable and skipped by classification.
	PhysicalDmgMod FlexString `json:"physicalDmgMod"`
	FireDmgMod     FlexString `json:"fireDmgMod"`
	IceDmgMod      FlexString `json:"iceDmgMod"`
	EnergyDmgMod   FlexString `json:"energyDmgMod"`
	EarthDmgMod    FlexString `json:"earthDmgMod"`
	HolyDmgMod     FlexString `json:"holyDmgMod"`
	DeathDmgMod    FlexString `json:"deathDmgMod"`
	DrownDmgMod    FlexString `json:"drownDmgMod"`
	HPDrainDmgMod  FlexString `json:"hpDrainDmgMod"`
}

// DamageModifier pairs an element with its raw modifier string.
type DamageModifier struct {
	Element string
	Raw     string
}

// DamageModifiers returns the present modifiers in display order.
func (c *CreatureData) DamageModifiers() []DamageModifier {
	ordered := []DamageModifier{
		{Element: "physical", Raw: string(c.PhysicalDmgMod)},
		{Element: "fire", Raw: string(c.FireDmgMod)},
		{Element: "ice", Raw: string(c.IceDmgMod)},
		{Element: "energy", Raw: string(c.EnergyDmgMod)},
		{Element: "earth", Raw: string(c.EarthDmgMod)},
		{Element: "holy", Raw: string(c.HolyDmgMod)},
		{Element: "death", Raw: string(c.DeathDmgMod)},
		{Element: "drown", Raw: string(c.DrownDmgMod)},
		{Element: "life drain", Raw: string(c.HPDrainDmgMod)},
	}

	present := make([]DamageModifier, 0, len(ordered))
	for _, m := range ordered {
		if m.Raw != "" {
			present = append(present, m)
		}
	}
	return present
}
