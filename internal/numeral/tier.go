package numeral

import "fmt"

// Role is the position a symbol takes inside one digit's pattern.
type Role int

const (
	Low Role = iota
	Mid
	High
)

func (r Role) String() string {
	switch r {
	case Low:
		return "low"
	case Mid:
		return "mid"
	case High:
		return "high"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Tier holds the three symbols usable at one magnitude level.
type Tier struct {
	Unit  string `json:"unit"`
	Mid   string `json:"mid"`
	Upper string `json:"upper"`

	// alias is a second spelling of Unit accepted when reading.
	alias string
}

// Levels is the number of magnitude tiers, one per decimal digit of Max.
const Levels = 6

// The level 3 unit is written as the plain M rather than _I_: both are worth
// 1,000 and M keeps numerals below 4,000 classical. _I_ is still read.
var tiers = [Levels]Tier{
	{Unit: "I", Mid: "V", Upper: "X"},
	{Unit: "X", Mid: "L", Upper: "C"},
	{Unit: "C", Mid: "D", Upper: "M"},
	{Unit: "M", Mid: "_V_", Upper: "_X_", alias: "_I_"},
	{Unit: "_X_", Mid: "_L_", Upper: "_C_"},
	{Unit: "_C_", Mid: "_D_", Upper: "_M_"},
}

// TierAt returns the tier for a magnitude level (0 = ones).
func TierAt(level int) (Tier, error) {
	if level < 0 || level >= Levels {
		return Tier{}, fmt.Errorf("tier %d: %w", level, ErrOutOfRange)
	}
	return tiers[level], nil
}

// Symbol returns the concrete symbol bound to a role.
func (t Tier) Symbol(r Role) string {
	switch r {
	case Low:
		return t.Unit
	case Mid:
		return t.Mid
	case High:
		return t.Upper
	}
	return ""
}

// RoleOf locates a symbol within the tier.
func (t Tier) RoleOf(symbol string) (Role, bool) {
	switch symbol {
	case t.Unit:
		return Low, true
	case t.Mid:
		return Mid, true
	case t.Upper:
		return High, true
	}
	if t.alias != "" && symbol == t.alias {
		return Low, true
	}
	return 0, false
}
