package chrysalis

import (
	"context"
	"fmt"

	"github.com/butterflysteps/backend/internal/calendar"
	"github.com/butterflysteps/backend/internal/logging"
)

//Icon Visual category of a coin, resolved to an asset by the client.
type Icon string

//Icons.
const (
	IconLeaf     Icon = "leaf"
	IconFlower   Icon = "flower"
	IconSun      Icon = "sun"
	IconDroplet  Icon = "droplet"
	IconFeather  Icon = "feather"
	IconStar     Icon = "star"
	IconWing     Icon = "wing"
	IconMountain Icon = "mountain"
	IconMoon     Icon = "moon"
	IconCompass  Icon = "compass"
	IconNeutral  Icon = "neutral"
)

//Theme Colors of a coin and of the profile when the coin is the active theme.
type Theme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

//Variant The coin of one challenge day.
type Variant struct {
	ID        string `json:"id"`
	DayNumber int    `json:"dayNumber"`
	Name      string `json:"name"`
	Theme     Theme  `json:"theme"`
	Icon      Icon   `json:"icon"`
}

var (
	byDay = map[int]Variant{}
	byID  = map[string]Variant{}
)

func init() {
	for _, v := range variants {
		if _, dup := byDay[v.DayNumber]; !dup {
			byDay[v.DayNumber] = v
		}
		if _, dup := byID[v.ID]; !dup {
			byID[v.ID] = v
		}
	}
}

//All Copy of the whole catalog in day order.
func All() []Variant {
	return append([]Variant(nil), variants...)
}

//Placeholder Neutral coin returned when the catalog has no entry for a day.
func Placeholder(day int) Variant {
	return Variant{
		ID:        fmt.Sprintf("chrysalis-placeholder-%03d", day),
		DayNumber: day,
		Name:      "Chrysalis",
		Theme:     Theme{Primary: "#9E9E9E", Secondary: "#EEEEEE", Accent: "#616161"},
		Icon:      IconNeutral,
	}
}

//ByDay Coin of given challenge day. Out of range days are clamped to 1..TotalDays; never fails.
func ByDay(ctx context.Context, day int) Variant {
	clamped := day
	if clamped < 1 {
		clamped = 1
	}
	if clamped > calendar.TotalDays {
		clamped = calendar.TotalDays
	}
	if clamped != day {
		logging.FromContext(ctx).Warnf("Chrysalis day %v out of range, using %v", day, clamped)
	}

	if v, ok := byDay[clamped]; ok {
		return v
	}

	logging.FromContext(ctx).Errorf("No chrysalis variant for day %v, using placeholder", clamped)
	return Placeholder(clamped)
}

//ByID Exact lookup.
func ByID(id string) (Variant, bool) {
	v, ok := byID[id]
	return v, ok
}

//Validate Checks every day 1..TotalDays has exactly one variant and ids are unique.
func Validate(vs []Variant) error {
	days := map[int]string{}
	ids := map[string]bool{}

	for _, v := range vs {
		if v.DayNumber < 1 || v.DayNumber > calendar.TotalDays {
			return fmt.Errorf("variant %v has day %v outside 1..%v", v.ID, v.DayNumber, calendar.TotalDays)
		}
		if other, dup := days[v.DayNumber]; dup {
			return fmt.Errorf("day %v has more variants: %v, %v", v.DayNumber, other, v.ID)
		}
		if ids[v.ID] {
			return fmt.Errorf("duplicate variant id %v", v.ID)
		}
		days[v.DayNumber] = v.ID
		ids[v.ID] = true
	}

	for day := 1; day <= calendar.TotalDays; day++ {
		if _, ok := days[day]; !ok {
			return fmt.Errorf("day %v has no variant", day)
		}
	}

	return nil
}

//MustValidate Panics when the built-in catalog is broken. Called on startup.
func MustValidate() {
	if err := Validate(variants); err != nil {
		panic(fmt.Sprintf("chrysalis catalog is invalid: %v", err))
	}
}
