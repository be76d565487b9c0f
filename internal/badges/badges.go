package badges

import (
	"sort"
)

//Kind What earns the badge.
type Kind string

//Badge kinds.
const (
	KindSteps Kind = "steps"
	KindEvent Kind = "event"
)

//TeamPlayerID Badge awarded for creating or joining a team.
const TeamPlayerID = "team-player"

//Badge Static badge definition. Whether a user holds it lives in the profile.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Threshold   int    `json:"threshold,omitempty"`
	Description string `json:"description"`
	Kind        Kind   `json:"kind"`
	Icon        string `json:"icon"`
}

var catalog = []Badge{
	{ID: "first-flutter", Name: "First Flutter", Threshold: 1000, Description: "Walked your first 1,000 steps.", Kind: KindSteps, Icon: "egg"},
	{ID: "caterpillar-crawl", Name: "Caterpillar Crawl", Threshold: 10000, Description: "Reached 10,000 steps.", Kind: KindSteps, Icon: "caterpillar"},
	{ID: "chrysalis-keeper", Name: "Chrysalis Keeper", Threshold: 50000, Description: "Reached 50,000 steps.", Kind: KindSteps, Icon: "chrysalis"},
	{ID: "monarch-rising", Name: "Monarch Rising", Threshold: 100000, Description: "Reached 100,000 steps.", Kind: KindSteps, Icon: "butterfly"},
	{ID: "milkweed-mile", Name: "Milkweed Milestone", Threshold: 250000, Description: "Reached 250,000 steps.", Kind: KindSteps, Icon: "milkweed"},
	{ID: "migration-master", Name: "Migration Master", Threshold: 500000, Description: "Reached 500,000 steps.", Kind: KindSteps, Icon: "map"},
	{ID: "sanctuary-legend", Name: "Sanctuary Legend", Threshold: 1000000, Description: "Reached 1,000,000 steps.", Kind: KindSteps, Icon: "forest"},
	{ID: TeamPlayerID, Name: "Team Player", Description: "Created or joined a team.", Kind: KindEvent, Icon: "group"},
}

var byID = map[string]Badge{}

func init() {
	for _, b := range catalog {
		byID[b.ID] = b
	}
}

//All Whole catalog.
func All() []Badge {
	return append([]Badge(nil), catalog...)
}

//ByID Badge definition with given id.
func ByID(id string) (Badge, bool) {
	b, ok := byID[id]
	return b, ok
}

//Milestones Step milestone badges ordered by threshold.
func Milestones() []Badge {
	var result []Badge
	for _, b := range catalog {
		if b.Kind == KindSteps {
			result = append(result, b)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Threshold < result[j].Threshold })
	return result
}

//NewlyEarned Milestones reached by currentSteps which are not in earned yet.
func NewlyEarned(currentSteps int, earned []string) []Badge {
	held := map[string]bool{}
	for _, id := range earned {
		held[id] = true
	}

	var result []Badge
	for _, b := range Milestones() {
		if b.Threshold <= currentSteps && !held[b.ID] {
			result = append(result, b)
		}
	}
	return result
}
