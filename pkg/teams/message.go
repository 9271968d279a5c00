package teams

import "github.com/angelmondragon/licensing-relay/internal/cards"

// MessageCard is the legacy Office 365 connector card schema accepted by
// Teams incoming webhooks.
type MessageCard struct {
	Type       string    `json:"@type"`
	Context    string    `json:"@context"`
	Summary    string    `json:"summary"`
	ThemeColor string    `json:"themeColor"`
	Sections   []Section `json:"sections"`
	Actions    []Action  `json:"potentialAction,omitempty"`
}

type Section struct {
	ActivityTitle    string `json:"activityTitle"`
	ActivitySubtitle string `json:"activitySubtitle,omitempty"`
	ActivityImage    string `json:"activityImage,omitempty"`
	Facts            []Fact `json:"facts,omitempty"`
	Markdown         bool   `json:"markdown"`
}

type Fact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Action struct {
	Type    string   `json:"@type"`
	Name    string   `json:"name"`
	Targets []Target `json:"targets"`
}

type Target struct {
	OS  string `json:"os"`
	URI string `json:"uri"`
}

// FromCard converts a composed notification card to the Teams wire schema.
func FromCard(card cards.Card) MessageCard {
	msg := MessageCard{
		Type:       "MessageCard",
		Context:    "https://schema.org/extensions",
		Summary:    card.Summary,
		ThemeColor: string(card.Color),
	}

	for _, section := range card.Sections {
		out := Section{
			ActivityTitle:    section.Title,
			ActivitySubtitle: section.Subtitle,
			Markdown:         section.Markdown,
		}
		for _, fact := range section.Facts {
			out.Facts = append(out.Facts, Fact{Name: fact.Label, Value: fact.Value})
		}
		msg.Sections = append(msg.Sections, out)
	}

	for _, action := range card.Actions {
		msg.Actions = append(msg.Actions, Action{
			Type:    "OpenUri",
			Name:    action.Label,
			Targets: []Target{{OS: "default", URI: action.TargetURL}},
		})
	}

	return msg
}
