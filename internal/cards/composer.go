package cards

import (
	"strings"
	"time"

	"github.com/angelmondragon/licensing-relay/internal/event"
)

// Section is one block of a notification card.
type Section struct {
	Title    string
	Subtitle string
	Facts    []Fact
	Markdown bool
}

// Action is a clickable card button.
type Action struct {
	Label     string
	TargetURL string
}

// Card is the normalized notification document handed to the delivery
// transport. Constructed fresh per request and never persisted.
type Card struct {
	Summary  string
	Color    Color
	Sections []Section
	Actions  []Action
}

// Composer turns a decoded webhook payload into a Card. Stateless and safe
// for concurrent use.
type Composer struct {
	dashboardBaseURL string
}

func NewComposer(dashboardBaseURL string) *Composer {
	return &Composer{dashboardBaseURL: strings.TrimRight(dashboardBaseURL, "/")}
}

// Compose builds the notification card for one event. Identical inputs
// always produce identical output; the only clock involved is the caller
// supplied webhook creation time.
func (c *Composer) Compose(eventName string, obj event.Object, related []event.Object, createdAt time.Time) Card {
	meta := Classify(eventName)

	facts := Extract(meta.Category, obj.Attributes)
	facts = prependContextFacts(eventName, facts)

	summary := meta.DisplayName
	subtitle := DisplayName(string(meta.Category))

	if account, ok := relatedAccount(related); ok {
		if name := accountDisplayName(account); name != "" {
			facts = append([]Fact{{Label: "Account", Value: name}}, facts...)
			summary = summary + " - " + name
			subtitle = subtitle + " - " + name
		}
	}

	facts = append(facts, Fact{Label: "Event Time", Value: FormatTimestamp(createdAt)})

	card := Card{
		Summary: summary,
		Color:   meta.Color,
		Sections: []Section{{
			Title:    meta.Icon + " " + meta.DisplayName,
			Subtitle: subtitle,
			Facts:    facts,
			Markdown: true,
		}},
	}

	for _, warning := range DetectWarnings(eventName, obj.Attributes) {
		card.Sections = append(card.Sections, Section{
			Title:    warning.Title,
			Subtitle: warning.Subtitle,
			Markdown: true,
		})
	}

	card.Actions = c.buildActions(meta.Category, obj)
	return card
}

// prependContextFacts inserts the event-specific lead facts: validation
// outcome for validation events, usage direction for usage events.
func prependContextFacts(eventName string, facts []Fact) []Fact {
	switch {
	case strings.Contains(eventName, "validation.succeeded"):
		return append([]Fact{{Label: "Validation Result", Value: "Succeeded"}}, facts...)
	case strings.Contains(eventName, "validation.failed"):
		return append([]Fact{{Label: "Validation Result", Value: "Failed"}}, facts...)
	case strings.Contains(eventName, "usage.incremented"):
		return append([]Fact{{Label: "Usage", Value: "Incremented"}}, facts...)
	case strings.Contains(eventName, "usage.decremented"):
		return append([]Fact{{Label: "Usage", Value: "Decremented"}}, facts...)
	case strings.Contains(eventName, "usage.reset"):
		return append([]Fact{{Label: "Usage", Value: "Reset"}}, facts...)
	}
	return facts
}

func (c *Composer) buildActions(category Category, obj event.Object) []Action {
	accountID := obj.AccountID()
	if accountID == "" && category == CategoryAccount {
		accountID = obj.ID
	}

	var actions []Action
	if link, ok := BuildLink(c.dashboardBaseURL, category, obj.ID, accountID); ok {
		actions = append(actions, Action{
			Label:     "View " + DisplayName(string(category)),
			TargetURL: link,
		})
	}
	if accountID != "" && category != CategoryAccount {
		if link, ok := AccountLink(c.dashboardBaseURL, accountID); ok {
			actions = append(actions, Action{
				Label:     "View Account Dashboard",
				TargetURL: link,
			})
		}
	}
	return actions
}

func relatedAccount(related []event.Object) (event.Object, bool) {
	for _, obj := range related {
		if obj.IsAccount() {
			return obj, true
		}
	}
	return event.Object{}, false
}

func accountDisplayName(account event.Object) string {
	if name := stringValue(account.Attributes, "name"); name != notAvailable {
		return name
	}
	if slug := stringValue(account.Attributes, "slug"); slug != notAvailable {
		return slug
	}
	return ""
}
