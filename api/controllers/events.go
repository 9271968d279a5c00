package controllers

import (
	"net/http"

	"github.com/angelmondragon/licensing-relay/api/responses"
	"github.com/angelmondragon/licensing-relay/internal/cards"
)

type eventCategory struct {
	Category string   `json:"category"`
	Icon     string   `json:"icon"`
	Color    string   `json:"color"`
	Events   []string `json:"events"`
}

// ListEvents exposes the classification taxonomy so operators can see which
// event names the relay recognizes and how each category is styled.
func ListEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		registry := cards.Registry()
		out := make([]eventCategory, 0, len(registry))
		for _, desc := range registry {
			out = append(out, eventCategory{
				Category: string(desc.Category),
				Icon:     desc.Icon,
				Color:    string(desc.BaseColor),
				Events:   desc.Events,
			})
		}
		responses.WriteSuccess(w, map[string]any{
			"categories":   out,
			"known_events": cards.KnownEventCount(),
		})
	}
}
