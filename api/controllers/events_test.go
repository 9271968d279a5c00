package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListEvents(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)

	ListEvents()(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	var body struct {
		Data struct {
			Categories []struct {
				Category string   `json:"category"`
				Icon     string   `json:"icon"`
				Color    string   `json:"color"`
				Events   []string `json:"events"`
			} `json:"categories"`
			KnownEvents int `json:"known_events"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if len(body.Data.Categories) == 0 {
		t.Fatal("expected at least one category")
	}

	total := 0
	seen := map[string]bool{}
	for _, cat := range body.Data.Categories {
		if cat.Category == "" || cat.Icon == "" || cat.Color == "" {
			t.Fatalf("incomplete category %+v", cat)
		}
		if seen[cat.Category] {
			t.Fatalf("duplicate category %q", cat.Category)
		}
		seen[cat.Category] = true
		total += len(cat.Events)
	}
	if total != body.Data.KnownEvents {
		t.Fatalf("known_events %d does not match listed events %d", body.Data.KnownEvents, total)
	}
	if !seen["license"] {
		t.Fatal("expected the license category to be listed")
	}
}
