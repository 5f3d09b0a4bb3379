package transform

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Belphemur/ShowGraph/internal/apperrors"
	"github.com/Belphemur/ShowGraph/internal/models"
)

func strPtr(s string) *string { return &s }
func int32Ptr(i int32) *int32 { return &i }
func floatPtr(f float64) *float64 { return &f }
func genresPtr(g ...string) *[]string { return &g }

func TestShow_MinimalShowWithoutCast(t *testing.T) {
	got, err := Show(json.RawMessage(`{"id":1,"name":"X","status":"Running"}`), nil)
	if err != nil {
		t.Fatalf("Show failed: %v", err)
	}

	want := &models.Show{
		ID:     int32Ptr(1),
		Name:   strPtr("X"),
		Status: strPtr("Running"),
		Cast:   []models.CastMember{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Show() mismatch (-want +got):\n%s", diff)
	}
	if got.Cast == nil {
		t.Error("Expected cast to be an empty slice, not nil")
	}
}

func TestShow_FullShowWithEmptyCast(t *testing.T) {
	showData := json.RawMessage(`{
		"id": 2,
		"name": "Y",
		"rating": {"average": 8.5},
		"image": {"medium": "u"},
		"network": {"name": "NBC"},
		"schedule": {"days": ["Monday", "Tuesday"]},
		"status": "Ended",
		"genres": ["Drama"]
	}`)

	got, err := Show(showData, json.RawMessage(`[]`))
	if err != nil {
		t.Fatalf("Show failed: %v", err)
	}

	want := &models.Show{
		ID:      int32Ptr(2),
		Name:    strPtr("Y"),
		Rating:  floatPtr(8.5),
		Image:   strPtr("u"),
		Network: strPtr("NBC"),
		AirDay:  strPtr("Monday"),
		Status:  strPtr("Ended"),
		Genres:  genresPtr("Drama"),
		Cast:    []models.CastMember{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Show() mismatch (-want +got):\n%s", diff)
	}
}

func TestShow_CastMapping(t *testing.T) {
	castData := json.RawMessage(`[{"person":{"name":"A","image":{"medium":"img"}},"character":{"name":"Bob"}}]`)

	got, err := Show(json.RawMessage(`{"id":3,"name":"Z","status":"Running"}`), castData)
	if err != nil {
		t.Fatalf("Show failed: %v", err)
	}

	want := []models.CastMember{
		{Name: strPtr("A"), CharacterName: strPtr("Bob"), CharacterImage: strPtr("img")},
	}
	if diff := cmp.Diff(want, got.Cast); diff != "" {
		t.Errorf("Cast mismatch (-want +got):\n%s", diff)
	}
}

func TestShow_MissingNestedNodes(t *testing.T) {
	tests := []struct {
		name     string
		showData string
	}{
		{name: "absent nodes", showData: `{"id":1,"name":"X","status":"Running"}`},
		{name: "null nodes", showData: `{"id":1,"name":"X","status":"Running","rating":null,"image":null,"network":null,"schedule":null}`},
		{name: "empty nodes", showData: `{"id":1,"name":"X","status":"Running","rating":{},"image":{},"network":{},"schedule":{}}`},
		{name: "null leaves", showData: `{"id":1,"name":"X","status":"Running","rating":{"average":null},"image":{"medium":null},"network":{"name":null},"schedule":{"days":null}}`},
		{name: "empty days", showData: `{"id":1,"name":"X","status":"Running","schedule":{"time":"","days":[]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Show(json.RawMessage(tt.showData), nil)
			if err != nil {
				t.Fatalf("Show failed: %v", err)
			}
			if got.Rating != nil {
				t.Errorf("Expected nil rating, got %v", *got.Rating)
			}
			if got.Image != nil {
				t.Errorf("Expected nil image, got %q", *got.Image)
			}
			if got.Network != nil {
				t.Errorf("Expected nil network, got %q", *got.Network)
			}
			if got.AirDay != nil {
				t.Errorf("Expected nil airDay, got %q", *got.AirDay)
			}
			if got.Summary != nil || got.Genres != nil {
				t.Error("Expected nil summary and genres")
			}
		})
	}
}

func TestShow_NonArrayCastYieldsEmptyCast(t *testing.T) {
	showData := json.RawMessage(`{"id":1,"name":"X","status":"Running"}`)
	inputs := map[string]json.RawMessage{
		"nil":          nil,
		"null":         json.RawMessage(`null`),
		"object":       json.RawMessage(`{"person":{"name":"A"}}`),
		"error body":   json.RawMessage(`{"name":"Not Found","message":"","code":0,"status":404}`),
		"string":       json.RawMessage(`"cast"`),
		"number":       json.RawMessage(`42`),
		"empty":        json.RawMessage(``),
		"broken array": json.RawMessage(`[{"person":`),
	}

	for name, castData := range inputs {
		t.Run(name, func(t *testing.T) {
			got, err := Show(showData, castData)
			if err != nil {
				t.Fatalf("Show failed: %v", err)
			}
			if got.Cast == nil || len(got.Cast) != 0 {
				t.Errorf("Expected empty non-nil cast, got %#v", got.Cast)
			}
		})
	}
}

func TestCast_PreservesLengthAndOrder(t *testing.T) {
	castData := json.RawMessage(`[
		{"person":{"name":"First","image":{"medium":"1.jpg"}},"character":{"name":"One"}},
		{"person":{"name":"Second","image":null},"character":{"name":"Two"}},
		{"person":null,"character":null},
		null,
		"not an entry",
		{"character":{"name":"Orphan"}},
		{"person":{"name":5},"character":{"name":"Mistyped"}}
	]`)

	got := Cast(castData)

	want := []models.CastMember{
		{Name: strPtr("First"), CharacterName: strPtr("One"), CharacterImage: strPtr("1.jpg")},
		{Name: strPtr("Second"), CharacterName: strPtr("Two")},
		{},
		{},
		{},
		{CharacterName: strPtr("Orphan")},
		{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Cast() mismatch (-want +got):\n%s", diff)
	}
}

func TestShow_InvalidShowData(t *testing.T) {
	inputs := map[string]json.RawMessage{
		"nil":       nil,
		"null":      json.RawMessage(`null`),
		"array":     json.RawMessage(`[{"id":1}]`),
		"string":    json.RawMessage(`"show"`),
		"malformed": json.RawMessage(`{"id":`),
		"bad type":  json.RawMessage(`{"id":"one"}`),
	}

	for name, showData := range inputs {
		t.Run(name, func(t *testing.T) {
			got, err := Show(showData, nil)
			if err == nil {
				t.Fatalf("Expected error, got %+v", got)
			}
			if !errors.Is(err, &apperrors.ErrInvalidPayload{}) {
				t.Errorf("Expected ErrInvalidPayload, got %v", err)
			}
		})
	}
}

func TestShow_IsIdempotentAndDoesNotMutateInputs(t *testing.T) {
	showData := json.RawMessage(`{"id":7,"name":"Same","status":"Running","schedule":{"days":["Friday"]},"genres":["Comedy","Drama"]}`)
	castData := json.RawMessage(`[{"person":{"name":"A","image":{"medium":"img"}},"character":{"name":"Bob"}}]`)
	showCopy := append(json.RawMessage(nil), showData...)
	castCopy := append(json.RawMessage(nil), castData...)

	first, err := Show(showData, castData)
	if err != nil {
		t.Fatalf("first Show failed: %v", err)
	}
	second, err := Show(showData, castData)
	if err != nil {
		t.Fatalf("second Show failed: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Show() not idempotent (-first +second):\n%s", diff)
	}
	if string(showData) != string(showCopy) || string(castData) != string(castCopy) {
		t.Error("Show() mutated its inputs")
	}
}

func TestShow_ScheduleEpisodeShape(t *testing.T) {
	// /schedule/web entries are episodes: no network, status or schedule block.
	episode := json.RawMessage(`{
		"id": 2484590,
		"name": "Episode 1",
		"airdate": "2023-01-01",
		"rating": {"average": null},
		"image": {"medium": "https://static.tvmaze.com/ep.jpg", "original": "https://static.tvmaze.com/ep-orig.jpg"},
		"summary": "<p>Pilot.</p>",
		"_embedded": {"show": {"id": 1, "name": "Parent"}}
	}`)

	got, err := Show(episode, nil)
	if err != nil {
		t.Fatalf("Show failed: %v", err)
	}

	want := &models.Show{
		ID:      int32Ptr(2484590),
		Name:    strPtr("Episode 1"),
		Image:   strPtr("https://static.tvmaze.com/ep.jpg"),
		Summary: strPtr("<p>Pilot.</p>"),
		Cast:    []models.CastMember{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Show() mismatch (-want +got):\n%s", diff)
	}
}
