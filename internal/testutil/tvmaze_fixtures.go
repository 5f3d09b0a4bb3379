package testutil

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ShowOptions contains options for generating a TVmaze show document.
// Zero values leave the corresponding node out of the document.
type ShowOptions struct {
	ID      int
	Name    string
	Status  string
	Summary string
	Rating  *float64
	Image   string
	Network string
	Days    []string
	Genres  []string
}

// CastOptions contains options for generating one TVmaze cast entry.
type CastOptions struct {
	PersonName    string
	PersonImage   string
	CharacterName string
}

// Float64Ptr is a helper for creating *float64 values in tests
func Float64Ptr(v float64) *float64 {
	return &v
}

// GenerateShowJSON builds a /shows/{id} document shaped like the real TVmaze response.
func GenerateShowJSON(opts ShowOptions) string {
	doc := map[string]interface{}{
		"id":       opts.ID,
		"url":      fmt.Sprintf("https://www.tvmaze.com/shows/%d", opts.ID),
		"name":     opts.Name,
		"type":     "Scripted",
		"language": "English",
	}
	if opts.Status != "" {
		doc["status"] = opts.Status
	}
	if opts.Summary != "" {
		doc["summary"] = opts.Summary
	}
	if opts.Rating != nil {
		doc["rating"] = map[string]interface{}{"average": *opts.Rating}
	}
	if opts.Image != "" {
		doc["image"] = map[string]interface{}{"medium": opts.Image, "original": strings.Replace(opts.Image, "medium", "original", 1)}
	}
	if opts.Network != "" {
		doc["network"] = map[string]interface{}{"id": 1, "name": opts.Network}
	}
	if opts.Days != nil {
		doc["schedule"] = map[string]interface{}{"time": "22:00", "days": opts.Days}
	}
	if opts.Genres != nil {
		doc["genres"] = opts.Genres
	}
	return mustMarshal(doc)
}

// GenerateCastJSON builds a /shows/{id}/cast document.
func GenerateCastJSON(entries []CastOptions) string {
	docs := make([]map[string]interface{}, 0, len(entries))
	for i, e := range entries {
		person := map[string]interface{}{"id": i + 1, "name": e.PersonName}
		if e.PersonImage != "" {
			person["image"] = map[string]interface{}{"medium": e.PersonImage}
		} else {
			person["image"] = nil
		}
		docs = append(docs, map[string]interface{}{
			"person":    person,
			"character": map[string]interface{}{"id": 100 + i, "name": e.CharacterName},
			"self":      false,
			"voice":     false,
		})
	}
	return mustMarshal(docs)
}

// GenerateScheduleJSON builds a /schedule/web document from episode-like entries.
func GenerateScheduleJSON(entries []ShowOptions) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, GenerateShowJSON(e))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// NotFoundJSON is the body TVmaze returns for unknown resources.
const NotFoundJSON = `{"name":"Not Found","message":"","code":0,"status":404}`

func mustMarshal(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}
