// Package transform reshapes raw TVmaze documents into the normalized records
// served by the GraphQL API.
package transform

import (
	"bytes"
	"encoding/json"

	"github.com/Belphemur/ShowGraph/internal/apperrors"
	"github.com/Belphemur/ShowGraph/internal/models"
)

// Show maps one upstream show document, plus an optional cast document, into a models.Show.
//
// showData must be a JSON object; it is the only input that can make Show fail.
// castData may be nil or any JSON value: only an array contributes cast members,
// every other shape (object, null, error body) yields an empty cast.
// Neither input is modified.
func Show(showData, castData json.RawMessage) (*models.Show, error) {
	if firstToken(showData) != '{' {
		return nil, apperrors.NewInvalidPayloadError("show", "expected a JSON object")
	}

	var upstream models.UpstreamShow
	if err := json.Unmarshal(showData, &upstream); err != nil {
		return nil, apperrors.NewInvalidPayloadError("show", err.Error())
	}

	return &models.Show{
		ID:      upstream.ID,
		Name:    upstream.Name,
		Rating:  upstream.Rating.AverageValue(),
		Image:   upstream.Image.MediumURL(),
		Summary: upstream.Summary,
		Network: upstream.Network.NetworkName(),
		AirDay:  upstream.Schedule.FirstDay(),
		Status:  upstream.Status,
		Genres:  upstream.Genres,
		Cast:    Cast(castData),
	}, nil
}

// Cast maps a cast document into cast members, one per array element and in the same order.
// Elements that are not objects produce a member with every field absent.
func Cast(castData json.RawMessage) []models.CastMember {
	if firstToken(castData) != '[' {
		return []models.CastMember{}
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(castData, &entries); err != nil {
		return []models.CastMember{}
	}

	cast := make([]models.CastMember, len(entries))
	for i, raw := range entries {
		var entry models.UpstreamCastEntry
		if firstToken(raw) == '{' {
			// A mistyped leaf leaves the member empty rather than failing the show.
			if err := json.Unmarshal(raw, &entry); err != nil {
				entry = models.UpstreamCastEntry{}
			}
		}
		cast[i] = models.CastMember{
			Name:           entry.Person.PersonName(),
			CharacterName:  entry.Character.CharacterName(),
			CharacterImage: entry.Person.ImageURL(),
		}
	}
	return cast
}

// firstToken returns the first non-whitespace byte of a JSON document, or 0 when empty.
func firstToken(data json.RawMessage) byte {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}
