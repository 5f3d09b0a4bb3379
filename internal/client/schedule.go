package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/Belphemur/ShowGraph/internal/apperrors"
	"github.com/Belphemur/ShowGraph/internal/config"
)

// FetchSchedule fetches the web/streaming schedule for one day.
// Any failure fails the whole list: there is no partial result.
func (c *client) FetchSchedule(ctx context.Context, date string) ([]json.RawMessage, error) {
	logger := config.GetLogger()
	logger.Info().Str("date", date).Msg("Fetching web schedule")

	query := url.Values{}
	query.Set("date", date)
	endpoint := fmt.Sprintf("%s/schedule/web?%s", c.baseURL, query.Encode())

	resp, err := c.getJSON(ctx, "schedule", endpoint)
	if err != nil {
		return nil, err
	}

	if !resp.ok() {
		logger.Warn().Int("statusCode", resp.StatusCode).Str("date", date).Msg("Schedule returned non-OK status")
		return nil, &apperrors.ErrUpstreamStatus{URL: endpoint, StatusCode: resp.StatusCode}
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(resp.Body, &entries); err != nil {
		return nil, apperrors.NewInvalidPayloadError("schedule", "expected a JSON array")
	}
	if entries == nil {
		// A literal null decodes to a nil slice; the schedule is still a list.
		entries = []json.RawMessage{}
	}

	logger.Info().Str("date", date).Int("entries", len(entries)).Bool("cached", resp.Cached).Msg("Successfully fetched web schedule")
	return entries, nil
}
