package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Belphemur/ShowGraph/internal/apperrors"
	"github.com/Belphemur/ShowGraph/internal/config"
)

// FetchShow fetches the main document of a show.
func (c *client) FetchShow(ctx context.Context, id int) (json.RawMessage, error) {
	logger := config.GetLogger()
	logger.Debug().Int("showID", id).Msg("Fetching show")

	endpoint := fmt.Sprintf("%s/shows/%d", c.baseURL, id)
	resp, err := c.getJSON(ctx, "show", endpoint)
	if err != nil {
		var statusErr *apperrors.ErrUpstreamStatus
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, apperrors.NewShowNotFoundError(id)
		}
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		logger.Warn().Int("showID", id).Msg("Show not found upstream")
		return nil, apperrors.NewShowNotFoundError(id)
	case !resp.ok():
		logger.Warn().Int("statusCode", resp.StatusCode).Int("showID", id).Msg("Show returned non-OK status")
		return nil, &apperrors.ErrUpstreamStatus{URL: endpoint, StatusCode: resp.StatusCode}
	}

	return resp.Body, nil
}

// FetchCast fetches the cast list of a show. A JSON error body is passed through
// unchanged so that the transformer can turn it into an empty cast.
func (c *client) FetchCast(ctx context.Context, id int) (json.RawMessage, error) {
	logger := config.GetLogger()
	logger.Debug().Int("showID", id).Msg("Fetching cast")

	endpoint := fmt.Sprintf("%s/shows/%d/cast", c.baseURL, id)
	resp, err := c.getJSON(ctx, "cast", endpoint)
	if err != nil {
		return nil, err
	}

	if !resp.ok() {
		logger.Warn().Int("statusCode", resp.StatusCode).Int("showID", id).Msg("Cast returned non-OK status, passing body through")
	}

	return resp.Body, nil
}
