// Package resolver binds the GraphQL Query type to the TVmaze client.
package resolver

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Belphemur/ShowGraph/internal/apperrors"
	"github.com/Belphemur/ShowGraph/internal/client"
	"github.com/Belphemur/ShowGraph/internal/config"
	"github.com/Belphemur/ShowGraph/internal/reporting"
	"github.com/Belphemur/ShowGraph/internal/transform"
)

// Resolver is the root resolver of the schema. It is immutable after construction
// and safe for concurrent use.
type Resolver struct {
	client       client.Client
	scheduleDate string
	logger       zerolog.Logger
}

// NewResolver creates the root resolver. scheduleDate (YYYY-MM-DD) is the day served by Query.schedule.
func NewResolver(c client.Client, scheduleDate string) *Resolver {
	if scheduleDate == "" {
		scheduleDate = config.DefaultScheduleDate
	}
	return &Resolver{
		client:       c,
		scheduleDate: scheduleDate,
		logger:       config.GetLogger(),
	}
}

// ShowArgs are the arguments of Query.show.
type ShowArgs struct {
	ID *int32
}

// Schedule resolves Query.schedule: every entry of the web schedule, in upstream order.
func (r *Resolver) Schedule(ctx context.Context) (*[]*ShowResolver, error) {
	r.logger.Debug().Str("date", r.scheduleDate).Msg("Schedule called")

	entries, err := r.client.FetchSchedule(ctx, r.scheduleDate)
	if err != nil {
		return nil, r.fail(ctx, err, "Failed to get schedule", "failed to get schedule")
	}

	shows := make([]*ShowResolver, len(entries))
	for i, entry := range entries {
		show, err := transform.Show(entry, nil)
		if err != nil {
			return nil, r.fail(ctx, err, "Failed to transform schedule entry", fmt.Sprintf("failed to transform schedule entry %d", i))
		}
		shows[i] = &ShowResolver{show: show}
	}

	r.logger.Debug().Int("count", len(shows)).Msg("Schedule completed")
	return &shows, nil
}

// Show resolves Query.show. The show document and its cast are fetched concurrently;
// if either request fails the other one is cancelled and the field fails.
func (r *Resolver) Show(ctx context.Context, args ShowArgs) (*ShowResolver, error) {
	if args.ID == nil {
		return nil, &apperrors.ErrMissingArgument{Field: "show", Name: "id"}
	}
	id := int(*args.ID)
	r.logger.Debug().Int("showID", id).Msg("Show called")

	var showData, castData []byte
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := r.client.FetchShow(gctx, id)
		if err != nil {
			return fmt.Errorf("show: %w", err)
		}
		showData = data
		return nil
	})
	g.Go(func() error {
		data, err := r.client.FetchCast(gctx, id)
		if err != nil {
			return fmt.Errorf("cast: %w", err)
		}
		castData = data
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, r.failShow(ctx, err, id)
	}

	show, err := transform.Show(showData, castData)
	if err != nil {
		return nil, r.failShow(ctx, err, id)
	}

	r.logger.Debug().Int("showID", id).Int("castCount", len(show.Cast)).Msg("Show completed")
	return &ShowResolver{show: show}, nil
}

func (r *Resolver) failShow(ctx context.Context, err error, id int) error {
	r.logger.Error().Err(err).Int("showID", id).Msg("Failed to get show")
	reporting.CaptureException(ctx, err)
	return fmt.Errorf("failed to get show %d: %w", id, err)
}

func (r *Resolver) fail(ctx context.Context, err error, logMsg, errMsg string) error {
	r.logger.Error().Err(err).Str("date", r.scheduleDate).Msg(logMsg)
	reporting.CaptureException(ctx, err)
	return fmt.Errorf("%s: %w", errMsg, err)
}
