package resolver

import (
	"github.com/Belphemur/ShowGraph/internal/models"
	"github.com/Belphemur/ShowGraph/internal/parser"
)

// ShowResolver resolves the fields of the Show type.
type ShowResolver struct {
	show *models.Show
}

func (s *ShowResolver) ID() *int32 {
	return s.show.ID
}

func (s *ShowResolver) Name() *string {
	return s.show.Name
}

func (s *ShowResolver) Rating() *float64 {
	return s.show.Rating
}

func (s *ShowResolver) Image() *string {
	return s.show.Image
}

func (s *ShowResolver) Summary() *string {
	return s.show.Summary
}

// SummaryText is the HTML summary rendered as plain text.
func (s *ShowResolver) SummaryText() *string {
	if s.show.Summary == nil {
		return nil
	}
	text := parser.PlainText(*s.show.Summary)
	return &text
}

func (s *ShowResolver) Network() *string {
	return s.show.Network
}

func (s *ShowResolver) AirDay() *string {
	return s.show.AirDay
}

func (s *ShowResolver) Status() *string {
	return s.show.Status
}

func (s *ShowResolver) Genres() *[]*string {
	if s.show.Genres == nil {
		return nil
	}
	genres := make([]*string, len(*s.show.Genres))
	for i := range *s.show.Genres {
		genres[i] = &(*s.show.Genres)[i]
	}
	return &genres
}

// Cast is always a list, possibly empty.
func (s *ShowResolver) Cast() *[]*CastMemberResolver {
	cast := make([]*CastMemberResolver, len(s.show.Cast))
	for i := range s.show.Cast {
		cast[i] = &CastMemberResolver{member: &s.show.Cast[i]}
	}
	return &cast
}

// CastMemberResolver resolves the fields of the CastMember type.
type CastMemberResolver struct {
	member *models.CastMember
}

func (c *CastMemberResolver) Name() *string {
	return c.member.Name
}

func (c *CastMemberResolver) CharacterName() *string {
	return c.member.CharacterName
}

func (c *CastMemberResolver) CharacterImage() *string {
	return c.member.CharacterImage
}
