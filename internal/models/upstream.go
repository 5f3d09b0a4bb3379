package models

// UpstreamShow is the subset of a TVmaze show (or schedule entry) consumed by the transformer.
// Every nested node is a pointer so that a missing or null node decodes to nil.
type UpstreamShow struct {
	ID       *int32            `json:"id"`
	Name     *string           `json:"name"`
	Summary  *string           `json:"summary"`
	Status   *string           `json:"status"`
	Genres   *[]string         `json:"genres"`
	Rating   *UpstreamRating   `json:"rating"`
	Image    *UpstreamImage    `json:"image"`
	Network  *UpstreamNetwork  `json:"network"`
	Schedule *UpstreamSchedule `json:"schedule"`
}

type UpstreamRating struct {
	Average *float64 `json:"average"`
}

type UpstreamImage struct {
	Medium   *string `json:"medium"`
	Original *string `json:"original"`
}

type UpstreamNetwork struct {
	ID   *int32  `json:"id"`
	Name *string `json:"name"`
}

type UpstreamSchedule struct {
	Time *string  `json:"time"`
	Days []string `json:"days"`
}

// UpstreamCastEntry is one element of the /shows/{id}/cast response.
type UpstreamCastEntry struct {
	Person    *UpstreamPerson    `json:"person"`
	Character *UpstreamCharacter `json:"character"`
}

type UpstreamPerson struct {
	ID    *int32         `json:"id"`
	Name  *string        `json:"name"`
	Image *UpstreamImage `json:"image"`
}

type UpstreamCharacter struct {
	ID    *int32         `json:"id"`
	Name  *string        `json:"name"`
	Image *UpstreamImage `json:"image"`
}

// The accessors below are safe to call on nil receivers so that a chain such as
// show.Image.MediumURL() yields nil instead of panicking when a node is absent.

func (r *UpstreamRating) AverageValue() *float64 {
	if r == nil {
		return nil
	}
	return r.Average
}

func (i *UpstreamImage) MediumURL() *string {
	if i == nil {
		return nil
	}
	return i.Medium
}

func (n *UpstreamNetwork) NetworkName() *string {
	if n == nil {
		return nil
	}
	return n.Name
}

// FirstDay returns the first scheduled weekday, or nil when there is none.
func (s *UpstreamSchedule) FirstDay() *string {
	if s == nil || len(s.Days) == 0 {
		return nil
	}
	day := s.Days[0]
	return &day
}

func (p *UpstreamPerson) PersonName() *string {
	if p == nil {
		return nil
	}
	return p.Name
}

func (p *UpstreamPerson) ImageURL() *string {
	if p == nil {
		return nil
	}
	return p.Image.MediumURL()
}

func (c *UpstreamCharacter) CharacterName() *string {
	if c == nil {
		return nil
	}
	return c.Name
}
