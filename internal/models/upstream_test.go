package models

import "testing"

func TestUpstreamAccessors_NilReceivers(t *testing.T) {
	var (
		rating    *UpstreamRating
		image     *UpstreamImage
		network   *UpstreamNetwork
		schedule  *UpstreamSchedule
		person    *UpstreamPerson
		character *UpstreamCharacter
	)

	if rating.AverageValue() != nil {
		t.Error("Expected nil rating average")
	}
	if image.MediumURL() != nil {
		t.Error("Expected nil image URL")
	}
	if network.NetworkName() != nil {
		t.Error("Expected nil network name")
	}
	if schedule.FirstDay() != nil {
		t.Error("Expected nil first day")
	}
	if person.PersonName() != nil || person.ImageURL() != nil {
		t.Error("Expected nil person fields")
	}
	if character.CharacterName() != nil {
		t.Error("Expected nil character name")
	}
}

func TestUpstreamSchedule_FirstDay(t *testing.T) {
	tests := []struct {
		name    string
		days    []string
		want    string
		wantNil bool
	}{
		{name: "nil days", days: nil, wantNil: true},
		{name: "empty days", days: []string{}, wantNil: true},
		{name: "single day", days: []string{"Sunday"}, want: "Sunday"},
		{name: "several days", days: []string{"Monday", "Tuesday"}, want: "Monday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := (&UpstreamSchedule{Days: tt.days}).FirstDay()
			if tt.wantNil {
				if got != nil {
					t.Errorf("Expected nil, got %q", *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("Expected %q, got %v", tt.want, got)
			}
		})
	}
}

func TestUpstreamPerson_ImageURL_MissingImage(t *testing.T) {
	name := "Jane"
	p := &UpstreamPerson{Name: &name}
	if p.ImageURL() != nil {
		t.Error("Expected nil image URL when image node is absent")
	}
	if got := p.PersonName(); got == nil || *got != "Jane" {
		t.Errorf("Expected person name Jane, got %v", got)
	}
}
