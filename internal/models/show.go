package models

// Show is the normalized record served by the GraphQL API.
// Nil pointers are rendered as null.
type Show struct {
	ID      *int32
	Name    *string
	Rating  *float64
	Image   *string
	Summary *string
	Network *string
	AirDay  *string
	Status  *string
	Genres  *[]string
	Cast    []CastMember // never nil
}

// CastMember is one actor/character pairing of a show.
type CastMember struct {
	Name           *string
	CharacterName  *string
	CharacterImage *string
}
