package model

import "gorm.io/gorm"

// TherapistProfile is the public directory entry for a therapist-role user.
// Exactly one row per user, created on the first profile save.
type TherapistProfile struct {
	gorm.Model
	UserID            uint     `json:"user_id" gorm:"column:user_id;uniqueIndex"`
	User              User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Bio               string   `json:"bio" gorm:"column:bio;type:text"`
	Credentials       string   `json:"credentials" gorm:"column:credentials"`
	Specialties       []string `json:"specialties" gorm:"column:specialties;serializer:json"`
	YearsOfExperience int      `json:"years_of_experience" gorm:"column:years_of_experience"`
	AcceptingClients  bool     `json:"accepting_clients" gorm:"column:accepting_clients"`
	StreetAddress     string   `json:"street_address" gorm:"column:street_address"`
	City              string   `json:"city" gorm:"column:city"`
	State             string   `json:"state" gorm:"column:state"`
	PostalCode        string   `json:"postal_code" gorm:"column:postal_code"`
	Latitude          *float64 `json:"latitude" gorm:"column:latitude"`
	Longitude         *float64 `json:"longitude" gorm:"column:longitude"`
	Phone             string   `json:"phone" gorm:"column:phone"`
	Website           string   `json:"website" gorm:"column:website"`
	OffersVirtual     bool     `json:"offers_virtual" gorm:"column:offers_virtual"`
	OffersInPerson    bool     `json:"offers_in_person" gorm:"column:offers_in_person"`
}

// RankedTherapistResult is a TherapistProfile joined with its owning user and
// an optional computed distance. Produced fresh per search request, never
// persisted. Distance is present only when both the request and the profile
// carry coordinates.
type RankedTherapistResult struct {
	TherapistProfile
	User     PublicUser `json:"user"`
	Distance *float64   `json:"distance,omitempty"`
}
