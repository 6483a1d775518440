package store

import (
	"driver-graphql-api/models"
)

// Store holds a fixed, ordered set of drivers. It is never mutated after
// construction, so concurrent readers need no locking.
type Store struct {
	drivers []models.Driver
}

// New builds a Store from a copy of drivers.
func New(drivers []models.Driver) *Store {
	d := make([]models.Driver, len(drivers))
	copy(d, drivers)
	return &Store{drivers: d}
}

// Seeded returns a Store loaded with the default driver records.
func Seeded() *Store {
	return New([]models.Driver{
		{ID: "1", FirstName: "Lewis", LastName: "Hamilton", Nationality: "British"},
		{ID: "2", FirstName: "Valteri", LastName: "Bottas", Nationality: "Finnish"},
		{ID: "3", FirstName: "Sebastian", LastName: "Vettel", Nationality: "German"},
	})
}

// FindByID returns the first driver whose ID equals id exactly.
func (s *Store) FindByID(id string) (models.Driver, bool) {
	for _, d := range s.drivers {
		if d.ID == id {
			return d, true
		}
	}
	return models.Driver{}, false
}

// All returns a copy of the stored drivers in order.
func (s *Store) All() []models.Driver {
	d := make([]models.Driver, len(s.drivers))
	copy(d, s.drivers)
	return d
}

func (s *Store) Len() int {
	return len(s.drivers)
}
