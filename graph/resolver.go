package graph

import (
	"driver-graphql-api/models"
	"driver-graphql-api/store"
)

// Resolver is the RootQueryType resolver.
type Resolver struct {
	store *store.Store
}

func NewResolver(s *store.Store) *Resolver {
	return &Resolver{store: s}
}

// Driver resolves driver(id: String). An omitted id or a miss yields null.
func (r *Resolver) Driver(args struct{ ID *string }) *DriverResolver {
	if args.ID == nil {
		return nil
	}
	d, ok := r.store.FindByID(*args.ID)
	if !ok {
		return nil
	}
	return &DriverResolver{d: d}
}

type DriverResolver struct {
	d models.Driver
}

func (r *DriverResolver) ID() *string {
	return &r.d.ID
}

func (r *DriverResolver) FirstName() *string {
	return &r.d.FirstName
}

func (r *DriverResolver) LastName() *string {
	return &r.d.LastName
}

func (r *DriverResolver) Nationality() *string {
	return &r.d.Nationality
}
