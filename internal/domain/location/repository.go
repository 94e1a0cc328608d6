package location

import "context"

// CountryRepository persists countries. Implementations classify driver
// errors (duplicate key, dependents on delete) into application errors at
// their own boundary.
type CountryRepository interface {
	Create(ctx context.Context, country *Country) error
	Update(ctx context.Context, country *Country) error
	FindByID(ctx context.Context, id uint) (*Country, error)
	ListActive(ctx context.Context) ([]*Country, error)
	Delete(ctx context.Context, id uint) error
}

type StateRepository interface {
	Create(ctx context.Context, state *State) error
	Update(ctx context.Context, state *State) error
	FindByID(ctx context.Context, id uint) (*State, error)
	ListActive(ctx context.Context) ([]*State, error)
	Delete(ctx context.Context, id uint) error
}

type DistrictRepository interface {
	Create(ctx context.Context, district *District) error
	Update(ctx context.Context, district *District) error
	FindByID(ctx context.Context, id uint) (*District, error)
	ListActive(ctx context.Context) ([]*District, error)
	Delete(ctx context.Context, id uint) error
}

type ZoneRepository interface {
	Create(ctx context.Context, zone *Zone) error
	Update(ctx context.Context, zone *Zone) error
	FindByID(ctx context.Context, id uint) (*Zone, error)
	ListActive(ctx context.Context) ([]*Zone, error)
	Delete(ctx context.Context, id uint) error
}
