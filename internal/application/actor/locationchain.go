package actor

import (
	"context"

	"stayops/internal/domain/location"
	"stayops/internal/shared/errors"
)

// locationChainValidator checks that a country→state→district→zone
// chain exists, is active, and is correctly parented before an actor
// is registered into it.
type locationChainValidator struct {
	countries location.CountryRepository
	states    location.StateRepository
	districts location.DistrictRepository
	zones     location.ZoneRepository
}

func newLocationChainValidator(
	countries location.CountryRepository,
	states location.StateRepository,
	districts location.DistrictRepository,
	zones location.ZoneRepository,
) *locationChainValidator {
	return &locationChainValidator{
		countries: countries,
		states:    states,
		districts: districts,
		zones:     zones,
	}
}

func (v *locationChainValidator) Validate(ctx context.Context, countryID, stateID, districtID, zoneID uint) error {
	country, err := v.countries.FindByID(ctx, countryID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewValidationError("country not found")
		}
		return err
	}
	if !country.Status().IsActive() {
		return errors.NewValidationError("country is inactive")
	}

	state, err := v.states.FindByID(ctx, stateID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewValidationError("state not found")
		}
		return err
	}
	if !state.Status().IsActive() {
		return errors.NewValidationError("state is inactive")
	}
	if state.CountryID() != countryID {
		return errors.NewValidationError("state does not belong to the given country")
	}

	district, err := v.districts.FindByID(ctx, districtID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewValidationError("district not found")
		}
		return err
	}
	if !district.Status().IsActive() {
		return errors.NewValidationError("district is inactive")
	}
	if district.StateID() != stateID {
		return errors.NewValidationError("district does not belong to the given state")
	}

	zone, err := v.zones.FindByID(ctx, zoneID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewValidationError("zone not found")
		}
		return err
	}
	if !zone.Status().IsActive() {
		return errors.NewValidationError("zone is inactive")
	}
	if zone.DistrictID() != districtID {
		return errors.NewValidationError("zone does not belong to the given district")
	}

	return nil
}
