package location

import "stayops/internal/domain/shared"

func statusFrom(p *uint8) shared.Status {
	if p == nil {
		return shared.StatusActive
	}
	return shared.Status(*p)
}
