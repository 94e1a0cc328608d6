package actor

import "context"

// SuperadminRepository persists platform operator accounts.
type SuperadminRepository interface {
	Create(ctx context.Context, sa *Superadmin) error
	FindByID(ctx context.Context, id uint) (*Superadmin, error)
	FindByEmail(ctx context.Context, email string) (*Superadmin, error)
}

// AgentRepository persists agent accounts. Delete is a soft delete.
type AgentRepository interface {
	Create(ctx context.Context, agent *Agent) error
	Update(ctx context.Context, agent *Agent) error
	FindByID(ctx context.Context, id uint) (*Agent, error)
	FindByEmail(ctx context.Context, email string) (*Agent, error)
	ListActive(ctx context.Context) ([]*Agent, error)
	Delete(ctx context.Context, id uint) error
}

// HotelRepository persists hotel accounts. Delete is a soft delete.
type HotelRepository interface {
	Create(ctx context.Context, hotel *Hotel) error
	Update(ctx context.Context, hotel *Hotel) error
	FindByID(ctx context.Context, id uint) (*Hotel, error)
	FindByEmail(ctx context.Context, email string) (*Hotel, error)
	ListActive(ctx context.Context) ([]*Hotel, error)
	ListByAgentID(ctx context.Context, agentID uint) ([]*Hotel, error)
	Delete(ctx context.Context, id uint) error
}
