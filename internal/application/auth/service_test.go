package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"stayops/internal/domain/actor"
	"stayops/internal/domain/shared"
	infraauth "stayops/internal/infrastructure/auth"
	"stayops/internal/shared/authorization"
	"stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

type stubSuperadminRepo struct {
	byEmail map[string]*actor.Superadmin
}

func (r *stubSuperadminRepo) Create(ctx context.Context, sa *actor.Superadmin) error { return nil }

func (r *stubSuperadminRepo) FindByID(ctx context.Context, id uint) (*actor.Superadmin, error) {
	return nil, errors.NewNotFoundError("superadmin not found")
}

func (r *stubSuperadminRepo) FindByEmail(ctx context.Context, email string) (*actor.Superadmin, error) {
	if sa, ok := r.byEmail[email]; ok {
		return sa, nil
	}
	return nil, errors.NewNotFoundError("superadmin not found")
}

type stubAgentRepo struct {
	byEmail map[string]*actor.Agent
}

func (r *stubAgentRepo) Create(ctx context.Context, a *actor.Agent) error { return nil }
func (r *stubAgentRepo) Update(ctx context.Context, a *actor.Agent) error { return nil }
func (r *stubAgentRepo) Delete(ctx context.Context, id uint) error        { return nil }

func (r *stubAgentRepo) FindByID(ctx context.Context, id uint) (*actor.Agent, error) {
	return nil, errors.NewNotFoundError("agent not found")
}

func (r *stubAgentRepo) FindByEmail(ctx context.Context, email string) (*actor.Agent, error) {
	if a, ok := r.byEmail[email]; ok {
		return a, nil
	}
	return nil, errors.NewNotFoundError("agent not found")
}

func (r *stubAgentRepo) ListActive(ctx context.Context) ([]*actor.Agent, error) { return nil, nil }

type stubHotelRepo struct{}

func (r *stubHotelRepo) Create(ctx context.Context, h *actor.Hotel) error { return nil }
func (r *stubHotelRepo) Update(ctx context.Context, h *actor.Hotel) error { return nil }
func (r *stubHotelRepo) Delete(ctx context.Context, id uint) error        { return nil }

func (r *stubHotelRepo) FindByID(ctx context.Context, id uint) (*actor.Hotel, error) {
	return nil, errors.NewNotFoundError("hotel not found")
}

func (r *stubHotelRepo) FindByEmail(ctx context.Context, email string) (*actor.Hotel, error) {
	return nil, errors.NewNotFoundError("hotel not found")
}

func (r *stubHotelRepo) ListActive(ctx context.Context) ([]*actor.Hotel, error) { return nil, nil }

func (r *stubHotelRepo) ListByAgentID(ctx context.Context, agentID uint) ([]*actor.Hotel, error) {
	return nil, nil
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestService(superadmins *stubSuperadminRepo, agents *stubAgentRepo) *Service {
	return NewService(
		superadmins,
		agents,
		&stubHotelRepo{},
		infraauth.NewJWTService("test-secret", 24),
		infraauth.NewBcryptPasswordHasher(bcrypt.MinCost),
		logger.NewLogger(),
	)
}

func activeSuperadmin(t *testing.T, email, password string) *actor.Superadmin {
	now := time.Now().UTC()
	return actor.ReconstructSuperadmin(1, "Root Admin", email, hashPassword(t, password), shared.StatusActive, now, now)
}

func TestLoginSuperadmin_Success(t *testing.T) {
	svc := newTestService(&stubSuperadminRepo{
		byEmail: map[string]*actor.Superadmin{
			"root@example.com": activeSuperadmin(t, "root@example.com", "secret123"),
		},
	}, &stubAgentRepo{})

	resp, err := svc.LoginSuperadmin(context.Background(), LoginRequest{
		Email:    "root@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 24*3600, resp.ExpiresIn)
	assert.Equal(t, string(authorization.RoleSuperadmin), resp.Actor.Role)

	// The issued token round-trips through verification.
	claims, err := infraauth.NewJWTService("test-secret", 24).Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.ActorID)
	assert.Equal(t, authorization.RoleSuperadmin, claims.Role)
}

func TestLoginSuperadmin_EmailCaseInsensitive(t *testing.T) {
	svc := newTestService(&stubSuperadminRepo{
		byEmail: map[string]*actor.Superadmin{
			"root@example.com": activeSuperadmin(t, "root@example.com", "secret123"),
		},
	}, &stubAgentRepo{})

	_, err := svc.LoginSuperadmin(context.Background(), LoginRequest{
		Email:    "  Root@Example.COM ",
		Password: "secret123",
	})
	assert.NoError(t, err)
}

// Wrong password, unknown email and an inactive account must be
// indistinguishable from the outside.
func TestLoginSuperadmin_IdenticalFailures(t *testing.T) {
	now := time.Now().UTC()
	inactive := actor.ReconstructSuperadmin(2, "Gone Admin", "gone@example.com",
		hashPassword(t, "secret123"), shared.StatusInactive, now, now)

	svc := newTestService(&stubSuperadminRepo{
		byEmail: map[string]*actor.Superadmin{
			"root@example.com": activeSuperadmin(t, "root@example.com", "secret123"),
			"gone@example.com": inactive,
		},
	}, &stubAgentRepo{})
	ctx := context.Background()

	_, wrongPassword := svc.LoginSuperadmin(ctx, LoginRequest{Email: "root@example.com", Password: "nope"})
	_, unknownEmail := svc.LoginSuperadmin(ctx, LoginRequest{Email: "missing@example.com", Password: "secret123"})
	_, inactiveAccount := svc.LoginSuperadmin(ctx, LoginRequest{Email: "gone@example.com", Password: "secret123"})

	for _, err := range []error{wrongPassword, unknownEmail, inactiveAccount} {
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 401, appErr.Code)
		assert.Equal(t, "invalid credentials", appErr.Message)
	}
}

func TestLoginAgent_Success(t *testing.T) {
	agent := actor.ReconstructAgent(
		3, "agt_test1", "Ravi Kumar", "ravi@example.com", hashPassword(t, "secret123"),
		"9876543210", 1, 1, 1, 1,
		"India", "Karnataka", "Bengaluru Urban", "Koramangala",
		shared.StatusActive, 1, time.Now().UTC(), time.Now().UTC(),
	)

	svc := newTestService(&stubSuperadminRepo{}, &stubAgentRepo{
		byEmail: map[string]*actor.Agent{"ravi@example.com": agent},
	})

	resp, err := svc.LoginAgent(context.Background(), LoginRequest{
		Email:    "ravi@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "agt_test1", resp.Actor.Ref)
	assert.Equal(t, string(authorization.RoleAgent), resp.Actor.Role)
}

func TestLoginHotel_UnknownEmail(t *testing.T) {
	svc := newTestService(&stubSuperadminRepo{}, &stubAgentRepo{})

	_, err := svc.LoginHotel(context.Background(), LoginRequest{
		Email:    "hotel@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 401, appErr.Code)
}
