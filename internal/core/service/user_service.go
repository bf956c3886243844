package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/itm-space/backend-resources/internal/api/metrics"
	"github.com/itm-space/backend-resources/internal/core/domain"
	"github.com/itm-space/backend-resources/internal/core/ports"
	"github.com/itm-space/backend-resources/pkg/keycloak"
)

// UserService implements ports.UserService on top of the identity gateway.
type UserService struct {
	gateway ports.IdentityGateway
	audit   ports.AuditRepository
	log     zerolog.Logger
}

func NewUserService(gateway ports.IdentityGateway, audit ports.AuditRepository, log zerolog.Logger) *UserService {
	return &UserService{gateway: gateway, audit: audit, log: log}
}

// CreateUser builds the provider payload from the request fields and issues
// exactly one gateway creation call. Gateway faults propagate unchanged.
// The identifier assigned by the provider is logged and audited, not
// returned: the API contract for creation is fire-and-confirm.
func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) error {
	user := keycloak.UserRepresentation{
		Username:  input.Username,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Enabled:   true,
		Credentials: []keycloak.CredentialRepresentation{{
			Type:      keycloak.CredentialTypePassword,
			Value:     input.Password,
			Temporary: false,
		}},
	}

	id, err := s.gateway.CreateUser(ctx, user)
	if err != nil {
		s.log.Error().Err(err).Str("username", input.Username).Msg("user creation failed")
		return err
	}

	s.log.Info().Str("user_id", id).Str("username", input.Username).Msg("user created")
	metrics.UsersCreatedTotal.Inc()

	if s.audit != nil {
		entry := domain.AuditEntry{
			UserID:    id,
			Username:  input.Username,
			Email:     input.Email,
			Actor:     input.Actor,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.audit.RecordUserCreated(ctx, entry); err != nil {
			s.log.Warn().Err(err).Str("user_id", id).Msg("audit write failed")
			metrics.AuditWriteFailuresTotal.Inc()
		}
	}
	return nil
}

// GetUserByID fetches the profile, realm roles, and group memberships in
// sequence and composes them into a UserProfile. If any fetch fails the
// fault propagates as-is and no partial profile is returned.
//
// The three calls do not observe a consistent snapshot: the provider's admin
// API gives no isolation, so roles fetched after the profile may reflect an
// intervening mutation. Accepted, not worked around.
func (s *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.UserProfile, error) {
	user, err := s.gateway.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	roles, err := s.gateway.GetUserRoles(ctx, id)
	if err != nil {
		return nil, err
	}

	groups, err := s.gateway.GetUserGroups(ctx, id)
	if err != nil {
		return nil, err
	}

	roleNames := make([]string, 0, len(roles))
	for _, r := range roles {
		roleNames = append(roleNames, r.Name)
	}
	groupNames := make([]string, 0, len(groups))
	for _, g := range groups {
		groupNames = append(groupNames, g.Name)
	}

	return &domain.UserProfile{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Roles:     roleNames,
		Groups:    groupNames,
	}, nil
}
