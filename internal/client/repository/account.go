package repository

import (
	"context"
	"fmt"

	"github.com/chatterbox-app/chatterbox/internal/client/api"
	"github.com/chatterbox-app/chatterbox/internal/client/config"
	"github.com/chatterbox-app/chatterbox/internal/models"
	pkgapi "github.com/chatterbox-app/chatterbox/pkg/api"
)

// AccountRepository reads the account profile and the runtime config
// snapshot.
type AccountRepository struct {
	client Caller
}

// NewAccountRepository creates an account repository.
func NewAccountRepository(client Caller) *AccountRepository {
	return &AccountRepository{client: client}
}

// Me fetches the signed-in account profile.
func (r *AccountRepository) Me(ctx context.Context) (*models.Account, error) {
	var resp pkgapi.MeResponse
	if err := r.client.Call(ctx, api.EndpointMe, struct{}{}, &resp); err != nil {
		if api.BackendCode(err) == pkgapi.ErrCodeAccountNotFound {
			return nil, fmt.Errorf("fetch account: %w", ErrAccountNotFound)
		}
		return nil, fmt.Errorf("fetch account: %w", err)
	}

	return &models.Account{
		ID:             resp.ID,
		Email:          resp.Email,
		DisplayName:    resp.DisplayName,
		NativeLanguage: resp.NativeLanguage,
		TargetLanguage: resp.TargetLanguage,
		Entitlements:   resp.Entitlements,
		CreatedAt:      resp.CreatedAt,
	}, nil
}

// AppConfig fetches the current runtime configuration snapshot.
func (r *AccountRepository) AppConfig(ctx context.Context) (config.Snapshot, error) {
	var resp pkgapi.AppConfigResponse
	if err := r.client.Call(ctx, api.EndpointAppConfig, struct{}{}, &resp); err != nil {
		return config.Snapshot{}, fmt.Errorf("fetch app config: %w", err)
	}

	return config.SnapshotFromAPI(&resp), nil
}
