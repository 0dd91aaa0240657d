package api

import (
	"context"
	"fmt"
	"net/http"

	"locadora/internal/domain/identity"
	"locadora/internal/domain/rental"
)

// Profile fetches the authenticated user's profile
func (c *Client) Profile(ctx context.Context) (identity.Profile, error) {
	var p identity.Profile
	if err := c.do(ctx, http.MethodGet, "/usuarios/perfil", nil, &p); err != nil {
		return identity.Profile{}, err
	}
	return p, nil
}

// UpdateProfile replaces the authenticated user's profile
func (c *Client) UpdateProfile(ctx context.Context, p identity.Profile) (identity.Profile, error) {
	var out identity.Profile
	if err := c.do(ctx, http.MethodPut, "/usuarios/perfil", p, &out); err != nil {
		return identity.Profile{}, err
	}
	return out, nil
}

// UpdateEndereco replaces the authenticated user's address
func (c *Client) UpdateEndereco(ctx context.Context, e identity.Endereco) error {
	return c.do(ctx, http.MethodPut, "/usuarios/endereco", e, nil)
}

// RentalHistory fetches the authenticated user's rental history
func (c *Client) RentalHistory(ctx context.Context) ([]rental.Rental, error) {
	var rentals []rental.Rental
	if err := c.do(ctx, http.MethodGet, "/usuarios/locacoes", nil, &rentals); err != nil {
		return nil, err
	}
	return rentals, nil
}

// Statistics fetches the authenticated user's spending statistics
func (c *Client) Statistics(ctx context.Context) (rental.Statistics, error) {
	var stats rental.Statistics
	if err := c.do(ctx, http.MethodGet, "/usuarios/estatisticas", nil, &stats); err != nil {
		return rental.Statistics{}, err
	}
	return stats, nil
}

// Users lists every user; staff only
func (c *Client) Users(ctx context.Context) ([]identity.Profile, error) {
	var users []identity.Profile
	if err := c.do(ctx, http.MethodGet, "/usuarios", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser edits another user's record; staff only
func (c *Client) UpdateUser(ctx context.Context, id int64, p identity.Profile) (identity.Profile, error) {
	var out identity.Profile
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/usuarios/%d", id), p, &out); err != nil {
		return identity.Profile{}, err
	}
	return out, nil
}

// DeactivateUser disables an account; staff only
func (c *Client) DeactivateUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/usuarios/%d/desativar", id), nil, nil)
}

// ActivateUser re-enables a deactivated account; staff only
func (c *Client) ActivateUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/usuarios/%d/ativar", id), nil, nil)
}
