package api

import (
	"context"
	"net/http"

	"locadora/internal/domain/identity"
)

// Login authenticates with POST /auth/login
func (c *Client) Login(ctx context.Context, req identity.LoginRequest) (identity.AuthResponse, error) {
	var resp identity.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return identity.AuthResponse{}, err
	}
	return resp, nil
}

// Register creates a customer account with POST /auth/register
func (c *Client) Register(ctx context.Context, req identity.RegisterRequest) (identity.AuthResponse, error) {
	var resp identity.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return identity.AuthResponse{}, err
	}
	return resp, nil
}

// RegisterCliente is the staff-only customer creation variant
func (c *Client) RegisterCliente(ctx context.Context, req identity.RegisterRequest) (identity.AuthResponse, error) {
	var resp identity.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register/cliente", req, &resp); err != nil {
		return identity.AuthResponse{}, err
	}
	return resp, nil
}

// RegisterFuncionario is the staff-only staff creation variant
func (c *Client) RegisterFuncionario(ctx context.Context, req identity.RegisterRequest) (identity.AuthResponse, error) {
	var resp identity.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register/funcionario", req, &resp); err != nil {
		return identity.AuthResponse{}, err
	}
	return resp, nil
}
