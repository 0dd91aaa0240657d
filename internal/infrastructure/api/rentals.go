package api

import (
	"context"
	"fmt"
	"net/http"

	"locadora/internal/domain/rental"
)

// CreateRental books a vehicle with POST /locacoes
func (c *Client) CreateRental(ctx context.Context, req rental.RentalCreate) (rental.Rental, error) {
	var r rental.Rental
	if err := c.do(ctx, http.MethodPost, "/locacoes", req, &r); err != nil {
		return rental.Rental{}, err
	}
	return r, nil
}

// MyRentals lists all of the authenticated user's rentals
func (c *Client) MyRentals(ctx context.Context) ([]rental.Rental, error) {
	var rentals []rental.Rental
	if err := c.do(ctx, http.MethodGet, "/locacoes/minhas", nil, &rentals); err != nil {
		return nil, err
	}
	return rentals, nil
}

// MyActiveRentals lists the authenticated user's active rentals
func (c *Client) MyActiveRentals(ctx context.Context) ([]rental.Rental, error) {
	var rentals []rental.Rental
	if err := c.do(ctx, http.MethodGet, "/locacoes/minhas/ativas", nil, &rentals); err != nil {
		return nil, err
	}
	return rentals, nil
}

// MyFinishedRentals lists the authenticated user's finished rentals
func (c *Client) MyFinishedRentals(ctx context.Context) ([]rental.Rental, error) {
	var rentals []rental.Rental
	if err := c.do(ctx, http.MethodGet, "/locacoes/minhas/finalizadas", nil, &rentals); err != nil {
		return nil, err
	}
	return rentals, nil
}

// Rental fetches one rental by id
func (c *Client) Rental(ctx context.Context, id int64) (rental.Rental, error) {
	var r rental.Rental
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/locacoes/%d", id), nil, &r); err != nil {
		return rental.Rental{}, err
	}
	return r, nil
}

// FinishRental marks a rental as returned
func (c *Client) FinishRental(ctx context.Context, id int64) (rental.Rental, error) {
	var r rental.Rental
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/locacoes/%d/finalizar", id), nil, &r); err != nil {
		return rental.Rental{}, err
	}
	return r, nil
}

// CancelRental cancels a rental
func (c *Client) CancelRental(ctx context.Context, id int64) (rental.Rental, error) {
	var r rental.Rental
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/locacoes/%d/cancelar", id), nil, &r); err != nil {
		return rental.Rental{}, err
	}
	return r, nil
}

// RentalSummary fetches the authenticated user's rental counts and spend
func (c *Client) RentalSummary(ctx context.Context) (rental.Summary, error) {
	var s rental.Summary
	if err := c.do(ctx, http.MethodGet, "/locacoes/resumo", nil, &s); err != nil {
		return rental.Summary{}, err
	}
	return s, nil
}
