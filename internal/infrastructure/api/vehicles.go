package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"locadora/internal/domain/vehicle"
)

// Vehicles lists the whole fleet; public
func (c *Client) Vehicles(ctx context.Context) ([]vehicle.Vehicle, error) {
	var vehicles []vehicle.Vehicle
	if err := c.do(ctx, http.MethodGet, "/veiculos", nil, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// AvailableVehicles lists vehicles currently available for rent; public
func (c *Client) AvailableVehicles(ctx context.Context) ([]vehicle.Vehicle, error) {
	var vehicles []vehicle.Vehicle
	if err := c.do(ctx, http.MethodGet, "/veiculos/disponiveis", nil, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// Vehicle fetches one vehicle by id; public
func (c *Client) Vehicle(ctx context.Context, id int64) (vehicle.Vehicle, error) {
	var v vehicle.Vehicle
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/veiculos/%d", id), nil, &v); err != nil {
		return vehicle.Vehicle{}, err
	}
	return v, nil
}

// VehiclesByCategory lists vehicles in one category; public
func (c *Client) VehiclesByCategory(ctx context.Context, categoria vehicle.Categoria) ([]vehicle.Vehicle, error) {
	var vehicles []vehicle.Vehicle
	path := "/veiculos/categoria/" + url.PathEscape(string(categoria))
	if err := c.do(ctx, http.MethodGet, path, nil, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// CreateVehicle adds a vehicle to the fleet; staff only
func (c *Client) CreateVehicle(ctx context.Context, req vehicle.VehicleCreate) (vehicle.Vehicle, error) {
	var v vehicle.Vehicle
	if err := c.do(ctx, http.MethodPost, "/veiculos", req, &v); err != nil {
		return vehicle.Vehicle{}, err
	}
	return v, nil
}

// UpdateVehicle edits a vehicle; staff only
func (c *Client) UpdateVehicle(ctx context.Context, id int64, req vehicle.VehicleCreate) (vehicle.Vehicle, error) {
	var v vehicle.Vehicle
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/veiculos/%d", id), req, &v); err != nil {
		return vehicle.Vehicle{}, err
	}
	return v, nil
}

// DeleteVehicle removes a vehicle from the fleet; staff only
func (c *Client) DeleteVehicle(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/veiculos/%d", id), nil, nil)
}

// SetVehicleAvailability toggles whether a vehicle can be booked. Staff use
// it to manage the fleet; the rental-return flow uses it to put a finished
// rental's vehicle back on offer.
func (c *Client) SetVehicleAvailability(ctx context.Context, id int64, disponivel bool) (vehicle.Vehicle, error) {
	var v vehicle.Vehicle
	path := fmt.Sprintf("/veiculos/%d/disponibilidade?disponivel=%t", id, disponivel)
	if err := c.do(ctx, http.MethodPatch, path, nil, &v); err != nil {
		return vehicle.Vehicle{}, err
	}
	return v, nil
}
