package guard

import (
	"testing"

	"locadora/internal/domain/identity"
)

var (
	cliente     = &identity.Identity{ID: 1, Nome: "Ana"}
	funcionario = &identity.Identity{ID: 2, Nome: "Bia", IsFuncionario: true}
)

func TestStaffOnly(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		current *identity.Identity
		want    Decision
	}{
		{"nil identity", nil, Deny(RouteHome)},
		{"customer", cliente, Deny(RouteHome)},
		{"staff", funcionario, Allow()},
	}
	for _, tc := range cases {
		if got := StaffOnly(tc.current); got != tc.want {
			t.Errorf("StaffOnly(%s): got %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestCustomerArea(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		current *identity.Identity
		want    Decision
	}{
		{"nil identity", nil, Allow()},
		{"customer", cliente, Allow()},
		{"staff", funcionario, Deny(RouteAdminHome)},
	}
	for _, tc := range cases {
		if got := CustomerArea(tc.current); got != tc.want {
			t.Errorf("CustomerArea(%s): got %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestGuardsAreIdempotent(t *testing.T) {
	t.Parallel()
	first := StaffOnly(funcionario)
	second := StaffOnly(funcionario)
	if first != second {
		t.Errorf("StaffOnly not idempotent: %+v then %+v", first, second)
	}
}
