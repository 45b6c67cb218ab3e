package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpErrorWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewOpError(AddFailed, cause)

	assert.Equal(t, AddFailed, err.Kind)
	assert.Equal(t, "connection refused", err.Message)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "AddFailed")
}

func TestIsKind(t *testing.T) {
	err := NewOpError(RemoveFailed, errors.New("boom"))

	assert.True(t, IsKind(err, RemoveFailed))
	assert.False(t, IsKind(err, AddFailed))
	assert.False(t, IsKind(errors.New("plain"), RemoveFailed))
}

func TestEmptyCart(t *testing.T) {
	cart := Empty()
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
	assert.Equal(t, "0", cart.Total)
	assert.Equal(t, 0, cart.ItemCount)
}

func TestAddItemRequestValidation(t *testing.T) {
	cases := []struct {
		name    string
		req     AddItemRequest
		wantErr bool
	}{
		{"valid", AddItemRequest{ProductID: "1", Quantity: 1}, false},
		{"large quantity", AddItemRequest{ProductID: "1", Quantity: 500}, false},
		{"zero quantity", AddItemRequest{ProductID: "1", Quantity: 0}, true},
		{"negative quantity", AddItemRequest{ProductID: "1", Quantity: -1}, true},
		{"missing product", AddItemRequest{Quantity: 1}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUpdateItemRequestAllowsZeroAndNegative(t *testing.T) {
	// Zero and below mean removal; only the upper bound is enforced.
	assert.NoError(t, UpdateItemRequest{Quantity: 0}.Validate())
	assert.NoError(t, UpdateItemRequest{Quantity: -5}.Validate())
	assert.NoError(t, UpdateItemRequest{Quantity: 999}.Validate())
	assert.Error(t, UpdateItemRequest{Quantity: 1000}.Validate())
}
