package models

import "time"

// Client is a billing customer
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zipCode"`
	TaxID     string    `json:"taxId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c Client) RecordID() string { return c.ID }

// ClientPatch carries the fields to merge over a stored Client.
// Nil fields are left untouched.
type ClientPatch struct {
	Name      *string    `json:"name,omitempty"`
	Email     *string    `json:"email,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	Address   *string    `json:"address,omitempty"`
	City      *string    `json:"city,omitempty"`
	State     *string    `json:"state,omitempty"`
	ZipCode   *string    `json:"zipCode,omitempty"`
	TaxID     *string    `json:"taxId,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
