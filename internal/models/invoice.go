package models

import "time"

// InvoiceItem is one billed line
type InvoiceItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Invoice embeds a snapshot of the client taken when the invoice was written.
// The snapshot is not kept in sync with the clients collection.
type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoiceNumber"`
	ClientID      string        `json:"clientId"`
	Client        Client        `json:"client"`
	Date          time.Time     `json:"date"`
	DueDate       time.Time     `json:"dueDate"`
	Items         []InvoiceItem `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	TaxRate       float64       `json:"taxRate"`
	Total         float64       `json:"total"`
	Status        InvoiceStatus `json:"status"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

func (i Invoice) RecordID() string { return i.ID }

// InvoicePatch carries the fields to merge over a stored Invoice
type InvoicePatch struct {
	InvoiceNumber *string        `json:"invoiceNumber,omitempty"`
	ClientID      *string        `json:"clientId,omitempty"`
	Client        *Client        `json:"client,omitempty"`
	Date          *time.Time     `json:"date,omitempty"`
	DueDate       *time.Time     `json:"dueDate,omitempty"`
	Items         *[]InvoiceItem `json:"items,omitempty"`
	Subtotal      *float64       `json:"subtotal,omitempty"`
	Tax           *float64       `json:"tax,omitempty"`
	TaxRate       *float64       `json:"taxRate,omitempty"`
	Total         *float64       `json:"total,omitempty"`
	Status        *InvoiceStatus `json:"status,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
	UpdatedAt     *time.Time     `json:"updatedAt,omitempty"`
}
