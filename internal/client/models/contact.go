package models

import "time"

// ContactMessage is a customer contact-form submission. Read-only for the
// dashboard; entities are created server-side by the public storefront.
type ContactMessage struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Message   string     `json:"message"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}
