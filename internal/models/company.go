package models

import "time"

// Company is a client a freelancer works for. Every company belongs to
// exactly one user; that user is the effective owner of everything below it.
type Company struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CNPJ      string    `json:"cnpj,omitempty"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CompanyPatch carries a merge-style partial update: nil means "leave as is".
type CompanyPatch struct {
	Name *string `json:"name"`
	CNPJ *string `json:"cnpj"`
}
