package lead

import "time"

// CreateLeadRequest carries the lead fields as the client sends them. NF is
// untyped on purpose: whatever arrives is coerced and clamped server-side.
type CreateLeadRequest struct {
	Nom              string     `json:"nom" binding:"required" validate:"required"`
	Prenom           string     `json:"prenom" binding:"required" validate:"required"`
	Telephone        string     `json:"telephone" binding:"required" validate:"required"`
	NbAppels         *int       `json:"nbAppels,omitempty"`
	DateDernierAppel *time.Time `json:"dateDernierAppel,omitempty"`
	DateProchainRDV  *time.Time `json:"dateProchainRDV,omitempty"`
	Etat             string     `json:"etat,omitempty"`
	NF               any        `json:"NF,omitempty"`
}

// UpdateLeadRequest is a merge patch: nil means "leave as is". Agent is not
// protected; a client that sends it reassigns the lead.
type UpdateLeadRequest struct {
	Nom              *string    `json:"nom,omitempty"`
	Prenom           *string    `json:"prenom,omitempty"`
	Telephone        *string    `json:"telephone,omitempty"`
	NbAppels         *int       `json:"nbAppels,omitempty"`
	DateDernierAppel *time.Time `json:"dateDernierAppel,omitempty"`
	DateProchainRDV  *time.Time `json:"dateProchainRDV,omitempty"`
	Etat             *string    `json:"etat,omitempty"`
	NF               any        `json:"NF,omitempty"`
	Agent            *int64     `json:"agent,omitempty"`
}
