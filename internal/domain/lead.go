package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Etat is the lead pipeline status. The six values form the whole contract:
// any state may be written over any other, there is no transition graph.
type Etat string

const (
	EtatNouveau     Etat = "Nouveau"
	EtatEnCours     Etat = "En cours"
	EtatQualifie    Etat = "Qualifié"
	EtatNonQualifie Etat = "Non qualifié"
	EtatGagne       Etat = "Gagné"
	EtatPerdu       Etat = "Perdu"
)

// ValidEtat reports whether e is one of the six pipeline states.
func ValidEtat(e Etat) bool {
	switch e {
	case EtatNouveau, EtatEnCours, EtatQualifie, EtatNonQualifie, EtatGagne, EtatPerdu:
		return true
	}
	return false
}

const (
	NFMin = 0
	NFMax = 5
)

// ClampNF coerces an arbitrary JSON value to the stored rating:
// max(0, min(5, numeric(v) or 0)). Non-numeric input becomes 0;
// numeric strings still count as numbers.
func ClampNF(v any) int {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		f, _ = n.Float64()
	case string:
		f, _ = strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		f = 0
	}
	if f < NFMin {
		return NFMin
	}
	if f > NFMax {
		return NFMax
	}
	return int(f)
}

type Lead struct {
	ID               int64      `json:"id"`
	Nom              string     `json:"nom"`
	Prenom           string     `json:"prenom"`
	Telephone        string     `json:"telephone"`
	NbAppels         int        `json:"nbAppels"`
	DateDernierAppel *time.Time `json:"dateDernierAppel,omitempty"`
	DateProchainRDV  *time.Time `json:"dateProchainRDV,omitempty"`
	Etat             Etat       `json:"etat"`
	NF               int        `json:"NF"`
	AgentID          int64      `json:"-"`
	Agent            *UserRef   `json:"agent,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}
