package entities

import "time"

// Vigencia holds the employment terms of a collaborator effective from
// EffectiveFrom until a later vigência supersedes it. There is no end date.
//
// HourlyCost is kept as received because the source stores it as text using
// a comma decimal separator ("14,15"). ContractedHoursPerDay is nil when unset.
type Vigencia struct {
	CollaboratorID        string    `json:"membro_id"`
	EffectiveFrom         time.Time `json:"dt_vigencia"`
	HourlyCost            string    `json:"custo_hora"`
	ContractedHoursPerDay *float64  `json:"horascontratadasdia,omitempty"`
	ContractTypeID        string    `json:"tipocontratoid,omitempty"`
}
