package entities

// Collaborator is a member of the team (membro).
//
// UserID is the login account id carried by time records; ID is the member id
// used by estimates and vigências. Both are kept as normalized strings because
// the source tables mix numeric and textual identifiers.
type Collaborator struct {
	ID     string `json:"id"`
	UserID string `json:"usuario_id,omitempty"`
	Name   string `json:"nome"`
}
