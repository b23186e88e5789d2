package capacity

import (
	"strings"

	"gestao_capacidade/internal/domain/entities"
)

// NormalizeID is the canonical form used to compare identifiers coming from
// tables that mix numeric and textual ids.
func NormalizeID(id string) string {
	return strings.TrimSpace(id)
}

// SplitIDs splits a comma-joined identifier field, dropping empty parts and
// repeated values while keeping first-seen order.
func SplitIDs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		id := NormalizeID(p)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// PartialKey holds the identifiers a record carries for each dimension. Every
// dimension has at most one value except cliente, which may fan out.
type PartialKey map[Dimension][]string

// Has reports whether the key carries a value for d.
func (k PartialKey) Has(d Dimension) bool {
	return len(k[d]) > 0
}

// First returns the first value for d, or "".
func (k PartialKey) First(d Dimension) string {
	if v := k[d]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// Classifier maps raw records to their PartialKey.
type Classifier struct {
	memberByUser map[string]string
}

// NewClassifier builds a classifier that resolves the user account ids found
// on time records to collaborator ids using the directory. Users missing from
// the directory keep their raw id.
func NewClassifier(collaborators []entities.Collaborator) *Classifier {
	memberByUser := make(map[string]string, len(collaborators))
	for _, c := range collaborators {
		if uid := NormalizeID(c.UserID); uid != "" {
			memberByUser[uid] = NormalizeID(c.ID)
		}
	}
	return &Classifier{memberByUser: memberByUser}
}

// CollaboratorForUser resolves a user account id to its collaborator id.
func (c *Classifier) CollaboratorForUser(userID string) string {
	uid := NormalizeID(userID)
	if id, ok := c.memberByUser[uid]; ok {
		return id
	}
	return uid
}

func (c *Classifier) ClassifyTimeRecord(r entities.TimeRecord) PartialKey {
	return buildKey(
		c.CollaboratorForUser(r.CollaboratorID),
		r.ClientID, r.ProductID, r.TaskTypeID, r.TaskID,
	)
}

func (c *Classifier) ClassifyEstimate(e entities.EstimateRecord) PartialKey {
	return buildKey(
		NormalizeID(e.ResponsibleID),
		e.ClientID, e.ProductID, e.TaskTypeID, e.TaskID,
	)
}

func buildKey(collaborator, clients, product, taskType, task string) PartialKey {
	k := make(PartialKey, len(Dimensions))
	put := func(d Dimension, id string) {
		if id = NormalizeID(id); id != "" {
			k[d] = []string{id}
		}
	}
	put(DimensionColaborador, collaborator)
	if ids := SplitIDs(clients); len(ids) > 0 {
		k[DimensionCliente] = ids
	}
	put(DimensionProduto, product)
	put(DimensionTipoTarefa, taskType)
	put(DimensionTarefa, task)
	return k
}

// Filters are optional allow-lists per dimension. A nil or empty list means
// no restriction.
type Filters map[Dimension][]string

// apply narrows k to the allowed values. It returns false when a filtered
// dimension has no allowed value left, in which case the record is excluded.
func (f Filters) apply(k PartialKey) (PartialKey, bool) {
	if len(f) == 0 {
		return k, true
	}
	out := make(PartialKey, len(k))
	for d, v := range k {
		out[d] = v
	}
	for d, allowed := range f {
		if len(allowed) == 0 {
			continue
		}
		allow := make(map[string]struct{}, len(allowed))
		for _, a := range allowed {
			allow[NormalizeID(a)] = struct{}{}
		}
		var kept []string
		for _, v := range k[d] {
			if _, ok := allow[v]; ok {
				kept = append(kept, v)
			}
		}
		if len(kept) == 0 {
			return nil, false
		}
		out[d] = kept
	}
	return out, true
}
