package capacity

import "gestao_capacidade/internal/domain/entities"

// Names maps identifiers to display names, per dimension.
type Names map[Dimension]map[string]string

var nameFallbacks = map[Dimension]string{
	DimensionColaborador: "Colaborador",
	DimensionCliente:     "Cliente",
	DimensionProduto:     "Produto",
	DimensionTipoTarefa:  "Tipo",
	DimensionTarefa:      "Tarefa",
}

// Of returns the name of id in d, or "<Dimensão> #id" when it is unknown or
// blank.
func (n Names) Of(d Dimension, id string) string {
	id = NormalizeID(id)
	if name := n[d][id]; name != "" {
		return name
	}
	return nameFallbacks[d] + " #" + id
}

// Set records name for id in d. Blank names are ignored.
func (n Names) Set(d Dimension, id, name string) {
	id = NormalizeID(id)
	if id == "" || name == "" {
		return
	}
	if n[d] == nil {
		n[d] = make(map[string]string)
	}
	n[d][id] = name
}

// CollaboratorNames indexes the directory names by collaborator id.
func CollaboratorNames(collaborators []entities.Collaborator) map[string]string {
	out := make(map[string]string, len(collaborators))
	for _, c := range collaborators {
		if id := NormalizeID(c.ID); id != "" && c.Name != "" {
			out[id] = c.Name
		}
	}
	return out
}
