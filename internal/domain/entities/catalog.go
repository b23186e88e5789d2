package entities

// Catalog kinds. The first four match the analysis dimensions.
const (
	CatalogCliente      = "cliente"
	CatalogProduto      = "produto"
	CatalogTipoTarefa   = "tipo_tarefa"
	CatalogTarefa       = "tarefa"
	CatalogTipoContrato = "tipo_contrato"
)

// CatalogEntry is the display name of a registry identifier: a client,
// product, task type, task or contract type.
type CatalogEntry struct {
	Kind string `json:"tipo"`
	ID   string `json:"id"`
	Name string `json:"nome"`
}
