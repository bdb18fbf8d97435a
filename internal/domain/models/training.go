package models

// TrainingModule describes one entry of the static training catalog shown
// on the training screen.
type TrainingModule struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Duration    string `json:"duration"`
	ImageURL    string `json:"image_url"`
}

// TrainingCatalog is the fixed set of available modules.
var TrainingCatalog = []TrainingModule{
	{
		ID:          "5s",
		Title:       "Ebook 5S: Guia Completo",
		Description: "Metodologia 5S aplicada ao dia a dia do almoxarifado, do descarte à disciplina.",
		Category:    "organization",
		Duration:    "10 Páginas",
		ImageURL:    "https://images.unsplash.com/photo-1586528116311-ad8dd3c8310d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:          "almox",
		Title:       "Organização de Almoxarifado",
		Description: "Boas práticas de endereçamento, etiquetagem e layout de prateleiras.",
		Category:    "organization",
		Duration:    "6 Páginas",
		ImageURL:    "https://images.unsplash.com/photo-1580674285054-bed31e145f59?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:          "excel",
		Title:       "Noções Básicas de Excel",
		Description: "Planilhas de controle de estoque: fórmulas, filtros e formatação condicional.",
		Category:    "office",
		Duration:    "10 Páginas",
		ImageURL:    "https://images.unsplash.com/photo-1543286386-713df548e9cc?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
	},
}
