package servicecatalog

// Service дополнительная услуга объекта (инвентарь, уборка, техника)
type Service struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"` // Цена за единицу, без НДС
}

// ListResponse ответ каталога со списком услуг
type ListResponse struct {
	Services []Service `json:"services"`
}
