package category

type CreateCategoryDTO struct {
	Name string `json:"name"`
}

type CategoryResponse struct {
	Name  string `json:"name"`
	Added bool   `json:"added"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
