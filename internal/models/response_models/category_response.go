package response_models

import "trivia/internal/models/db_models"

// CategoryMap renders as {"<id>": "<type>"}.
type CategoryMap map[int]string

func NewCategoryMap(categories []db_models.Category) CategoryMap {
	out := make(CategoryMap, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out
}

type CategoriesResponse struct {
	Success    bool        `json:"success"`
	Categories CategoryMap `json:"categories"`
}
