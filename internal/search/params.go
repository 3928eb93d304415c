// Package search builds the parameters handed to a supplier.
package search

import "github.com/genricoloni/wallfetch/internal/domain"

// Compose merges ad-hoc tags with an optional category.
// Explicit tags come first; duplicates are kept and tags are not validated,
// suppliers decide what they mean.
func Compose(category *domain.Category, tags []string) domain.SearchParameters {
	params := domain.SearchParameters{
		Tags:         append([]string{}, tags...),
		AspectRatios: []domain.AspectRatio{},
	}
	if category == nil {
		return params
	}

	params.Tags = append(params.Tags, category.Tags...)
	if category.AspectRatios != nil {
		params.AspectRatios = append(params.AspectRatios, category.AspectRatios...)
	}
	return params
}
