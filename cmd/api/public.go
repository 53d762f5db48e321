package main

import (
	"net/http"

	"github.com/go-chi/chi"
)

// listPublicCategoriesHandler godoc
//
//	@Summary		Public category list
//	@Description	Lists enabled categories for the customer-facing menu
//	@Tags			public
//	@Produce		json
//	@Success		200	{array}		service.PublicCategory
//	@Failure		500	{object}	map[string]string
//	@Router			/public/categories [get]
func (app *application) listPublicCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := app.publicService.ListCategories(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, categories); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getPublicCategoryHandler godoc
//
//	@Summary		Public category tree
//	@Description	Returns an enabled category with its sections and priced items
//	@Tags			public
//	@Produce		json
//	@Param			category	path		string	true	"Category ID or slug"
//	@Success		200			{object}	service.PublicCategoryTree
//	@Failure		404			{object}	map[string]string
//	@Router			/public/categories/{category} [get]
func (app *application) getPublicCategoryHandler(w http.ResponseWriter, r *http.Request) {
	idOrSlug := chi.URLParam(r, "category")
	if idOrSlug == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	tree, err := app.publicService.GetCategoryTree(r.Context(), idOrSlug)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, tree); err != nil {
		app.internalServerError(w, r, err)
	}
}
