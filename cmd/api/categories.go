package main

import (
	"net/http"

	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/domain"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/repo"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"max=2000"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	Order       *int   `json:"order" validate:"omitempty,min=0"`
	Enabled     *bool  `json:"enabled"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=120"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	Order       *int    `json:"order" validate:"omitempty,min=0"`
	Enabled     *bool   `json:"enabled"`
}

type ReorderRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

type SetEnabledRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

func parseObjectIDs(raw []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, s := range raw {
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			return nil, ErrInvalidID
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// listCategoriesHandler godoc
//
//	@Summary		List categories
//	@Description	Lists categories with pagination, search and enabled filter
//	@Tags			categories
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			page		query		int		false	"Page"
//	@Param			per_page	query		int		false	"Page size"
//	@Param			enabled		query		bool	false	"Filter by enabled"
//	@Param			search		query		string	false	"Search in name and description"
//	@Success		200			{object}	map[string]interface{}
//	@Failure		500			{object}	map[string]string
//	@Router			/admin/categories [get]
func (app *application) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r)

	filter := repo.CategoryFilter{
		Enabled: parseBoolQuery(r, "enabled"),
		Search:  r.URL.Query().Get("search"),
		Page:    page,
		PerPage: perPage,
	}

	categories, total, err := app.categoryService.List(r.Context(), filter)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := paginatedResponse{
		Items:   categories,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getCategoryHandler godoc
//
//	@Summary		Get category
//	@Tags			categories
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			category_id	path		string	true	"Category ID"
//	@Success		200			{object}	domain.Category
//	@Failure		404			{object}	map[string]string
//	@Router			/admin/categories/{category_id} [get]
func (app *application) getCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "category_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	category, err := app.categoryService.Get(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	sectionNames, err := app.categoryService.SectionSummaries(r.Context(), id)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := struct {
		*domain.Category
		SectionNames []string `json:"section_names"`
	}{Category: category, SectionNames: sectionNames}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createCategoryHandler godoc
//
//	@Summary		Create category
//	@Description	Creates a category; the slug is derived from the name
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			request	body		CreateCategoryRequest	true	"Category"
//	@Success		201		{object}	domain.Category
//	@Failure		400		{object}	map[string]string
//	@Failure		409		{object}	map[string]string
//	@Router			/admin/categories [post]
func (app *application) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	category, err := app.categoryService.Create(r.Context(), service.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Order:       req.Order,
		Enabled:     req.Enabled,
	}, actorID(r))
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, category); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateCategoryHandler godoc
//
//	@Summary		Update category
//	@Description	Partially updates a category; renaming regenerates the slug
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			category_id	path		string					true	"Category ID"
//	@Param			request		body		UpdateCategoryRequest	true	"Fields to update"
//	@Success		200			{object}	domain.Category
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Failure		409			{object}	map[string]string
//	@Router			/admin/categories/{category_id} [patch]
func (app *application) updateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "category_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req UpdateCategoryRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	category, err := app.categoryService.Update(r.Context(), id, service.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Order:       req.Order,
		Enabled:     req.Enabled,
	}, actorID(r))
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, category); err != nil {
		app.internalServerError(w, r, err)
	}
}

// reorderCategoriesHandler godoc
//
//	@Summary		Reorder categories
//	@Description	Accepts the full set of category IDs in the desired order
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			request	body		ReorderRequest	true	"Ordered IDs"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Router			/admin/categories/reorder [post]
func (app *application) reorderCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ids, err := parseObjectIDs(req.IDs)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.categoryService.Reorder(r.Context(), ids, actorID(r)); err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, map[string]string{"message": "categories reordered"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// setCategoryEnabledHandler godoc
//
//	@Summary		Enable or disable category
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			category_id	path		string				true	"Category ID"
//	@Param			request		body		SetEnabledRequest	true	"Enabled flag"
//	@Success		200			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/admin/categories/{category_id}/enabled [patch]
func (app *application) setCategoryEnabledHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "category_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req SetEnabledRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.categoryService.SetEnabled(r.Context(), id, *req.Enabled, actorID(r)); err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, map[string]string{"message": "category updated"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteCategoryHandler godoc
//
//	@Summary		Delete category
//	@Description	Deletes a category with its sections, items and price rules
//	@Tags			categories
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			category_id	path	string	true	"Category ID"
//	@Success		204
//	@Failure		404	{object}	map[string]string
//	@Router			/admin/categories/{category_id} [delete]
func (app *application) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "category_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.categoryService.Delete(r.Context(), id, actorID(r)); err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
