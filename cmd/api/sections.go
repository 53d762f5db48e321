package main

import (
	"net/http"

	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/domain"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/repo"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateSectionRequest struct {
	CategoryID  string `json:"category_id" validate:"required"`
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"max=2000"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	Order       *int   `json:"order" validate:"omitempty,min=0"`
	Enabled     *bool  `json:"enabled"`
}

type UpdateSectionRequest struct {
	CategoryID  *string `json:"category_id"`
	Name        *string `json:"name" validate:"omitempty,min=1,max=120"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	Order       *int    `json:"order" validate:"omitempty,min=0"`
	Enabled     *bool   `json:"enabled"`
}

type ReorderSectionsRequest struct {
	CategoryID string   `json:"category_id" validate:"required"`
	IDs        []string `json:"ids" validate:"required,min=1,dive,required"`
}

// listSectionsHandler godoc
//
//	@Summary		List sections
//	@Tags			sections
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			category_id	query		string	false	"Filter by category"
//	@Param			page		query		int		false	"Page"
//	@Param			per_page	query		int		false	"Page size"
//	@Param			enabled		query		bool	false	"Filter by enabled"
//	@Param			search		query		string	false	"Search in name and description"
//	@Success		200			{object}	map[string]interface{}
//	@Failure		500			{object}	map[string]string
//	@Router			/admin/sections [get]
func (app *application) listSectionsHandler(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r)

	filter := repo.SectionFilter{
		Enabled: parseBoolQuery(r, "enabled"),
		Search:  r.URL.Query().Get("search"),
		Page:    page,
		PerPage: perPage,
	}

	if raw := r.URL.Query().Get("category_id"); raw != "" {
		categoryID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			app.badRequestResponse(w, r, ErrInvalidID)
			return
		}
		filter.CategoryID = &categoryID
	}

	sections, total, err := app.sectionService.List(r.Context(), filter)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := paginatedResponse{
		Items:   sections,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getSectionHandler godoc
//
//	@Summary		Get section
//	@Tags			sections
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			section_id	path		string	true	"Section ID"
//	@Success		200			{object}	domain.Section
//	@Failure		404			{object}	map[string]string
//	@Router			/admin/sections/{section_id} [get]
func (app *application) getSectionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "section_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	section, err := app.sectionService.Get(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	category, err := app.sectionService.Category(r.Context(), section.CategoryID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	response := struct {
		*domain.Section
		CategoryName string `json:"category_name"`
	}{Section: section, CategoryName: category.Name}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createSectionHandler godoc
//
//	@Summary		Create section
//	@Description	Creates a section; the slug is unique within its category
//	@Tags			sections
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			request	body		CreateSectionRequest	true	"Section"
//	@Success		201		{object}	domain.Section
//	@Failure		400		{object}	map[string]string
//	@Failure		409		{object}	map[string]string
//	@Router			/admin/sections [post]
func (app *application) createSectionHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateSectionRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	categoryID, err := primitive.ObjectIDFromHex(req.CategoryID)
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	section, err := app.sectionService.Create(r.Context(), service.CreateSectionInput{
		CategoryID:  categoryID,
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

	if err := app.jsonRespone(w, http.StatusCreated, section); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateSectionHandler godoc
//
//	@Summary		Update section
//	@Tags			sections
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			section_id	path		string					true	"Section ID"
//	@Param			request		body		UpdateSectionRequest	true	"Fields to update"
//	@Success		200			{object}	domain.Section
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Failure		409			{object}	map[string]string
//	@Router			/admin/sections/{section_id} [patch]
func (app *application) updateSectionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "section_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req UpdateSectionRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	in := service.UpdateSectionInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Order:       req.Order,
		Enabled:     req.Enabled,
	}

	if req.CategoryID != nil {
		categoryID, err := primitive.ObjectIDFromHex(*req.CategoryID)
		if err != nil {
			app.badRequestResponse(w, r, ErrInvalidID)
			return
		}
		in.CategoryID = &categoryID
	}

	section, err := app.sectionService.Update(r.Context(), id, in, actorID(r))
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, section); err != nil {
		app.internalServerError(w, r, err)
	}
}

// reorderSectionsHandler godoc
//
//	@Summary		Reorder sections
//	@Description	Accepts the full set of section IDs of one category in the desired order
//	@Tags			sections
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			request	body		ReorderSectionsRequest	true	"Category and ordered IDs"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Router			/admin/sections/reorder [post]
func (app *application) reorderSectionsHandler(w http.ResponseWriter, r *http.Request) {
	var req ReorderSectionsRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	categoryID, err := primitive.ObjectIDFromHex(req.CategoryID)
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	ids, err := parseObjectIDs(req.IDs)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.sectionService.Reorder(r.Context(), categoryID, ids, actorID(r)); err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, map[string]string{"message": "sections reordered"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// setSectionEnabledHandler godoc
//
//	@Summary		Enable or disable section
//	@Tags			sections
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			section_id	path		string				true	"Section ID"
//	@Param			request		body		SetEnabledRequest	true	"Enabled flag"
//	@Success		200			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/admin/sections/{section_id}/enabled [patch]
func (app *application) setSectionEnabledHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "section_id")
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

	if err := app.sectionService.SetEnabled(r.Context(), id, *req.Enabled, actorID(r)); err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, map[string]string{"message": "section updated"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteSectionHandler godoc
//
//	@Summary		Delete section
//	@Description	Deletes a section with its items and price rules
//	@Tags			sections
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			section_id	path	string	true	"Section ID"
//	@Success		204
//	@Failure		404	{object}	map[string]string
//	@Router			/admin/sections/{section_id} [delete]
func (app *application) deleteSectionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "section_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.sectionService.Delete(r.Context(), id, actorID(r)); err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
