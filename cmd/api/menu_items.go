package main

import (
	"net/http"

	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/domain"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/repo"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateMenuItemRequest struct {
	CategoryID  string `json:"category_id" validate:"required"`
	SectionID   string `json:"section_id" validate:"required"`
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"max=2000"`
	BasePrice   int64  `json:"base_price" validate:"min=0"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	Available   *bool  `json:"available"`
	Enabled     *bool  `json:"enabled"`
}

type UpdateMenuItemRequest struct {
	CategoryID  *string `json:"category_id"`
	SectionID   *string `json:"section_id"`
	Name        *string `json:"name" validate:"omitempty,min=1,max=120"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	BasePrice   *int64  `json:"base_price" validate:"omitempty,min=0"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	Available   *bool   `json:"available"`
	Enabled     *bool   `json:"enabled"`
}

type SetAvailableRequest struct {
	Available *bool `json:"available" validate:"required"`
}

// listMenuItemsHandler godoc
//
//	@Summary		List menu items
//	@Tags			menu-items
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			category_id	query		string	false	"Filter by category"
//	@Param			section_id	query		string	false	"Filter by section"
//	@Param			available	query		bool	false	"Filter by availability"
//	@Param			enabled		query		bool	false	"Filter by enabled"
//	@Param			search		query		string	false	"Search in name and description"
//	@Param			page		query		int		false	"Page"
//	@Param			per_page	query		int		false	"Page size"
//	@Success		200			{object}	map[string]interface{}
//	@Failure		500			{object}	map[string]string
//	@Router			/admin/menu-items [get]
func (app *application) listMenuItemsHandler(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r)

	filter := repo.MenuItemFilter{
		Available: parseBoolQuery(r, "available"),
		Enabled:   parseBoolQuery(r, "enabled"),
		Search:    r.URL.Query().Get("search"),
		Page:      page,
		PerPage:   perPage,
	}

	if raw := r.URL.Query().Get("category_id"); raw != "" {
		categoryID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			app.badRequestResponse(w, r, ErrInvalidID)
			return
		}
		filter.CategoryID = &categoryID
	}
	if raw := r.URL.Query().Get("section_id"); raw != "" {
		sectionID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			app.badRequestResponse(w, r, ErrInvalidID)
			return
		}
		filter.SectionID = &sectionID
	}

	items, total, err := app.menuItemService.List(r.Context(), filter)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := paginatedResponse{
		Items:   items,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getMenuItemHandler godoc
//
//	@Summary		Get menu item
//	@Tags			menu-items
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			item_id	path		string	true	"Menu item ID"
//	@Success		200		{object}	domain.MenuItem
//	@Failure		404		{object}	map[string]string
//	@Router			/admin/menu-items/{item_id} [get]
func (app *application) getMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "item_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	item, err := app.menuItemService.Get(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	category, err := app.menuItemService.Category(r.Context(), item.CategoryID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	section, err := app.menuItemService.Section(r.Context(), item.SectionID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	response := struct {
		*domain.MenuItem
		CategoryName string `json:"category_name"`
		SectionName  string `json:"section_name"`
	}{MenuItem: item, CategoryName: category.Name, SectionName: section.Name}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createMenuItemHandler godoc
//
//	@Summary		Create menu item
//	@Description	Creates a menu item; the section must belong to the category
//	@Tags			menu-items
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			request	body		CreateMenuItemRequest	true	"Menu item"
//	@Success		201		{object}	domain.MenuItem
//	@Failure		400		{object}	map[string]string
//	@Failure		409		{object}	map[string]string
//	@Router			/admin/menu-items [post]
func (app *application) createMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateMenuItemRequest
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
	sectionID, err := primitive.ObjectIDFromHex(req.SectionID)
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	item, err := app.menuItemService.Create(r.Context(), service.CreateMenuItemInput{
		CategoryID:  categoryID,
		SectionID:   sectionID,
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		ImageURL:    req.ImageURL,
		Available:   req.Available,
		Enabled:     req.Enabled,
	}, actorID(r))
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateMenuItemHandler godoc
//
//	@Summary		Update menu item
//	@Tags			menu-items
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			item_id	path		string					true	"Menu item ID"
//	@Param			request	body		UpdateMenuItemRequest	true	"Fields to update"
//	@Success		200		{object}	domain.MenuItem
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		409		{object}	map[string]string
//	@Router			/admin/menu-items/{item_id} [patch]
func (app *application) updateMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "item_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req UpdateMenuItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	in := service.UpdateMenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		ImageURL:    req.ImageURL,
		Available:   req.Available,
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
	if req.SectionID != nil {
		sectionID, err := primitive.ObjectIDFromHex(*req.SectionID)
		if err != nil {
			app.badRequestResponse(w, r, ErrInvalidID)
			return
		}
		in.SectionID = &sectionID
	}

	item, err := app.menuItemService.Update(r.Context(), id, in, actorID(r))
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// setMenuItemAvailableHandler godoc
//
//	@Summary		Set menu item availability
//	@Description	Marks an item in or out of stock without hiding it
//	@Tags			menu-items
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			item_id	path		string				true	"Menu item ID"
//	@Param			request	body		SetAvailableRequest	true	"Availability flag"
//	@Success		200		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/admin/menu-items/{item_id}/availability [patch]
func (app *application) setMenuItemAvailableHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "item_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req SetAvailableRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.menuItemService.SetAvailable(r.Context(), id, *req.Available, actorID(r)); err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, map[string]string{"message": "menu item updated"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// setMenuItemEnabledHandler godoc
//
//	@Summary		Enable or disable menu item
//	@Tags			menu-items
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			item_id	path		string				true	"Menu item ID"
//	@Param			request	body		SetEnabledRequest	true	"Enabled flag"
//	@Success		200		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/admin/menu-items/{item_id}/enabled [patch]
func (app *application) setMenuItemEnabledHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "item_id")
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

	if err := app.menuItemService.SetEnabled(r.Context(), id, *req.Enabled, actorID(r)); err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, map[string]string{"message": "menu item updated"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteMenuItemHandler godoc
//
//	@Summary		Delete menu item
//	@Description	Deletes a menu item and its price rules
//	@Tags			menu-items
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			item_id	path	string	true	"Menu item ID"
//	@Success		204
//	@Failure		404	{object}	map[string]string
//	@Router			/admin/menu-items/{item_id} [delete]
func (app *application) deleteMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "item_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.menuItemService.Delete(r.Context(), id, actorID(r)); err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
