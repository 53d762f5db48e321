package main

import (
	"net/http"
	"time"

	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/service"
)

type CreateTemporaryPriceRequest struct {
	RuleName string    `json:"rule_name" validate:"required,max=120"`
	Price    int64     `json:"price" validate:"min=0"`
	StartAt  time.Time `json:"start_at" validate:"required"`
	EndAt    time.Time `json:"end_at" validate:"required"`
	Enabled  *bool     `json:"enabled"`
}

type UpdateTemporaryPriceRequest struct {
	RuleName *string    `json:"rule_name" validate:"omitempty,min=1,max=120"`
	Price    *int64     `json:"price" validate:"omitempty,min=0"`
	StartAt  *time.Time `json:"start_at"`
	EndAt    *time.Time `json:"end_at"`
	Enabled  *bool      `json:"enabled"`
}

// listTemporaryPricesHandler godoc
//
//	@Summary		List price rules
//	@Description	Lists an item's temporary price rules, each annotated with its status
//	@Tags			temporary-prices
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			item_id	path		string	true	"Menu item ID"
//	@Success		200		{array}		service.TemporaryPriceWithStatus
//	@Failure		404		{object}	map[string]string
//	@Router			/admin/menu-items/{item_id}/temporary-prices [get]
func (app *application) listTemporaryPricesHandler(w http.ResponseWriter, r *http.Request) {
	menuItemID, err := parseIDParam(r, "item_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	prices, err := app.temporaryPriceService.List(r.Context(), menuItemID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, prices); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createTemporaryPriceHandler godoc
//
//	@Summary		Create price rule
//	@Description	Adds a temporary price window to a menu item
//	@Tags			temporary-prices
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			item_id	path		string						true	"Menu item ID"
//	@Param			request	body		CreateTemporaryPriceRequest	true	"Price rule"
//	@Success		201		{object}	service.TemporaryPriceWithStatus
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/admin/menu-items/{item_id}/temporary-prices [post]
func (app *application) createTemporaryPriceHandler(w http.ResponseWriter, r *http.Request) {
	menuItemID, err := parseIDParam(r, "item_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req CreateTemporaryPriceRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	price, err := app.temporaryPriceService.Create(r.Context(), menuItemID, service.CreateTemporaryPriceInput{
		RuleName: req.RuleName,
		Price:    req.Price,
		StartAt:  req.StartAt,
		EndAt:    req.EndAt,
		Enabled:  req.Enabled,
	}, actorID(r))
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, price); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateTemporaryPriceHandler godoc
//
//	@Summary		Update price rule
//	@Tags			temporary-prices
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			item_id		path		string						true	"Menu item ID"
//	@Param			price_id	path		string						true	"Price rule ID"
//	@Param			request		body		UpdateTemporaryPriceRequest	true	"Fields to update"
//	@Success		200			{object}	service.TemporaryPriceWithStatus
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/admin/menu-items/{item_id}/temporary-prices/{price_id} [patch]
func (app *application) updateTemporaryPriceHandler(w http.ResponseWriter, r *http.Request) {
	menuItemID, err := parseIDParam(r, "item_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	priceID, err := parseIDParam(r, "price_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req UpdateTemporaryPriceRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	price, err := app.temporaryPriceService.Update(r.Context(), menuItemID, priceID, service.UpdateTemporaryPriceInput{
		RuleName: req.RuleName,
		Price:    req.Price,
		StartAt:  req.StartAt,
		EndAt:    req.EndAt,
		Enabled:  req.Enabled,
	}, actorID(r))
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, price); err != nil {
		app.internalServerError(w, r, err)
	}
}

// setTemporaryPriceEnabledHandler godoc
//
//	@Summary		Enable or disable price rule
//	@Tags			temporary-prices
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			item_id		path		string				true	"Menu item ID"
//	@Param			price_id	path		string				true	"Price rule ID"
//	@Param			request		body		SetEnabledRequest	true	"Enabled flag"
//	@Success		200			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/admin/menu-items/{item_id}/temporary-prices/{price_id}/enabled [patch]
func (app *application) setTemporaryPriceEnabledHandler(w http.ResponseWriter, r *http.Request) {
	menuItemID, err := parseIDParam(r, "item_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	priceID, err := parseIDParam(r, "price_id")
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

	if err := app.temporaryPriceService.SetEnabled(r.Context(), menuItemID, priceID, *req.Enabled, actorID(r)); err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, map[string]string{"message": "price rule updated"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// duplicateTemporaryPriceHandler godoc
//
//	@Summary		Duplicate price rule
//	@Description	Clones a price rule as a disabled copy for later editing
//	@Tags			temporary-prices
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			item_id		path		string	true	"Menu item ID"
//	@Param			price_id	path		string	true	"Price rule ID"
//	@Success		201			{object}	service.TemporaryPriceWithStatus
//	@Failure		404			{object}	map[string]string
//	@Router			/admin/menu-items/{item_id}/temporary-prices/{price_id}/duplicate [post]
func (app *application) duplicateTemporaryPriceHandler(w http.ResponseWriter, r *http.Request) {
	menuItemID, err := parseIDParam(r, "item_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	priceID, err := parseIDParam(r, "price_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	price, err := app.temporaryPriceService.Duplicate(r.Context(), menuItemID, priceID, actorID(r))
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, price); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteTemporaryPriceHandler godoc
//
//	@Summary		Delete price rule
//	@Tags			temporary-prices
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			item_id		path	string	true	"Menu item ID"
//	@Param			price_id	path	string	true	"Price rule ID"
//	@Success		204
//	@Failure		404	{object}	map[string]string
//	@Router			/admin/menu-items/{item_id}/temporary-prices/{price_id} [delete]
func (app *application) deleteTemporaryPriceHandler(w http.ResponseWriter, r *http.Request) {
	menuItemID, err := parseIDParam(r, "item_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	priceID, err := parseIDParam(r, "price_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.temporaryPriceService.Delete(r.Context(), menuItemID, priceID, actorID(r)); err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
