package main

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
)

// listAuditHandler godoc
//
//	@Summary		Change history
//	@Description	Lists recent audit records for one catalogue entity
//	@Tags			audit
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			entity_type	path		string	true	"Entity type"
//	@Param			entity_id	path		string	true	"Entity ID"
//	@Param			limit		query		int		false	"Max records"
//	@Success		200			{array}		domain.MenuChangeAudit
//	@Failure		500			{object}	map[string]string
//	@Router			/admin/audit/{entity_type}/{entity_id} [get]
func (app *application) listAuditHandler(w http.ResponseWriter, r *http.Request) {
	entityType := chi.URLParam(r, "entity_type")
	entityID := chi.URLParam(r, "entity_id")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	records, err := app.auditService.ListByEntity(r.Context(), entityType, entityID, limit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, records); err != nil {
		app.internalServerError(w, r, err)
	}
}
