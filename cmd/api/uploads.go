package main

import (
	"errors"
	"net/http"

	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/uploader"
)

const maxImageSize = 10 << 20 // 10 MB

// uploadImageHandler godoc
//
//	@Summary		Upload image
//	@Description	Uploads a menu image and returns its public URL
//	@Tags			uploads
//	@Accept			mpfd
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			image	formData	file	true	"Image file"
//	@Success		201		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/admin/uploads/images [post]
func (app *application) uploadImageHandler(w http.ResponseWriter, r *http.Request) {
	if app.uploader == nil {
		app.internalServerError(w, r, errors.New("uploads are not configured"))
		return
	}

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")

	url, err := app.uploader.UploadImage(r.Context(), file, contentType)
	if err != nil {
		if errors.Is(err, uploader.ErrUnsupportedContentType) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, map[string]string{"url": url}); err != nil {
		app.internalServerError(w, r, err)
	}
}
