package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/andreyxaxa/Background-Remover/internal/controller/restapi/v1/response"
	"github.com/andreyxaxa/Background-Remover/internal/controller/restapi/v1/validate"
	"github.com/andreyxaxa/Background-Remover/internal/dto"
	"github.com/andreyxaxa/Background-Remover/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// @Summary  	Remove image background
// @Description Removes the background, stores the result as PNG and returns a short-lived signed URL
// @Tags 		images
// @Accept 		mpfd
// @Produce 	json
// @Param 		Authorization header   string true "Bearer token"
// @Param 		image 		  formData file   true "Image file(jpeg, png, gif, webp, bmp, tiff)"
// @Success 	200 {object} response.ProcessImage
// @Failure 	400 {object} response.Error "Missing or undecodable image"
// @Failure 	401 {object} response.Error "Missing credential"
// @Failure 	413 {object} response.Error "File too large"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/process-image [post]
func (r *V1) processImage(ctx *fiber.Ctx) error {
	// 1. credential
	token := validate.BearerToken(ctx.Get(fiber.HeaderAuthorization))
	if token == "" {
		return errorResponse(ctx, http.StatusUnauthorized, "missing credential")
	}

	// 2. file
	file, err := ctx.FormFile(validate.FormField)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "image is required")
	}

	if file.Size == 0 {
		return errorResponse(ctx, http.StatusBadRequest, "image is empty")
	}

	if file.Size > validate.MaxFileSize {
		return errorResponse(ctx, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("image size cant be more than %d bytes", validate.MaxFileSize))
	}

	if !validate.ContentType(file.Header.Get(fiber.HeaderContentType)) {
		return errorResponse(ctx, http.StatusBadRequest, "unsupported image type")
	}

	fileReader, err := file.Open()
	if err != nil {
		r.logger.Error(err, "restapi - v1 - processImage - file.Open")

		return errorResponse(ctx, http.StatusInternalServerError, "problems with opening the file")
	}
	defer fileReader.Close()

	data, err := io.ReadAll(fileReader)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - processImage - io.ReadAll")

		return errorResponse(ctx, http.StatusInternalServerError, "problems with reading the file")
	}

	// 3. process
	processCtx, cancel := context.WithTimeout(ctx.UserContext(), r.requestTimeout)
	defer cancel()

	res, err := r.proc.Process(processCtx, dto.ProcessingRequest{
		Data:         data,
		OriginalName: file.Filename,
		AuthToken:    token,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEventPublishFailed) && res != nil:
			// image is stored and reachable, only the metadata record is lost
			r.logger.Warn("restapi - v1 - processImage - image %s: %v", res.ImageID, err)
		case errors.Is(err, errs.ErrUnauthenticated):
			return errorResponse(ctx, http.StatusUnauthorized, "missing credential")
		case errors.Is(err, errs.ErrInvalidInput):
			return errorResponse(ctx, http.StatusBadRequest, "image could not be decoded")
		default:
			r.logger.Error(err, "restapi - v1 - processImage")

			return errorResponse(ctx, http.StatusInternalServerError, failureMessage(err))
		}
	}

	// 4. response
	return ctx.Status(http.StatusOK).JSON(response.ProcessImage{
		SignedURL: res.SignedURL,
		ImageID:   res.ImageID.String(),
	})
}

// @Summary 	Get image metadata
// @Description Returns the committed metadata record with a fresh signed URL
// @Tags 		images
// @Produce 	json
// @Param 		Authorization header string true "Bearer token"
// @Param 		id 			  path 	 string true "Image ID(uuid)"
// @Success 	200 {object} response.ImageMetadata
// @Failure 	400 {object} response.Error "Invalid ID"
// @Failure 	401 {object} response.Error "Missing credential"
// @Failure 	404 {object} response.Error "Image not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/images/{id} [get]
func (r *V1) getImage(ctx *fiber.Ctx) error {
	token := validate.BearerToken(ctx.Get(fiber.HeaderAuthorization))
	if token == "" {
		return errorResponse(ctx, http.StatusUnauthorized, "missing credential")
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	lookupCtx, cancel := context.WithTimeout(ctx.UserContext(), r.requestTimeout)
	defer cancel()

	view, err := r.proc.Lookup(lookupCtx, id, token)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUnauthenticated):
			return errorResponse(ctx, http.StatusUnauthorized, "missing credential")
		case errors.Is(err, errs.ErrRecordNotFound):
			return errorResponse(ctx, http.StatusNotFound, "image not found")
		default:
			r.logger.Error(err, "restapi - v1 - getImage")

			return errorResponse(ctx, http.StatusInternalServerError, failureMessage(err))
		}
	}

	resp := response.ImageMetadata{
		ImageID:      view.ImageID.String(),
		OriginalName: view.OriginalName,
		Status:       view.Status,
		StoragePath:  view.StoragePath,
		Tags:         view.Tags,
		SignedURL:    view.SignedURL,
		ExpiresAt:    view.ExpiresAt.UTC().Format(time.RFC3339),
	}
	if view.ProcessedAt != nil {
		resp.ProcessedAt = view.ProcessedAt.UTC().Format(time.RFC3339)
	}

	return ctx.Status(http.StatusOK).JSON(resp)
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, errs.ErrTransformFailed):
		return "background removal failed"
	case errors.Is(err, errs.ErrStorageFailed):
		return "storage problems"
	case errors.Is(err, errs.ErrHandleGenerationFailed):
		return "could not issue download url"
	case errors.Is(err, errs.ErrSinkUnavailable):
		return "metadata store unavailable"
	default:
		return "internal error"
	}
}
