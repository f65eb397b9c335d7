package objects

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"object-storage/core/logger"
	"object-storage/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrInvalidKey is returned for a key that is not a valid escaped path.
var ErrInvalidKey = errors.New("invalid object key")

// Handler handles HTTP requests for objects.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the object and catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/objects")
	group.Put("/*", h.HandleSave)
	group.Post("/*", h.HandleUpdate)
	group.Get("/*", h.HandleLoad)
	group.Delete("/*", h.HandleDelete)

	app.Get("/catalog/*", h.HandleDescribe)
}

// HandleSave stores the request body under the key.
// @Summary Save Object
// @Description Uploads the request body. The Content-Type header becomes the object's content type. Existing objects are overwritten.
// @Tags objects
// @Accept octet-stream
// @Produce json
// @Param key path string true "Object key (e.g. 'users/123/avatar.png')"
// @Success 201 {object} Record "Stored object"
// @Failure 400 {object} map[string]string "Missing key"
// @Failure 500 {object} map[string]string "Write failure"
// @Router /objects/{key} [put]
func (h *Handler) HandleSave(c *fiber.Ctx) error {
	return h.handleWrite(c, fiber.StatusCreated, h.service.Save)
}

// HandleUpdate overwrites the object under the key.
// @Summary Update Object
// @Description Same as save; provided for clients that distinguish creating from updating.
// @Tags objects
// @Accept octet-stream
// @Produce json
// @Param key path string true "Object key"
// @Success 200 {object} Record "Updated object"
// @Failure 400 {object} map[string]string "Missing key"
// @Failure 500 {object} map[string]string "Write failure"
// @Router /objects/{key} [post]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	return h.handleWrite(c, fiber.StatusOK, h.service.Update)
}

func (h *Handler) handleWrite(c *fiber.Ctx, status int, write func(context.Context, string, io.Reader, int64, string) (*Record, error)) error {
	l := logger.WithRayID(h.service.logger, c)
	key, err := objectKey(c)
	if err != nil {
		return h.fail(c, l, err)
	}

	body := c.Body()
	rec, err := write(c.Context(), key, bytes.NewReader(body), int64(len(body)), c.Get(fiber.HeaderContentType))
	if err != nil {
		return h.fail(c, l, err)
	}

	return c.Status(status).JSON(rec)
}

// HandleLoad streams the object stored under the key.
// @Summary Load Object
// @Description Downloads the object. The content type comes from the catalog when available.
// @Tags objects
// @Produce octet-stream
// @Param key path string true "Object key"
// @Success 200 {file} file "Object content"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Read failure"
// @Router /objects/{key} [get]
func (h *Handler) HandleLoad(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	key, err := objectKey(c)
	if err != nil {
		return h.fail(c, l, err)
	}

	rc, contentType, err := h.service.Load(c.Context(), key)
	if err != nil {
		return h.fail(c, l, err)
	}

	// fasthttp closes the stream once the response is written.
	c.Set(fiber.HeaderContentType, contentType)
	return c.SendStream(rc)
}

// HandleDelete removes the object stored under the key.
// @Summary Delete Object
// @Description Deletes the object. Deleting a missing object succeeds.
// @Tags objects
// @Param key path string true "Object key"
// @Success 204 "Deleted"
// @Failure 500 {object} map[string]string "Delete failure"
// @Router /objects/{key} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	key, err := objectKey(c)
	if err != nil {
		return h.fail(c, l, err)
	}

	if err := h.service.Delete(c.Context(), key); err != nil {
		return h.fail(c, l, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDescribe returns the catalog record of an object.
// @Summary Describe Object
// @Description Returns size, content type and last update time recorded for the object.
// @Tags catalog
// @Produce json
// @Param key path string true "Object key"
// @Success 200 {object} Record "Object metadata"
// @Failure 404 {object} map[string]string "Not cataloged"
// @Failure 503 {object} map[string]string "Catalog disabled"
// @Router /catalog/{key} [get]
func (h *Handler) HandleDescribe(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	key, err := objectKey(c)
	if err != nil {
		return h.fail(c, l, err)
	}

	rec, err := h.service.Describe(c.Context(), key)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(rec)
}

func objectKey(c *fiber.Ctx) (string, error) {
	key, err := url.PathUnescape(c.Params("*"))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if key == "" {
		return "", ErrEmptyKey
	}
	return key, nil
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case storage.IsNotFound(err), errors.Is(err, ErrNotCataloged):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrCatalogDisabled):
		status = fiber.StatusServiceUnavailable
	case errors.Is(err, ErrEmptyKey), errors.Is(err, ErrInvalidKey):
		status = fiber.StatusBadRequest
	}

	body := fiber.Map{"error": err.Error()}
	if kind := storage.KindOf(err); kind != 0 {
		body["kind"] = kind.String()
	}

	if status >= fiber.StatusInternalServerError {
		l.Error("Object request failed", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.Status(status).JSON(body)
}
