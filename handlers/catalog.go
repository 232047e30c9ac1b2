package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/dmitrymomot/babel/internal"
	"github.com/dmitrymomot/babel/pkg/catalog"
	"github.com/dmitrymomot/babel/pkg/job"
	"github.com/dmitrymomot/babel/pkg/storage"
)

// Bundle uploads are capped at 5MB.
const maxBundleBytes = 5 << 20

// Reloader rebuilds the catalog. *catalog.Manager satisfies it.
type Reloader interface {
	Reload(ctx context.Context) error
	Status() catalog.Status
}

// Overrides edits stored translation overrides. *catalog.Store satisfies it.
type Overrides interface {
	Upsert(ctx context.Context, locale, key, value string) (catalog.Override, error)
	Delete(ctx context.Context, locale, key string) error
	List(ctx context.Context, locale string) ([]catalog.Override, error)
}

// Bundles stores catalog files. *catalog.StorageSource satisfies it.
type Bundles interface {
	Put(ctx context.Context, name string, data []byte) error
	Remove(ctx context.Context, name string) error
	Bundles(ctx context.Context) ([]storage.Object, error)
}

// CatalogAdmin serves reloads, overrides and bundle uploads.
type CatalogAdmin struct {
	reloader  Reloader
	overrides Overrides
	bundles   Bundles
}

// CatalogAdminOption enables optional parts of CatalogAdmin.
type CatalogAdminOption func(*CatalogAdmin)

// WithOverrides enables the override endpoints.
func WithOverrides(o Overrides) CatalogAdminOption {
	return func(h *CatalogAdmin) { h.overrides = o }
}

// WithBundles enables the bundle endpoints.
func WithBundles(b Bundles) CatalogAdminOption {
	return func(h *CatalogAdmin) { h.bundles = b }
}

func NewCatalogAdmin(r Reloader, opts ...CatalogAdminOption) *CatalogAdmin {
	h := &CatalogAdmin{reloader: r}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes registers full paths rather than a subrouter, so they share the
// /v1/catalog/{locale} tree with Translate.
func (h *CatalogAdmin) Routes(r internal.Router) {
	r.GET("/v1/catalog/status", h.status)
	r.POST("/v1/catalog/reload", h.reload)
	if h.overrides != nil {
		r.GET("/v1/catalog/{locale}/overrides", h.listOverrides)
		r.PUT("/v1/catalog/{locale}/{key}", h.putOverride)
		r.DELETE("/v1/catalog/{locale}/{key}", h.deleteOverride)
	}
	if h.bundles != nil {
		r.GET("/v1/bundles", h.listBundles)
		r.PUT("/v1/bundles/*", h.putBundle)
		r.DELETE("/v1/bundles/*", h.deleteBundle)
	}
}

// ReloadResponse is the body of POST /v1/catalog/reload.
type ReloadResponse struct {
	Queued bool            `json:"queued"`
	Status *catalog.Status `json:"status,omitempty"`
}

func (h *CatalogAdmin) status(c internal.Context) error {
	return c.JSON(http.StatusOK, h.reloader.Status())
}

// reload queues a reload job. A request made while another reload is
// still waiting to run is folded into it and answered with queued=false.
// Without a job queue the catalog is reloaded inline.
func (h *CatalogAdmin) reload(c internal.Context) error {
	err := c.Enqueue(catalog.ReloadTaskName, nil, job.UniqueFor(time.Minute))
	switch {
	case err == nil:
		c.LogInfo("catalog reload queued")
		return c.JSON(http.StatusAccepted, ReloadResponse{Queued: true})
	case errors.Is(err, job.ErrDuplicate):
		c.LogInfo("catalog reload already pending")
		return c.JSON(http.StatusAccepted, ReloadResponse{Queued: false})
	case !errors.Is(err, job.ErrNotConfigured):
		return err
	}

	if err := h.reloader.Reload(c); err != nil {
		return domainError(err)
	}
	st := h.reloader.Status()
	return c.JSON(http.StatusOK, ReloadResponse{Status: &st})
}

// OverrideRequest is the body of PUT /v1/catalog/{locale}/{key}.
type OverrideRequest struct {
	Value string `json:"value"`
}

func (h *CatalogAdmin) listOverrides(c internal.Context) error {
	list, err := h.overrides.List(c, c.Param("locale"))
	if err != nil {
		return domainError(err)
	}
	if list == nil {
		list = []catalog.Override{}
	}
	return c.JSON(http.StatusOK, list)
}

func (h *CatalogAdmin) putOverride(c internal.Context) error {
	var req OverrideRequest
	if err := c.BindJSON(&req); err != nil {
		return err
	}
	o, err := h.overrides.Upsert(c, c.Param("locale"), c.Param("key"), req.Value)
	if err != nil {
		return domainError(err)
	}
	c.LogInfo("override saved", "locale", o.Locale, "key", o.Key)
	return c.JSON(http.StatusOK, o)
}

func (h *CatalogAdmin) deleteOverride(c internal.Context) error {
	if err := h.overrides.Delete(c, c.Param("locale"), c.Param("key")); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogAdmin) listBundles(c internal.Context) error {
	list, err := h.bundles.Bundles(c)
	if err != nil {
		return domainError(err)
	}
	if list == nil {
		list = []storage.Object{}
	}
	return c.JSON(http.StatusOK, list)
}

// putBundle stores the raw request body as a catalog file. The name comes
// from the path, so its extension picks the decoder.
func (h *CatalogAdmin) putBundle(c internal.Context) error {
	data, err := io.ReadAll(http.MaxBytesReader(c.Response(), c.Request().Body, maxBundleBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return internal.NewHTTPError(http.StatusRequestEntityTooLarge, "bundle too large")
		}
		return err
	}
	if err := h.bundles.Put(c, c.Param("*"), data); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogAdmin) deleteBundle(c internal.Context) error {
	if err := h.bundles.Remove(c, c.Param("*")); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
