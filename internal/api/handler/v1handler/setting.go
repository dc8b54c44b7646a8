package v1handler

import (
	"myblog/internal/blog"
	"myblog/pkg/storage"
	"net/http"
)

func (h *Handler) settingRoutes() {
	h.admin("POST /v1/system-settings", func(r *http.Request) (any, error) {
		var in blog.SettingInput
		if err := decode(r, &in); err != nil {
			return nil, err
		}

		return h.deps.Settings.Create(r.Context(), in) //nolint: wrapcheck
	})
	h.admin("PUT /v1/system-settings/{id}", h.withID(func(r *http.Request, id int64) (any, error) {
		var in blog.SettingInput
		if err := decode(r, &in); err != nil {
			return nil, err
		}

		return h.deps.Settings.Update(r.Context(), id, in) //nolint: wrapcheck
	}))
	h.admin("PUT /v1/system-settings/batch", func(r *http.Request) (any, error) {
		var in []blog.SettingInput
		if err := decode(r, &in); err != nil {
			return nil, err
		}

		return h.deps.Settings.Upsert(r.Context(), in) //nolint: wrapcheck
	})
	h.admin("DELETE /v1/system-settings/{id}", h.withID(func(r *http.Request, id int64) (any, error) {
		return nil, h.deps.Settings.Delete(r.Context(), id) //nolint: wrapcheck
	}))
	h.admin("GET /v1/system-settings/{id}", h.withID(func(r *http.Request, id int64) (any, error) {
		return h.deps.Settings.ByID(r.Context(), id) //nolint: wrapcheck
	}))
	h.admin("GET /v1/system-settings/key/{key}", func(r *http.Request) (any, error) {
		return h.deps.Settings.ByKey(r.Context(), r.PathValue("key")) //nolint: wrapcheck
	})
	h.admin("GET /v1/system-settings", h.listSettings(func(*http.Request) storage.SettingFilter {
		return storage.SettingFilter{}
	}))
	h.admin("GET /v1/system-settings/type/{type}", h.listSettings(func(r *http.Request) storage.SettingFilter {
		return storage.SettingFilter{Type: r.PathValue("type")}
	}))
	h.public("GET /v1/system-settings/public", h.listSettings(func(*http.Request) storage.SettingFilter {
		return storage.SettingFilter{PublicOnly: true}
	}))
}

func (h *Handler) listSettings(filter func(r *http.Request) storage.SettingFilter) endpoint {
	return func(r *http.Request) (any, error) {
		return h.deps.Settings.List(r.Context(), filter(r)) //nolint: wrapcheck
	}
}
