package httpapi

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"restoran/menu-svc/internal/domain"
)

// withImage stores an uploaded image, hands its URL to set and runs save.
// The image is removed again when save fails.
func (h *Handler) withImage(prefix string, fh *multipart.FileHeader, set func(string), save func() error) error {
	if fh == nil {
		return save()
	}
	url, err := h.Uploads.Save(prefix, fh)
	if err != nil {
		return err
	}
	set(url)
	if err := save(); err != nil {
		h.Uploads.Remove(url)
		return err
	}
	return nil
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Categories.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeList(w, categories)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var c domain.Category
	image, err := decodeBody(w, r, &c)
	if err != nil {
		h.writeError(w, err)
		return
	}
	c.ID = 0
	err = h.withImage("category", image, func(url string) { c.ImageURL = url }, func() error {
		return h.Categories.Create(r.Context(), &c)
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.Categories.Get(r.Context(), pathID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	c, err := h.Categories.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	image, err := decodeBody(w, r, c)
	if err != nil {
		h.writeError(w, err)
		return
	}
	c.ID = id
	err = h.withImage("category", image, func(url string) { c.ImageURL = url }, func() error {
		return h.Categories.Update(r.Context(), c)
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.Categories.Delete(r.Context(), pathID(r)); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	filter := domain.MenuFilter{AvailableOnly: r.URL.Query().Get("available") == "true"}
	if category := r.URL.Query().Get("category"); category != "" {
		id, err := strconv.ParseInt(category, 10, 64)
		if err != nil {
			http.Error(w, "category must be a number", http.StatusBadRequest)
			return
		}
		filter.CategoryID = id
	}

	items, err := h.MenuItems.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeList(w, items)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	m := domain.MenuItem{IsAvailable: true}
	image, err := decodeBody(w, r, &m)
	if err != nil {
		h.writeError(w, err)
		return
	}
	m.ID = 0
	err = h.withImage("menu_item", image, func(url string) { m.ImageURL = url }, func() error {
		return h.MenuItems.Create(r.Context(), &m)
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	m, err := h.MenuItems.Get(r.Context(), pathID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	m, err := h.MenuItems.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	image, err := decodeBody(w, r, m)
	if err != nil {
		h.writeError(w, err)
		return
	}
	m.ID = id
	err = h.withImage("menu_item", image, func(url string) { m.ImageURL = url }, func() error {
		return h.MenuItems.Update(r.Context(), m)
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.MenuItems.Delete(r.Context(), pathID(r)); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listPromotions(w http.ResponseWriter, r *http.Request) {
	promotions, err := h.Promotions.List(r.Context(), r.URL.Query().Get("active") == "true")
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeList(w, promotions)
}

func (h *Handler) createPromotion(w http.ResponseWriter, r *http.Request) {
	p := domain.Promotion{IsActive: true}
	image, err := decodeBody(w, r, &p)
	if err != nil {
		h.writeError(w, err)
		return
	}
	p.ID = 0
	err = h.withImage("promotion", image, func(url string) { p.ImageURL = url }, func() error {
		return h.Promotions.Create(r.Context(), &p)
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) getPromotion(w http.ResponseWriter, r *http.Request) {
	p, err := h.Promotions.Get(r.Context(), pathID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) updatePromotion(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	p, err := h.Promotions.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	image, err := decodeBody(w, r, p)
	if err != nil {
		h.writeError(w, err)
		return
	}
	p.ID = id
	err = h.withImage("promotion", image, func(url string) { p.ImageURL = url }, func() error {
		return h.Promotions.Update(r.Context(), p)
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) deletePromotion(w http.ResponseWriter, r *http.Request) {
	if err := h.Promotions.Delete(r.Context(), pathID(r)); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listContents(w http.ResponseWriter, r *http.Request) {
	contents, err := h.Contents.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeList(w, contents)
}

func (h *Handler) createContent(w http.ResponseWriter, r *http.Request) {
	var c domain.TextContent
	if _, err := decodeBody(w, r, &c); err != nil {
		h.writeError(w, err)
		return
	}
	c.ID = 0
	if err := h.Contents.Create(r.Context(), &c); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) getContent(w http.ResponseWriter, r *http.Request) {
	c, err := h.Contents.Get(r.Context(), mux.Vars(r)["key"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) updateContent(w http.ResponseWriter, r *http.Request) {
	c, err := h.Contents.Get(r.Context(), mux.Vars(r)["key"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	id := c.ID
	if _, err := decodeBody(w, r, c); err != nil {
		h.writeError(w, err)
		return
	}
	c.ID = id
	if err := h.Contents.Update(r.Context(), c); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) deleteContent(w http.ResponseWriter, r *http.Request) {
	if err := h.Contents.Delete(r.Context(), mux.Vars(r)["key"]); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
