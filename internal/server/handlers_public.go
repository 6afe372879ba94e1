package server

import (
	"net/http"

	"github.com/jonathan/cv-studio/internal/rendering"
)

// handlePublicResume serves the read-only public view of a shared resume.
// Private and nonexistent slugs both produce the same 404 so a probe cannot
// learn whether a hidden record exists.
func (s *Server) handlePublicResume(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		notFound := &ErrResumeNotFound{}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	rec, err := s.store.GetPublicBySlug(r.Context(), slug)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rec == nil {
		notFound := &ErrResumeNotFound{}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	doc, err := decodeDocument(rec)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	html, err := rendering.RenderPreview(doc, rendering.PreviewOptions{})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}
