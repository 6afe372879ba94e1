package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/cv-studio/internal/ats"
	"github.com/jonathan/cv-studio/internal/db"
	"github.com/jonathan/cv-studio/internal/rendering"
	"github.com/jonathan/cv-studio/internal/schemas"
	"github.com/jonathan/cv-studio/internal/types"
)

// resumeFromRequest loads the resume addressed by the {id} path segment for
// the authenticated owner. Writes the error response itself and returns nil
// when the request cannot proceed.
func (s *Server) resumeFromRequest(w http.ResponseWriter, r *http.Request) *db.ResumeRecord {
	userID, err := s.authedUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil
	}

	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return nil
	}

	rec, err := s.store.GetResume(r.Context(), userID, resumeID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return nil
	}
	if rec == nil {
		notFound := &ErrResumeNotFound{}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return nil
	}
	return rec
}

// decodeDocument unmarshals a stored document blob. A record created through
// this API always holds a schema-valid blob, so a decode failure is a server
// error, not a client one.
func decodeDocument(rec *db.ResumeRecord) (types.ResumeDocument, error) {
	var doc types.ResumeDocument
	if len(rec.Document) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(rec.Document, &doc); err != nil {
		return doc, fmt.Errorf("failed to decode stored document: %w", err)
	}
	return doc, nil
}

// handleCreateResume creates a new resume record with a minimal starter
// document.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = slugify(req.Title)
	}
	name := req.Name
	if name == "" {
		name = req.Title
	}

	document, err := json.Marshal(types.NewDocument(name))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	rec, err := s.store.CreateResume(r.Context(), userID, req.Title, slug, document)
	if err != nil {
		if errors.Is(err, db.ErrSlugTaken) {
			conflict := &ErrSlugConflict{Slug: slug}
			s.errorResponse(w, HTTPStatus(conflict), conflict.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, rec)
}

// handleListResumes lists the authenticated owner's resumes.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	records, err := s.store.ListResumesByOwner(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if records == nil {
		records = []db.ResumeRecord{}
	}
	s.jsonResponse(w, http.StatusOK, records)
}

// handleGetResume returns a single resume record.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	rec := s.resumeFromRequest(w, r)
	if rec == nil {
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleUpdateResume applies a partial (autosave) update. Re-sending the same
// request leaves the record in the same state, so a retried autosave is
// harmless.
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	var req types.UpdateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	patch := db.ResumePatch{Title: req.Title, Public: req.Public}
	if req.Slug != nil {
		slug := *req.Slug
		if slug == "" {
			s.errorResponse(w, http.StatusBadRequest, "Slug cannot be empty")
			return
		}
		patch.Slug = &slug
	}
	if req.Document != nil {
		if err := schemas.ValidateDocument(*req.Document); err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		patch.Document = *req.Document
	}

	rec, err := s.store.UpdateResume(r.Context(), userID, resumeID, patch)
	if err != nil {
		if errors.Is(err, db.ErrSlugTaken) {
			conflict := &ErrSlugConflict{Slug: *req.Slug}
			s.errorResponse(w, HTTPStatus(conflict), conflict.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rec == nil {
		notFound := &ErrResumeNotFound{}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, rec)
}

// handleDeleteResume deletes a resume record.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	deleted, err := s.store.DeleteResume(r.Context(), userID, resumeID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		notFound := &ErrResumeNotFound{}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleSetFeatured marks one resume as the owner's featured resume,
// unfeaturing every other record atomically.
func (s *Server) handleSetFeatured(w http.ResponseWriter, r *http.Request) {
	rec := s.resumeFromRequest(w, r)
	if rec == nil {
		return
	}

	if err := s.store.SetFeatured(r.Context(), rec.OwnerID, rec.ID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "featured"})
}

// handleScoreResume returns the scoring result for a resume document.
func (s *Server) handleScoreResume(w http.ResponseWriter, r *http.Request) {
	rec := s.resumeFromRequest(w, r)
	if rec == nil {
		return
	}

	doc, err := decodeDocument(rec)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ats.Score(doc, ats.DefaultRubric()))
}

// handlePreviewResume returns the interactive HTML preview. The optional zoom
// query parameter scales the canvas; anything unparsable falls back to 1.0.
func (s *Server) handlePreviewResume(w http.ResponseWriter, r *http.Request) {
	rec := s.resumeFromRequest(w, r)
	if rec == nil {
		return
	}

	doc, err := decodeDocument(rec)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	zoom := 1.0
	if raw := r.URL.Query().Get("zoom"); raw != "" {
		if z, err := strconv.ParseFloat(raw, 64); err == nil {
			zoom = z
		}
	}

	html, err := rendering.RenderPreview(doc, rendering.PreviewOptions{Zoom: zoom})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// handleDownloadPDF renders the print projection to a PDF artifact.
func (s *Server) handleDownloadPDF(w http.ResponseWriter, r *http.Request) {
	rec := s.resumeFromRequest(w, r)
	if rec == nil {
		return
	}

	doc, err := decodeDocument(rec)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	pdf, err := rendering.RenderPDF(r.Context(), doc)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	filename := rendering.Filename(doc.Basics.Name, time.Now())
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
