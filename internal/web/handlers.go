package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/evcraddock/condo-registry/internal/condo"
	"github.com/evcraddock/condo-registry/internal/view"
)

// maxUploadBytes caps the multipart form, photo included.
const maxUploadBytes = 10 << 20

type listData struct {
	Records []*condo.Record
	Count   int
}

type addData struct {
	Error         string
	UploadEnabled bool
}

// handleList renders the table and map of every stored record.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.ReadAll(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Error loading records (try again): %v", err), http.StatusBadGateway)
		return
	}

	records := view.Records(rows)
	s.render(w, "list.html", listData{Records: records, Count: len(records)})
}

// handleAddForm renders the submission form.
func (s *Server) handleAddForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, "add.html", addData{UploadEnabled: s.uploader != nil})
}

// handleAddPost validates the submitted fields, geocodes the address,
// uploads the photo when one was attached, and appends the record.
// Geocoding and upload failures degrade the record; only validation and
// store failures stop the submission.
func (s *Server) handleAddPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	fields := map[string]string{}
	for _, key := range []string{
		"reporter", "name", "address", "fiscal_code",
		"central_heating", "heating_type", "central_cooling", "roof_condition",
		"units", "offices", "shops", "notes",
	} {
		fields[key] = r.FormValue(key)
	}

	rec, err := condo.Validate(fields)
	if err != nil {
		var verr *condo.ValidationError
		if errors.As(err, &verr) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			s.render(w, "add.html", addData{
				Error:         verr.Error(),
				UploadEnabled: s.uploader != nil,
			})
			return
		}
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	if p, err := s.resolver.Resolve(r.Context(), rec.Address); err == nil {
		rec.Latitude = &p.Latitude
		rec.Longitude = &p.Longitude
	}

	rec.Image = s.uploadPhoto(r)

	if err := s.store.Append(r.Context(), rec); err != nil {
		// The append may still have landed; a resubmission can
		// double-append. The store has no idempotency key.
		slog.Error("append failed", "building", rec.Name, "error", err)
		w.WriteHeader(http.StatusBadGateway)
		s.render(w, "add.html", addData{
			Error:         fmt.Sprintf("Saving failed, please retry: %v", err),
			UploadEnabled: s.uploader != nil,
		})
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// uploadPhoto stores the attached photo, if any. Every failure path
// returns the placeholder: an upload problem never blocks the record.
func (s *Server) uploadPhoto(r *http.Request) string {
	if s.uploader == nil {
		return condo.NoImage
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			slog.Warn("reading photo from form", "error", err)
		}
		return condo.NoImage
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			slog.Warn("closing uploaded photo", "error", cerr)
		}
	}()

	url, err := s.uploader.Upload(r.Context(), file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		slog.Warn("photo upload failed, keeping placeholder", "filename", header.Filename, "error", err)
		return condo.NoImage
	}

	return url
}

// handleHealth is a liveness endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
		slog.Warn("writing health response", "error", err)
	}
}

// handleAPICondos returns every record as JSON.
func (s *Server) handleAPICondos(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.ReadAll(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, view.Records(rows))
}

// handleAPIPoints returns the map markers as JSON. Rows whose address
// cannot be placed are absent, not errors.
func (s *Server) handleAPIPoints(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.ReadAll(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusBadGateway, err)
		return
	}

	points := make([]view.MapPoint, 0)
	for p := range s.assembler.MapPoints(r.Context(), rows) {
		points = append(points, p)
	}
	writeJSON(w, points)
}
