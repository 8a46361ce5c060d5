package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"ecopontos/internal/registry"
	"ecopontos/internal/storage"
	"ecopontos/pkg/types"

	"github.com/alexedwards/flow"
)

// numeric accepts a JSON number or a numeric string; both conventions
// appear in client payloads.
type numeric string

func (n *numeric) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*n = numeric(v)
		return nil
	}

	*n = numeric(b)
	return nil
}

// createPointRequest is the JSON client convention: numeric fields may
// be numbers or strings, categories a comma string or an integer array,
// and the image a filename stored by a prior upload.
type createPointRequest struct {
	Name       string                  `json:"name"`
	Email      string                  `json:"email"`
	Whatsapp   numeric                 `json:"whatsapp"`
	Latitude   numeric                 `json:"latitude"`
	Longitude  numeric                 `json:"longitude"`
	City       string                  `json:"city"`
	UF         string                  `json:"uf"`
	Categories types.CategorySelection `json:"categories"`
	Image      string                  `json:"image"`
}

// createPointForm is the multipart client convention; the image travels
// as a file part and categories as a comma string.
type createPointForm struct {
	Name       string `form:"name"`
	Email      string `form:"email"`
	Whatsapp   string `form:"whatsapp"`
	Latitude   string `form:"latitude"`
	Longitude  string `form:"longitude"`
	City       string `form:"city"`
	UF         string `form:"uf"`
	Categories string `form:"categories"`
}

const maxUploadBytes = 8 << 20

func (s *Service) handleCreatePoint(w http.ResponseWriter, r *http.Request) {
	var input registry.CreatePointInput

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req createPointRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.respondError(w, types.NewValidationError("body", "Request body must be valid JSON."))
			return
		}

		input = registry.CreatePointInput{
			Name:       req.Name,
			Email:      req.Email,
			Whatsapp:   string(req.Whatsapp),
			Latitude:   string(req.Latitude),
			Longitude:  string(req.Longitude),
			City:       req.City,
			UF:         req.UF,
			Categories: req.Categories,
			Image:      req.Image,
		}
	} else {
		formInput, err := s.decodeMultipartCreate(r)
		if err != nil {
			s.respondError(w, err)
			return
		}
		input = formInput
	}

	point, err := s.registry.CreatePoint(r.Context(), input)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, point)
}

// decodeMultipartCreate stores the uploaded image first, then hands the
// registry the stored filename alongside the form fields. A missing file
// part simply leaves the filename empty for the registry to reject.
func (s *Service) decodeMultipartCreate(r *http.Request) (registry.CreatePointInput, error) {
	var input registry.CreatePointInput

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return input, types.NewValidationError("body", "Request body must be multipart form data.")
	}

	var f createPointForm
	if err := decoder.Decode(&f, r.MultipartForm.Value); err != nil {
		return input, types.NewValidationError("body", "Malformed form fields.")
	}

	input = registry.CreatePointInput{
		Name:       f.Name,
		Email:      f.Email,
		Whatsapp:   f.Whatsapp,
		Latitude:   f.Latitude,
		Longitude:  f.Longitude,
		City:       f.City,
		UF:         f.UF,
		Categories: types.CategoriesFromString(f.Categories),
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return input, nil
	}
	defer file.Close()

	filename, err := storage.UploadFilename(header.Filename)
	if err != nil {
		return input, err
	}

	if err := s.uploads.Save(r.Context(), filename, header.Header.Get("Content-Type"), file); err != nil {
		return input, err
	}

	input.Image = filename
	return input, nil
}

func (s *Service) handleGetPoint(w http.ResponseWriter, r *http.Request) {
	pointID, err := strconv.ParseInt(flow.Param(r.Context(), "id"), 10, 64)
	if err != nil {
		s.respondError(w, types.ErrPointNotFound)
		return
	}

	detail, err := s.registry.GetPoint(r.Context(), pointID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, detail)
}

func (s *Service) handleListPoints(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	points, err := s.registry.ListPoints(
		r.Context(),
		q.Get("uf"),
		q.Get("city"),
		types.CategoriesFromString(q.Get("categories")),
	)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, points)
}
