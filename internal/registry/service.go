// Package registry is the core of the service: it admits new collection
// points with validated, transactional writes and resolves discovery
// queries filtering by location and accepted categories.
package registry

import (
	"context"
	"errors"
	"net/mail"
	"regexp"
	"strconv"
	"strings"

	"ecopontos/internal/assets"
	"ecopontos/internal/store"
	"ecopontos/pkg/types"

	"github.com/sirupsen/logrus"
)

type Service struct {
	logger     *logrus.Logger
	categories store.CategoryStore
	points     store.PointStore
	resolver   assets.Resolver
}

func New(logger *logrus.Logger, categories store.CategoryStore, points store.PointStore, resolver assets.Resolver) *Service {
	return &Service{
		logger:     logger,
		categories: categories,
		points:     points,
		resolver:   resolver,
	}
}

// CreatePointInput carries request fields as submitted. Numeric fields
// stay raw strings so every coercion failure surfaces as a field error
// here, before any store call.
type CreatePointInput struct {
	Name       string
	Email      string
	Whatsapp   string
	Latitude   string
	Longitude  string
	City       string
	UF         string
	Categories types.CategorySelection

	// Image is the filename the upload collaborator already stored.
	Image string
}

var whatsappReg = regexp.MustCompile(`^\+?[0-9]+$`)

// CreatePoint validates the input, then writes the point and its
// category associations as one atomic unit. The returned point carries
// the assigned id and the raw stored filename, never a resolved URL.
func (s *Service) CreatePoint(ctx context.Context, input CreatePointInput) (*types.Point, error) {
	fieldErrs := map[string]string{}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		fieldErrs["name"] = "Name is required."
	}

	email := strings.TrimSpace(input.Email)
	if email == "" {
		fieldErrs["email"] = "Email is required."
	} else if _, err := mail.ParseAddress(email); err != nil {
		fieldErrs["email"] = "Enter a valid email address."
	}

	whatsapp := strings.TrimSpace(input.Whatsapp)
	if !whatsappReg.MatchString(whatsapp) {
		fieldErrs["whatsapp"] = "Whatsapp must be a numeric phone number."
	}

	latitude, err := strconv.ParseFloat(strings.TrimSpace(input.Latitude), 64)
	if err != nil {
		fieldErrs["latitude"] = "Latitude must be a number."
	}

	longitude, err := strconv.ParseFloat(strings.TrimSpace(input.Longitude), 64)
	if err != nil {
		fieldErrs["longitude"] = "Longitude must be a number."
	}

	city := strings.TrimSpace(input.City)
	if city == "" {
		fieldErrs["city"] = "City is required."
	}

	uf := strings.TrimSpace(input.UF)
	if uf == "" {
		fieldErrs["uf"] = "UF is required."
	} else if len(uf) > 2 {
		fieldErrs["uf"] = "UF must be at most 2 characters."
	}

	if input.Image == "" {
		fieldErrs["image"] = "Image is required."
	}

	categoryIDs, err := input.Categories.IDs()
	if err != nil {
		var vErr *types.ValidationError
		if errors.As(err, &vErr) {
			for field, message := range vErr.Fields {
				fieldErrs[field] = message
			}
		} else {
			return nil, err
		}
	}

	if len(fieldErrs) > 0 {
		return nil, &types.ValidationError{Fields: fieldErrs}
	}

	point := &types.Point{
		Image:     input.Image,
		Name:      name,
		Email:     email,
		Whatsapp:  whatsapp,
		Latitude:  latitude,
		Longitude: longitude,
		City:      city,
		UF:        uf,
	}

	pointID, err := s.points.CreatePoint(ctx, point, categoryIDs)
	if err != nil {
		return nil, err
	}
	point.ID = pointID

	s.logger.WithFields(logrus.Fields{
		"point_id":   pointID,
		"city":       city,
		"uf":         uf,
		"categories": categoryIDs,
	}).Info("collection point created")

	return point, nil
}

// GetPoint returns the point with its accepted category titles. The
// caller-facing view carries the resolved asset URL.
func (s *Service) GetPoint(ctx context.Context, pointID int64) (*types.PointDetail, error) {
	point, err := s.points.PointByID(ctx, pointID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.CategoriesForPoint(ctx, pointID)
	if err != nil {
		return nil, err
	}

	titles := make([]types.CategoryTitle, 0, len(categories))
	for _, c := range categories {
		titles = append(titles, types.CategoryTitle{Title: c.Title})
	}

	return &types.PointDetail{
		Point:      s.pointView(point),
		Categories: titles,
	}, nil
}

// ListPoints returns distinct points matching uf and city exactly that
// accept at least one of the selected categories. An empty or wholly
// unparseable selection matches nothing, never everything.
func (s *Service) ListPoints(ctx context.Context, uf, city string, selection types.CategorySelection) ([]types.PointView, error) {
	fieldErrs := map[string]string{}
	if strings.TrimSpace(uf) == "" {
		fieldErrs["uf"] = "UF is required."
	}
	if strings.TrimSpace(city) == "" {
		fieldErrs["city"] = "City is required."
	}
	if len(fieldErrs) > 0 {
		return nil, &types.ValidationError{Fields: fieldErrs}
	}

	categoryIDs := selection.FilterIDs()
	if len(categoryIDs) == 0 {
		return []types.PointView{}, nil
	}

	points, err := s.points.PointsByLocation(ctx, uf, city, categoryIDs)
	if err != nil {
		return nil, err
	}

	views := make([]types.PointView, 0, len(points))
	for _, point := range points {
		views = append(views, s.pointView(point))
	}

	return views, nil
}

// ListCategories returns the full catalog with resolved image URLs.
func (s *Service) ListCategories(ctx context.Context) ([]types.CategoryView, error) {
	categories, err := s.categories.AllCategories(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]types.CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, types.CategoryView{
			ID:       c.ID,
			Title:    c.Title,
			ImageURL: s.resolver.Resolve(c.Image),
		})
	}

	return views, nil
}

func (s *Service) pointView(point *types.Point) types.PointView {
	return types.PointView{
		Point:    *point,
		ImageURL: s.resolver.Resolve(point.Image),
	}
}
