// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/goshawklogistics/goshawk-go/internal/model"
)

// Services stores the freight service catalog. Collection writes go to the
// database when one is configured; a failed database write surfaces as an
// error rather than silently landing on disk, unlike the singleton content
// documents.
type Services struct {
	db      *sql.DB
	dataDir string
	log     *slog.Logger
}

// NewServices creates a services repository.
func NewServices(db *sql.DB, dataDir string, log *slog.Logger) *Services {
	return &Services{db: db, dataDir: dataDir, log: log}
}

// All returns every service, falling back to the JSON document and then the
// built-in catalog.
func (r *Services) All(ctx context.Context) []model.Service {
	if r.db != nil {
		list, err := r.allFromDB(ctx)
		if err == nil {
			return list
		}
		r.log.Warn("services query failed, using fallback", "error", err)
	}
	return r.allFromFile()
}

func (r *Services) allFromFile() []model.Service {
	var list []model.Service
	if err := readDocument(filepath.Join(r.dataDir, servicesFile), &list); err == nil {
		return list
	}
	return DefaultServices()
}

// Create inserts a service, replacing any existing record with the same slug.
func (r *Services) Create(ctx context.Context, s model.Service) error {
	if r.db != nil {
		return r.upsertDB(ctx, s)
	}
	list := r.allFromFile()
	replaced := false
	for i := range list {
		if list[i].Slug == s.Slug {
			list[i] = s
			replaced = true
			break
		}
	}
	if !replaced {
		// Newest first, matching the database ordering.
		list = append([]model.Service{s}, list...)
	}
	return writeDocument(filepath.Join(r.dataDir, servicesFile), list)
}

// Update replaces an existing service. Returns ErrNotFound when no service
// with the given slug exists.
func (r *Services) Update(ctx context.Context, s model.Service) error {
	if r.db != nil {
		if _, err := r.bySlugDB(ctx, s.Slug); err != nil {
			return err
		}
		return r.upsertDB(ctx, s)
	}
	list := r.allFromFile()
	for i := range list {
		if list[i].Slug == s.Slug {
			list[i] = s
			return writeDocument(filepath.Join(r.dataDir, servicesFile), list)
		}
	}
	return fmt.Errorf("%w: service %q", ErrNotFound, s.Slug)
}

// Delete removes the service with the given slug. Deleting a slug that does
// not exist is not an error.
func (r *Services) Delete(ctx context.Context, slug string) error {
	if r.db != nil {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE slug = $1`, slug); err != nil {
			return fmt.Errorf("deleting service: %w", err)
		}
		return nil
	}
	list := r.allFromFile()
	kept := list[:0]
	for _, s := range list {
		if s.Slug != slug {
			kept = append(kept, s)
		}
	}
	return writeDocument(filepath.Join(r.dataDir, servicesFile), kept)
}

func (r *Services) allFromDB(ctx context.Context) ([]model.Service, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT slug, title, short_description, description, icon, image, features, benefits
		FROM services ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying services: %w", err)
	}
	defer rows.Close()

	list := []model.Service{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating services: %w", err)
	}
	return list, nil
}

func (r *Services) bySlugDB(ctx context.Context, slug string) (model.Service, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT slug, title, short_description, description, icon, image, features, benefits
		FROM services WHERE slug = $1`, slug)
	s, err := scanService(row)
	if err == sql.ErrNoRows {
		return model.Service{}, fmt.Errorf("%w: service %q", ErrNotFound, slug)
	}
	return s, err
}

func (r *Services) upsertDB(ctx context.Context, s model.Service) error {
	features, err := json.Marshal(s.Features)
	if err != nil {
		return fmt.Errorf("encoding features: %w", err)
	}
	benefits, err := json.Marshal(s.Benefits)
	if err != nil {
		return fmt.Errorf("encoding benefits: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO services (slug, title, short_description, description, icon, image, features, benefits, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CURRENT_TIMESTAMP)
		ON CONFLICT (slug) DO UPDATE SET
			title = EXCLUDED.title,
			short_description = EXCLUDED.short_description,
			description = EXCLUDED.description,
			icon = EXCLUDED.icon,
			image = EXCLUDED.image,
			features = EXCLUDED.features,
			benefits = EXCLUDED.benefits,
			updated_at = CURRENT_TIMESTAMP`,
		s.Slug, s.Title, s.ShortDescription, s.Description, s.Icon, s.Image, features, benefits)
	if err != nil {
		return fmt.Errorf("upserting service: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanService(row rowScanner) (model.Service, error) {
	var (
		s           model.Service
		featuresRaw []byte
		benefitsRaw []byte
	)
	err := row.Scan(&s.Slug, &s.Title, &s.ShortDescription, &s.Description,
		&s.Icon, &s.Image, &featuresRaw, &benefitsRaw)
	if err != nil {
		return model.Service{}, err
	}
	if err := json.Unmarshal(featuresRaw, &s.Features); err != nil {
		return model.Service{}, fmt.Errorf("decoding features: %w", err)
	}
	if err := json.Unmarshal(benefitsRaw, &s.Benefits); err != nil {
		return model.Service{}, fmt.Errorf("decoding benefits: %w", err)
	}
	return s, nil
}

// Testimonials stores customer testimonials. There is no built-in default
// set; the empty chain yields an empty list.
type Testimonials struct {
	db      *sql.DB
	dataDir string
	log     *slog.Logger
}

// NewTestimonials creates a testimonials repository.
func NewTestimonials(db *sql.DB, dataDir string, log *slog.Logger) *Testimonials {
	return &Testimonials{db: db, dataDir: dataDir, log: log}
}

// All returns every testimonial.
func (r *Testimonials) All(ctx context.Context) []model.Testimonial {
	if r.db != nil {
		list, err := r.allFromDB(ctx)
		if err == nil {
			return list
		}
		r.log.Warn("testimonials query failed, using fallback", "error", err)
	}
	return r.allFromFile()
}

func (r *Testimonials) allFromFile() []model.Testimonial {
	var list []model.Testimonial
	if err := readDocument(filepath.Join(r.dataDir, testimonialsFile), &list); err == nil {
		return list
	}
	return []model.Testimonial{}
}

// Create inserts a testimonial, replacing any existing record with the same id.
func (r *Testimonials) Create(ctx context.Context, t model.Testimonial) error {
	if r.db != nil {
		return r.upsertDB(ctx, t)
	}
	list := r.allFromFile()
	replaced := false
	for i := range list {
		if list[i].ID == t.ID {
			list[i] = t
			replaced = true
			break
		}
	}
	if !replaced {
		// Newest first, matching the database ordering.
		list = append([]model.Testimonial{t}, list...)
	}
	return writeDocument(filepath.Join(r.dataDir, testimonialsFile), list)
}

// Update replaces an existing testimonial. Returns ErrNotFound when no
// testimonial with the given id exists.
func (r *Testimonials) Update(ctx context.Context, t model.Testimonial) error {
	if r.db != nil {
		var exists bool
		err := r.db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM testimonials WHERE id = $1)`, t.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("checking testimonial: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: testimonial %q", ErrNotFound, t.ID)
		}
		return r.upsertDB(ctx, t)
	}
	list := r.allFromFile()
	for i := range list {
		if list[i].ID == t.ID {
			list[i] = t
			return writeDocument(filepath.Join(r.dataDir, testimonialsFile), list)
		}
	}
	return fmt.Errorf("%w: testimonial %q", ErrNotFound, t.ID)
}

// Delete removes the testimonial with the given id. Deleting an id that does
// not exist is not an error.
func (r *Testimonials) Delete(ctx context.Context, id string) error {
	if r.db != nil {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id); err != nil {
			return fmt.Errorf("deleting testimonial: %w", err)
		}
		return nil
	}
	list := r.allFromFile()
	kept := list[:0]
	for _, t := range list {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return writeDocument(filepath.Join(r.dataDir, testimonialsFile), kept)
}

func (r *Testimonials) allFromDB(ctx context.Context) ([]model.Testimonial, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, role, company, content, rating
		FROM testimonials ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying testimonials: %w", err)
	}
	defer rows.Close()

	list := []model.Testimonial{}
	for rows.Next() {
		var t model.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Role, &t.Company, &t.Content, &t.Rating); err != nil {
			return nil, fmt.Errorf("scanning testimonial: %w", err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating testimonials: %w", err)
	}
	return list, nil
}

func (r *Testimonials) upsertDB(ctx context.Context, t model.Testimonial) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO testimonials (id, name, role, company, content, rating, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			role = EXCLUDED.role,
			company = EXCLUDED.company,
			content = EXCLUDED.content,
			rating = EXCLUDED.rating,
			updated_at = CURRENT_TIMESTAMP`,
		t.ID, t.Name, t.Role, t.Company, t.Content, t.Rating)
	if err != nil {
		return fmt.Errorf("upserting testimonial: %w", err)
	}
	return nil
}
