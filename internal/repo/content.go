// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/goshawklogistics/goshawk-go/internal/model"
)

// Content serves the three singleton page documents (home, about, contact).
// db may be nil, in which case reads start at the JSON documents and writes
// land there too.
type Content struct {
	db      *sql.DB
	dataDir string
	log     *slog.Logger
}

// NewContent creates a content repository.
func NewContent(db *sql.DB, dataDir string, log *slog.Logger) *Content {
	return &Content{db: db, dataDir: dataDir, log: log}
}

// Home returns the home page content. Reads never fail; the chain terminates
// at the built-in copy.
func (r *Content) Home(ctx context.Context) model.HomeContent {
	if r.db != nil {
		c, err := r.homeFromDB(ctx)
		if err == nil {
			return c
		}
		if !errors.Is(err, sql.ErrNoRows) {
			r.log.Warn("home content query failed, using fallback", "error", err)
		}
	}
	var c model.HomeContent
	if err := readDocument(filepath.Join(r.dataDir, homeFile), &c); err == nil {
		return c
	}
	return DefaultHomeContent()
}

// SaveHome persists the home page content to the active backend: the
// database when one is configured, the JSON document otherwise. Writes have
// no fallback; a failed database write surfaces to the caller so the admin
// panel reports the outage instead of losing the edit to a shadowed file.
func (r *Content) SaveHome(ctx context.Context, c model.HomeContent) error {
	if r.db != nil {
		return r.saveHomeDB(ctx, c)
	}
	return writeDocument(filepath.Join(r.dataDir, homeFile), c)
}

func (r *Content) homeFromDB(ctx context.Context) (model.HomeContent, error) {
	var c model.HomeContent
	err := r.db.QueryRowContext(ctx, `
		SELECT headline, subtext, COALESCE(hero_image, ''), cta_primary, cta_secondary
		FROM home_content WHERE id = $1`, model.ContentID).
		Scan(&c.Headline, &c.Subtext, &c.HeroImage, &c.CTAPrimary, &c.CTASecondary)
	if err != nil {
		return model.HomeContent{}, fmt.Errorf("querying home content: %w", err)
	}
	return c, nil
}

func (r *Content) saveHomeDB(ctx context.Context, c model.HomeContent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO home_content (id, headline, subtext, hero_image, cta_primary, cta_secondary, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			headline = EXCLUDED.headline,
			subtext = EXCLUDED.subtext,
			hero_image = EXCLUDED.hero_image,
			cta_primary = EXCLUDED.cta_primary,
			cta_secondary = EXCLUDED.cta_secondary,
			updated_at = CURRENT_TIMESTAMP`,
		model.ContentID, c.Headline, c.Subtext, c.HeroImage, c.CTAPrimary, c.CTASecondary)
	if err != nil {
		return fmt.Errorf("upserting home content: %w", err)
	}
	return nil
}

// About returns the about page content.
func (r *Content) About(ctx context.Context) model.AboutContent {
	if r.db != nil {
		c, err := r.aboutFromDB(ctx)
		if err == nil {
			return c
		}
		if !errors.Is(err, sql.ErrNoRows) {
			r.log.Warn("about content query failed, using fallback", "error", err)
		}
	}
	var c model.AboutContent
	if err := readDocument(filepath.Join(r.dataDir, aboutFile), &c); err == nil {
		return c
	}
	return DefaultAboutContent()
}

// SaveAbout persists the about page content.
func (r *Content) SaveAbout(ctx context.Context, c model.AboutContent) error {
	if r.db != nil {
		return r.saveAboutDB(ctx, c)
	}
	return writeDocument(filepath.Join(r.dataDir, aboutFile), c)
}

func (r *Content) aboutFromDB(ctx context.Context) (model.AboutContent, error) {
	var (
		c         model.AboutContent
		valuesRaw []byte
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT badge, headline, subtext, mission_title, mission_paragraph_1,
			mission_paragraph_2, COALESCE(hero_image, ''), COALESCE(mission_image, ''),
			values_title, values_subtext, cta_title, cta_text, "values"
		FROM about_content WHERE id = $1`, model.ContentID).
		Scan(&c.Badge, &c.Headline, &c.Subtext, &c.MissionTitle, &c.MissionParagraph1,
			&c.MissionParagraph2, &c.HeroImage, &c.MissionImage,
			&c.ValuesTitle, &c.ValuesSubtext, &c.CTATitle, &c.CTAText, &valuesRaw)
	if err != nil {
		return model.AboutContent{}, fmt.Errorf("querying about content: %w", err)
	}
	if err := json.Unmarshal(valuesRaw, &c.Values); err != nil {
		return model.AboutContent{}, fmt.Errorf("decoding about values: %w", err)
	}
	return c, nil
}

func (r *Content) saveAboutDB(ctx context.Context, c model.AboutContent) error {
	values, err := json.Marshal(c.Values)
	if err != nil {
		return fmt.Errorf("encoding about values: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO about_content (id, badge, headline, subtext, mission_title,
			mission_paragraph_1, mission_paragraph_2, hero_image, mission_image,
			values_title, values_subtext, cta_title, cta_text, "values", updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			badge = EXCLUDED.badge,
			headline = EXCLUDED.headline,
			subtext = EXCLUDED.subtext,
			mission_title = EXCLUDED.mission_title,
			mission_paragraph_1 = EXCLUDED.mission_paragraph_1,
			mission_paragraph_2 = EXCLUDED.mission_paragraph_2,
			hero_image = EXCLUDED.hero_image,
			mission_image = EXCLUDED.mission_image,
			values_title = EXCLUDED.values_title,
			values_subtext = EXCLUDED.values_subtext,
			cta_title = EXCLUDED.cta_title,
			cta_text = EXCLUDED.cta_text,
			"values" = EXCLUDED."values",
			updated_at = CURRENT_TIMESTAMP`,
		model.ContentID, c.Badge, c.Headline, c.Subtext, c.MissionTitle,
		c.MissionParagraph1, c.MissionParagraph2, c.HeroImage, c.MissionImage,
		c.ValuesTitle, c.ValuesSubtext, c.CTATitle, c.CTAText, values)
	if err != nil {
		return fmt.Errorf("upserting about content: %w", err)
	}
	return nil
}

// Contact returns the contact page content.
func (r *Content) Contact(ctx context.Context) model.ContactContent {
	if r.db != nil {
		c, err := r.contactFromDB(ctx)
		if err == nil {
			return c
		}
		if !errors.Is(err, sql.ErrNoRows) {
			r.log.Warn("contact content query failed, using fallback", "error", err)
		}
	}
	var c model.ContactContent
	if err := readDocument(filepath.Join(r.dataDir, contactFile), &c); err == nil {
		return c
	}
	return DefaultContactContent()
}

// SaveContact persists the contact page content.
func (r *Content) SaveContact(ctx context.Context, c model.ContactContent) error {
	if r.db != nil {
		return r.saveContactDB(ctx, c)
	}
	return writeDocument(filepath.Join(r.dataDir, contactFile), c)
}

func (r *Content) contactFromDB(ctx context.Context) (model.ContactContent, error) {
	var (
		c       model.ContactContent
		infoRaw []byte
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT headline, subtext, form_title, contact_info
		FROM contact_content WHERE id = $1`, model.ContentID).
		Scan(&c.Headline, &c.Subtext, &c.FormTitle, &infoRaw)
	if err != nil {
		return model.ContactContent{}, fmt.Errorf("querying contact content: %w", err)
	}
	if err := json.Unmarshal(infoRaw, &c.ContactInfo); err != nil {
		return model.ContactContent{}, fmt.Errorf("decoding contact info: %w", err)
	}
	return c, nil
}

func (r *Content) saveContactDB(ctx context.Context, c model.ContactContent) error {
	info, err := json.Marshal(c.ContactInfo)
	if err != nil {
		return fmt.Errorf("encoding contact info: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO contact_content (id, headline, subtext, form_title, contact_info, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			headline = EXCLUDED.headline,
			subtext = EXCLUDED.subtext,
			form_title = EXCLUDED.form_title,
			contact_info = EXCLUDED.contact_info,
			updated_at = CURRENT_TIMESTAMP`,
		model.ContentID, c.Headline, c.Subtext, c.FormTitle, info)
	if err != nil {
		return fmt.Errorf("upserting contact content: %w", err)
	}
	return nil
}
