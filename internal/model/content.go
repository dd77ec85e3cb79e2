// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

// Package model defines the record types persisted by the repositories.
package model

// ContentID is the fixed key of the singleton row backing each content page.
const ContentID = "main"

// HomeContent is the editable copy for the home page hero.
type HomeContent struct {
	Headline     string `json:"headline"`
	Subtext      string `json:"subtext"`
	HeroImage    string `json:"heroImage"`
	CTAPrimary   string `json:"ctaPrimary"`
	CTASecondary string `json:"ctaSecondary"`
}

// AboutValue is a single entry in the about page values grid.
type AboutValue struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AboutContent is the editable copy for the about page.
type AboutContent struct {
	Badge             string       `json:"badge"`
	Headline          string       `json:"headline"`
	Subtext           string       `json:"subtext"`
	MissionTitle      string       `json:"missionTitle"`
	MissionParagraph1 string       `json:"missionParagraph1"`
	MissionParagraph2 string       `json:"missionParagraph2"`
	HeroImage         string       `json:"heroImage"`
	MissionImage      string       `json:"missionImage"`
	ValuesTitle       string       `json:"valuesTitle"`
	ValuesSubtext     string       `json:"valuesSubtext"`
	CTATitle          string       `json:"ctaTitle"`
	CTAText           string       `json:"ctaText"`
	Values            []AboutValue `json:"values"`
}

// ContactInfoItem is one row of the contact page info column. Href is null
// for entries that are plain text rather than links.
type ContactInfoItem struct {
	Label string  `json:"label"`
	Value string  `json:"value"`
	Href  *string `json:"href"`
}

// ContactContent is the editable copy for the contact page.
type ContactContent struct {
	Headline    string            `json:"headline"`
	Subtext     string            `json:"subtext"`
	FormTitle   string            `json:"formTitle"`
	ContactInfo []ContactInfoItem `json:"contactInfo"`
}
