// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// Form submissions are accepted and logged with a reference id, not
// persisted. Dispatch picks them up from the log pipeline; CRM integration
// is handled downstream.

type quoteForm struct {
	Name             string `json:"name"`
	Company          string `json:"company"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	PickupLocation   string `json:"pickupLocation"`
	DeliveryLocation string `json:"deliveryLocation"`
	EquipmentType    string `json:"equipmentType"`
	Commodity        string `json:"commodity"`
	Weight           string `json:"weight"`
	Notes            string `json:"notes"`
}

type contactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type carrierForm struct {
	MCNumber    string `json:"mcNumber"`
	DOTNumber   string `json:"dotNumber"`
	CompanyName string `json:"companyName"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Lanes       string `json:"lanes"`
	Equipment   string `json:"equipment"`
}

// SubmitQuote handles POST /api/quote.
func (h *Handler) SubmitQuote(w http.ResponseWriter, r *http.Request) {
	var form quoteForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil ||
		form.Name == "" || form.Email == "" || form.PickupLocation == "" || form.DeliveryLocation == "" {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to submit quote request"})
		return
	}

	h.log.Info("quote request received",
		"reference", uuid.NewString(),
		"company", form.Company,
		"equipment", form.EquipmentType,
		"pickup", form.PickupLocation,
		"delivery", form.DeliveryLocation)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Quote request submitted successfully"})
}

// SubmitContact handles POST /api/contact.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var form contactForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil ||
		form.Name == "" || form.Email == "" || form.Message == "" {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to send message"})
		return
	}

	h.log.Info("contact form submitted",
		"reference", uuid.NewString(),
		"name", form.Name)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Message sent successfully"})
}

// SubmitCarrier handles POST /api/carrier.
func (h *Handler) SubmitCarrier(w http.ResponseWriter, r *http.Request) {
	var form carrierForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil ||
		form.MCNumber == "" || form.DOTNumber == "" || form.Email == "" {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to submit carrier application"})
		return
	}

	h.log.Info("carrier application received",
		"reference", uuid.NewString(),
		"company", form.CompanyName,
		"mc", form.MCNumber,
		"dot", form.DOTNumber)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Carrier application submitted successfully"})
}
