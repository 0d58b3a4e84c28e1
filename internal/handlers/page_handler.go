package handlers

import (
	"html/template"
	"net/http"

	"centring-backend/templates"
)

type PageHandler struct {
	templates *template.Template
}

func NewPageHandler() *PageHandler {
	// Parse all templates from embedded filesystem
	templates := template.Must(template.ParseFS(templates.FS, "*.html"))

	return &PageHandler{
		templates: templates,
	}
}

// EntryPage serves the new entry form, the default view
func (h *PageHandler) EntryPage(w http.ResponseWriter, r *http.Request) {
	h.templates.ExecuteTemplate(w, "entry.html", nil)
}

// DatasPage serves the record listing
func (h *PageHandler) DatasPage(w http.ResponseWriter, r *http.Request) {
	h.templates.ExecuteTemplate(w, "datas.html", nil)
}

// LoginPage serves the login form
func (h *PageHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.templates.ExecuteTemplate(w, "login.html", nil)
}

// PhonePage serves the phone number directory
func (h *PageHandler) PhonePage(w http.ResponseWriter, r *http.Request) {
	h.templates.ExecuteTemplate(w, "phoneno.html", nil)
}

// CalculationPage serves the monthly total form
func (h *PageHandler) CalculationPage(w http.ResponseWriter, r *http.Request) {
	h.templates.ExecuteTemplate(w, "calculation.html", nil)
}

// UpdatePage serves the entry edit form
func (h *PageHandler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	h.templates.ExecuteTemplate(w, "update.html", nil)
}

// ProfilePage serves the profile view
func (h *PageHandler) ProfilePage(w http.ResponseWriter, r *http.Request) {
	h.templates.ExecuteTemplate(w, "my_profile.html", nil)
}
