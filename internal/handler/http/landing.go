// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/private-vpn/internal/app"
	"github.com/MKhiriev/private-vpn/internal/logger"
)

//go:embed templates/index.html
var templatesFS embed.FS

var landingTemplate = template.Must(
	template.New("index.html").
		Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
		ParseFS(templatesFS, "templates/index.html"),
)

func (h *Handler) landingPage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := landingTemplate.Execute(&buf, app.LandingPage()); err != nil {
		logger.FromRequest(r).Err(err).Msg("rendering landing page failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
