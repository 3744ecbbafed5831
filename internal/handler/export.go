// Package handler — export.go implements GET /api/rsvps/export.
// Returns the full response list as a flat table.
// Supports content negotiation via ?format=csv (CSV attachment) or default (JSON).
package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/mvdcruz/invitation-rsvp/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
// Order matches the original export: guest identity first, then status, then notes.
var csvHeaders = []string{"Name", "Email", "Contact", "Attending", "Notes", "Date"}

// GetExport handles GET /api/rsvps/export.
// Use ?format=csv to receive a CSV download; default is JSON rows.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	rsvps, err := s.rsvps.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		s.writeCSV(w, rsvps)
		return
	}
	s.writeJSON(w, http.StatusOK, rsvpsToResponse(rsvps))
}

// writeCSV encodes the records as a CSV attachment.
// encoding/csv handles quoting and embedded separators, so the row and
// column counts hold for any field content.
func (s *Server) writeCSV(w http.ResponseWriter, rsvps []domain.Rsvp) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck — writes to bytes.Buffer never fail.
	cw.Write(csvHeaders)
	for _, rec := range rsvps {
		//nolint:errcheck
		cw.Write(csvRecord(rec))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+s.csvFilename+`.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.log.Error("write csv response", "error", err)
	}
}

// csvRecord encodes one record as a flat string slice matching csvHeaders.
func csvRecord(rec domain.Rsvp) []string {
	attending := "No"
	if rec.Attending {
		attending = "Yes"
	}
	return []string{
		rec.Name,
		rec.Email,
		rec.Contact,
		attending,
		rec.Dietary,
		formatTimestamp(rec.CreatedAt),
	}
}
