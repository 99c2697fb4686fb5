package api

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"skyward/qualmatrix/internal/auth"
	"skyward/qualmatrix/internal/models/dtos"
)

// ImportQualifications handles POST /api/v1/qualifications/import
//
// Accepts either a JSON body {"records": [...]} or a text/csv upload with a
// Callsign,Skill,Status header. Returns the partial-success report.
func (h *Handlers) ImportQualifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized: missing claims")
			return
		}

		records, err := parseImportBody(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		report, err := h.deps.Services.Import.ImportBatch(r.Context(), claims, records)
		if err != nil {
			h.deps.Metrics.ImportBatchesTotal.WithLabelValues("rejected").Inc()
			respondServiceError(w, err)
			return
		}

		h.deps.Metrics.ImportBatchesTotal.WithLabelValues("committed").Inc()
		h.deps.Metrics.ImportRecordsTotal.WithLabelValues("imported").Add(float64(report.Imported))
		h.deps.Metrics.ImportRecordsTotal.WithLabelValues("skipped").Add(float64(report.Skipped))

		respondWithSuccess(w, http.StatusOK, report)
	}
}

// BackfillQualifications handles POST /api/v1/qualifications/backfill
func (h *Handlers) BackfillQualifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized: missing claims")
			return
		}

		inserted, err := h.deps.Services.Import.Backfill(r.Context(), claims)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		h.deps.Metrics.BackfillRowsInserted.Add(float64(inserted))
		respondWithSuccess(w, http.StatusOK, &dtos.BackfillReport{RowsInserted: inserted})
	}
}

func parseImportBody(r *http.Request) ([]dtos.ImportRecord, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.Contains(contentType, "text/csv") {
		return parseImportCSV(r.Body)
	}

	var req dtos.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errInvalidBody
	}
	return req.Records, nil
}

var errInvalidBody = &badRequestError{"invalid request body"}

type badRequestError struct{ msg string }

func (e *badRequestError) Error() string { return e.msg }

// parseImportCSV reads Callsign,Skill,Status rows. Field-level validation
// (emptiness, status values) is the reconciler's job; here we only map the
// tabular shape and skip a header row when present.
func parseImportCSV(body io.Reader) ([]dtos.ImportRecord, error) {
	reader := csv.NewReader(body)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var records []dtos.ImportRecord
	first := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &badRequestError{"malformed CSV: " + err.Error()}
		}

		if first {
			first = false
			if len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "callsign") {
				continue
			}
		}

		rec := dtos.ImportRecord{}
		if len(row) > 0 {
			rec.Callsign = strings.TrimSpace(row[0])
		}
		if len(row) > 1 {
			rec.SkillName = strings.TrimSpace(row[1])
		}
		if len(row) > 2 {
			rec.Status = strings.TrimSpace(row[2])
		}
		records = append(records, rec)
	}

	return records, nil
}
