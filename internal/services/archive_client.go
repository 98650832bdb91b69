package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tolentino2025/FireSafeITM-sub001/internal/models"
)

// archiveSubmission is the wire shape of an archive request: one JSON body
// carrying metadata, serialized snapshots and the base64 document. There is
// no multipart or binary channel.
type archiveSubmission struct {
	UserID          string          `json:"userId"`
	FormTitle       string          `json:"formTitle"`
	PropertyName    string          `json:"propertyName"`
	PropertyAddress string          `json:"propertyAddress"`
	InspectionDate  string          `json:"inspectionDate"`
	FormData        string          `json:"formData"`
	Signatures      string          `json:"signatures"`
	PDFData         string          `json:"pdfData"`
	Status          string          `json:"status"`
	GeneralInfo     json.RawMessage `json:"general_information"`
}

// archiveResponse is the success payload of either archive endpoint. The
// already flag signals an idempotent replay.
type archiveResponse struct {
	Record  models.ArchivedReport `json:"record"`
	Already bool                  `json:"already"`
}

// HTTPArchiveStore is an ArchiveStore backed by a remote archived-reports
// service, for deployments where this process acts as the workflow host and
// a separate record store owns persistence.
type HTTPArchiveStore struct {
	BaseURL string
	Client  *http.Client
}

// CreateArchivedReport posts to the archived-reports collection endpoint.
func (s *HTTPArchiveStore) CreateArchivedReport(ctx context.Context, rec *models.ArchivedReport) (*models.ArchivedReport, bool, error) {
	return s.post(ctx, s.BaseURL+"/api/reports/archived", rec)
}

// ArchiveInspection posts to the endpoint scoped by the known inspection id.
func (s *HTTPArchiveStore) ArchiveInspection(ctx context.Context, inspectionID string, rec *models.ArchivedReport) (*models.ArchivedReport, bool, error) {
	return s.post(ctx, fmt.Sprintf("%s/api/inspections/%s/archive", s.BaseURL, inspectionID), rec)
}

func (s *HTTPArchiveStore) post(ctx context.Context, url string, rec *models.ArchivedReport) (*models.ArchivedReport, bool, error) {
	body, err := json.Marshal(archiveSubmission{
		UserID:          rec.UserID,
		FormTitle:       rec.FormTitle,
		PropertyName:    rec.PropertyName,
		PropertyAddress: rec.PropertyAddress,
		InspectionDate:  rec.InspectionDate,
		FormData:        rec.FormData,
		Signatures:      rec.Signatures,
		PDFData:         rec.PDFData,
		Status:          "archived",
		GeneralInfo:     json.RawMessage(rec.GeneralInfo.JSON),
	})
	if err != nil {
		return nil, false, &ArchiveError{Message: genericArchiveMessage, Code: "E_ENCODE"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, false, &ArchiveError{Message: genericArchiveMessage}
	}
	req.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, false, &ArchiveError{Message: genericArchiveMessage}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, false, DecodeErrorBody(respBody)
	}

	var parsed archiveResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, false, &ArchiveError{Message: genericArchiveMessage, Code: "E_DECODE"}
	}
	return &parsed.Record, parsed.Already, nil
}
