package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/handlers"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/middleware"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/models"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/pdf"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/schema"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/services"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/types"
	"github.com/tolentino2025/FireSafeITM-sub001/tests/helpers"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Auto-migrate models
	err = db.AutoMigrate(
		&models.Company{},
		&models.Inspection{},
		&models.ArchivedReport{},
		&models.FormDraft{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// setupApp wires the full route surface against the given database, matching
// the production wiring minus metrics and swagger.
func setupApp(db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			if ce, ok := err.(*types.CustomError); ok {
				code = ce.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"status":  code,
				"message": err.Error(),
				"ok":      false,
			})
		},
	})

	registry := schema.DefaultRegistry()
	cache := services.NewReportCache()

	schemaHandler := &handlers.SchemaHandler{Registry: registry}
	inspectionHandler := &handlers.InspectionHandler{DB: db, Registry: registry}
	draftHandler := &handlers.DraftHandler{DB: db}
	archiveHandler := &handlers.ArchiveHandler{
		DB:       db,
		Registry: registry,
		Renderer: pdf.NewTemplateRenderer(),
		Store:    &services.GormArchiveStore{DB: db},
		Cache:    cache,
		Notifier: services.NopNotifier{},
	}

	api := app.Group("/api")
	api.Get("/schemas", schemaHandler.ListSchemas)
	api.Get("/schemas/:formId", schemaHandler.GetSchema)
	api.Post("/schemas/:formId/progress", schemaHandler.EvaluateProgress)

	inspections := api.Group("/inspections", middleware.RequireUser())
	inspections.Post("/", inspectionHandler.CreateInspection)
	inspections.Patch("/:id", inspectionHandler.UpdateInspection)
	inspections.Get("/:id", inspectionHandler.GetInspection)
	inspections.Post("/:id/forms/:formId/complete", inspectionHandler.CompleteSubForm)
	inspections.Post("/:id/archive", archiveHandler.ArchiveInspection)

	reports := api.Group("/reports", middleware.RequireUser())
	reports.Post("/archived", archiveHandler.ArchiveReport)
	reports.Get("/archived", archiveHandler.ListArchivedReports)
	reports.Get("/archived/:id", archiveHandler.GetArchivedReport)

	drafts := api.Group("/drafts")
	drafts.Put("/:key", draftHandler.SaveDraft)
	drafts.Get("/:key", draftHandler.GetDraft)
	drafts.Delete("/:key", draftHandler.DeleteDraft)

	return app
}

// sprinklerWeeklyBody returns an archive submission that passes every
// visible required field of the weekly sprinkler checklist.
func sprinklerWeeklyBody() map[string]interface{} {
	values := helpers.CompletedFormValues()
	values["gauges_condition"] = "pass"
	values["gauges_pressure_normal"] = "pass"

	return map[string]interface{}{
		"formId":          schema.FormSprinkler,
		"frequency":       "weekly",
		"sessionKey":      "sess-1",
		"propertyName":    "Depósito Central",
		"propertyAddress": "Av. Industrial, 1200",
		"values":          values,
		"inspectorSignature": map[string]interface{}{
			"signerName":     "Carlos Pereira",
			"signerDate":     "2024-03-15",
			"signatureImage": "data:image/png;base64,iVBORw0KGgo=",
		},
		"clientSignature": map[string]interface{}{
			"signerName":     "Ana Lima",
			"signerDate":     "2024-03-15",
			"signatureImage": "data:image/png;base64,iVBORw0KGgo=",
		},
	}
}

// TestListSchemas tests the GET /api/schemas endpoint
func TestListSchemas(t *testing.T) {
	app := setupApp(setupTestDB(t))

	req := httptest.NewRequest("GET", "/api/schemas", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var schemas []schema.FormSchema
	helpers.ParseJSON(t, resp, &schemas)
	if len(schemas) != 4 {
		t.Errorf("Expected 4 schemas, got %d", len(schemas))
	}

	// Filter by id
	req = httptest.NewRequest("GET", "/api/schemas?ids="+schema.FormFirePump, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.ParseJSON(t, resp, &schemas)
	if len(schemas) != 1 || schemas[0].ID != schema.FormFirePump {
		t.Errorf("Expected only the fire pump schema, got %d", len(schemas))
	}
}

// TestEvaluateProgress tests POST /api/schemas/:formId/progress
func TestEvaluateProgress(t *testing.T) {
	app := setupApp(setupTestDB(t))

	type evaluation struct {
		Progress int `json:"progress"`
		Sections []struct {
			ID         string `json:"id"`
			Visible    bool   `json:"visible"`
			CanAdvance bool   `json:"canAdvance"`
		} `json:"sections"`
	}

	evaluate := func(payload map[string]interface{}) evaluation {
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest("POST", "/api/schemas/"+schema.FormSprinkler+"/progress", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("Failed to execute request: %v", err)
		}
		helpers.AssertStatus(t, resp, 200)
		var result evaluation
		helpers.ParseJSON(t, resp, &result)
		return result
	}

	// Empty weekly session: the frequency-hidden milestones already count as
	// satisfied, the visible ones do not.
	result := evaluate(map[string]interface{}{"frequency": "weekly"})
	if result.Progress != 50 {
		t.Errorf("Empty weekly session: expected 50, got %d", result.Progress)
	}
	byID := make(map[string]struct {
		Visible    bool
		CanAdvance bool
	})
	for _, s := range result.Sections {
		byID[s.ID] = struct {
			Visible    bool
			CanAdvance bool
		}{s.Visible, s.CanAdvance}
	}
	if got := byID["gauges-weekly"]; !got.Visible || got.CanAdvance {
		t.Errorf("gauges-weekly should be visible and blocked, got %+v", got)
	}
	if got := byID["sprinklers-annual"]; got.Visible || !got.CanAdvance {
		t.Errorf("sprinklers-annual should be hidden and permissive, got %+v", got)
	}

	// Fully populated session converges to 100 and unblocks the section.
	result = evaluate(map[string]interface{}{
		"frequency": "weekly",
		"values": map[string]interface{}{
			"property_name":          "Depósito Central",
			"property_address":       "Av. Industrial, 1200",
			"inspector_name":         "Carlos Pereira",
			"gauges_condition":       "pass",
			"gauges_pressure_normal": "pass",
		},
		"completedSections": []string{"gauges-weekly"},
		"inspectorSignature": map[string]interface{}{
			"signerName":     "Carlos Pereira",
			"signatureImage": "data:image/png;base64,iVBORw0KGgo=",
		},
		"clientSignature": map[string]interface{}{
			"signerName":     "Ana Lima",
			"signatureImage": "data:image/png;base64,iVBORw0KGgo=",
		},
	})
	if result.Progress != 100 {
		t.Errorf("Complete weekly session: expected 100, got %d", result.Progress)
	}
	for _, s := range result.Sections {
		if s.ID == "gauges-weekly" && !s.CanAdvance {
			t.Error("Populated gauges section should advance")
		}
	}

	// Unknown schema id is a 404.
	req := httptest.NewRequest("POST", "/api/schemas/no-such-form/progress", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 404)
}

// TestGetSchemaNotFound tests 404 behavior of GET /api/schemas/:formId
func TestGetSchemaNotFound(t *testing.T) {
	app := setupApp(setupTestDB(t))

	req := httptest.NewRequest("GET", "/api/schemas/no-such-form", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 404)
}

// TestCreateInspection tests POST /api/inspections
func TestCreateInspection(t *testing.T) {
	app := setupApp(setupTestDB(t))

	body, _ := json.Marshal(map[string]interface{}{
		"companyId":       "co-1",
		"facilityName":    "Depósito Central",
		"address":         "Av. Industrial, 1200",
		"selectedFormIds": []string{schema.FormSprinkler, schema.FormFirePump},
	})
	req := httptest.NewRequest("POST", "/api/inspections/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "user-1")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var created struct {
		OK bool   `json:"ok"`
		ID string `json:"id"`
	}
	helpers.ParseJSON(t, resp, &created)
	if !created.OK || created.ID == "" {
		t.Fatalf("Unexpected create response: %+v", created)
	}

	// The created row is readable.
	req = httptest.NewRequest("GET", "/api/inspections/"+created.ID, nil)
	req.Header.Set("X-User-Id", "user-1")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)
}

// TestCreateInspectionAcceptsSingleFormID verifies lenient list decoding:
// a scalar selectedFormIds still parses as a one-element selection.
func TestCreateInspectionAcceptsSingleFormID(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	body, _ := json.Marshal(map[string]interface{}{
		"companyId":       "co-1",
		"facilityName":    "Depósito Central",
		"address":         "Av. Industrial, 1200",
		"selectedFormIds": schema.FormWaterTank,
	})
	req := httptest.NewRequest("POST", "/api/inspections/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "user-1")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var created struct {
		ID string `json:"id"`
	}
	helpers.ParseJSON(t, resp, &created)

	var insp models.Inspection
	if err := db.Where("id = ?", created.ID).First(&insp).Error; err != nil {
		t.Fatalf("Created inspection not found: %v", err)
	}
	var selected []string
	if err := insp.SelectedFormIDs.Decode(&selected); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(selected) != 1 || selected[0] != schema.FormWaterTank {
		t.Errorf("Expected one-element selection, got %v", selected)
	}
}

// TestCreateInspectionRejections tests the create guard rails
func TestCreateInspectionRejections(t *testing.T) {
	app := setupApp(setupTestDB(t))

	// Missing identity header
	body, _ := json.Marshal(map[string]interface{}{
		"companyId":    "co-1",
		"facilityName": "Depósito Central",
		"address":      "Av. Industrial, 1200",
	})
	req := httptest.NewRequest("POST", "/api/inspections/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	helpers.AssertStatus(t, resp, 400)

	// Unknown form id
	body, _ = json.Marshal(map[string]interface{}{
		"companyId":       "co-1",
		"facilityName":    "Depósito Central",
		"address":         "Av. Industrial, 1200",
		"selectedFormIds": []string{"no-such-form"},
	})
	req = httptest.NewRequest("POST", "/api/inspections/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "user-1")
	resp, _ = app.Test(req)
	helpers.AssertStatus(t, resp, 400)

	// Missing parent fields; the message names them all
	body, _ = json.Marshal(map[string]interface{}{})
	req = httptest.NewRequest("POST", "/api/inspections/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "user-1")
	resp, _ = app.Test(req)
	helpers.AssertStatus(t, resp, 400)
	env := helpers.ParseEnvelope(t, resp)
	for _, field := range []string{"companyId", "facilityName", "address"} {
		if !bytes.Contains([]byte(env.Message), []byte(field)) {
			t.Errorf("Message should name %s: %s", field, env.Message)
		}
	}
}

// TestCompleteSubFormProgress tests POST /api/inspections/:id/forms/:formId/complete
func TestCompleteSubFormProgress(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	companyID := helpers.CreateTestCompany(t, db, "FireSafe Ltda")
	selected := []string{schema.FormSprinkler, schema.FormStandpipe, schema.FormFirePump, schema.FormWaterTank}
	inspectionID := helpers.CreateTestInspection(t, db, "user-1", companyID, selected)

	req := httptest.NewRequest("POST", "/api/inspections/"+inspectionID+"/forms/"+schema.FormSprinkler+"/complete", nil)
	req.Header.Set("X-User-Id", "user-1")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var result struct {
		OK       bool   `json:"ok"`
		Progress int    `json:"progress"`
		Status   string `json:"status"`
	}
	helpers.ParseJSON(t, resp, &result)
	if result.Progress != 25 || result.Status != "draft" {
		t.Errorf("1 of 4: expected 25/draft, got %d/%s", result.Progress, result.Status)
	}

	for _, formID := range selected[1:] {
		req = httptest.NewRequest("POST", "/api/inspections/"+inspectionID+"/forms/"+formID+"/complete", nil)
		req.Header.Set("X-User-Id", "user-1")
		resp, err = app.Test(req)
		if err != nil {
			t.Fatalf("Failed to execute request: %v", err)
		}
	}
	helpers.ParseJSON(t, resp, &result)
	if result.Progress != 100 || result.Status != "completed" {
		t.Errorf("All complete: expected 100/completed, got %d/%s", result.Progress, result.Status)
	}

	// A form outside the selection is rejected and never counted, so the
	// persisted percentage cannot leave [0,100].
	req = httptest.NewRequest("POST", "/api/inspections/"+inspectionID+"/forms/no-such-form/complete", nil)
	req.Header.Set("X-User-Id", "user-1")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 404)

	// A valid replay on the completed inspection is a no-op.
	req = httptest.NewRequest("POST", "/api/inspections/"+inspectionID+"/forms/"+schema.FormSprinkler+"/complete", nil)
	req.Header.Set("X-User-Id", "user-1")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.ParseJSON(t, resp, &result)
	if result.Progress != 100 || result.Status != "completed" {
		t.Errorf("Replay: expected 100/completed, got %d/%s", result.Progress, result.Status)
	}

	var insp models.Inspection
	if err := db.Where("id = ?", inspectionID).First(&insp).Error; err != nil {
		t.Fatalf("Inspection not found: %v", err)
	}
	if insp.Progress != 100 {
		t.Errorf("Persisted progress must stay at 100, got %d", insp.Progress)
	}
}

// TestUpdateInspectionRejectsUnknownFormID mirrors the create-path guard on
// the patch path.
func TestUpdateInspectionRejectsUnknownFormID(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	companyID := helpers.CreateTestCompany(t, db, "FireSafe Ltda")
	inspectionID := helpers.CreateTestInspection(t, db, "user-1", companyID, []string{schema.FormSprinkler})

	body, _ := json.Marshal(map[string]interface{}{
		"companyId":       companyID,
		"facilityName":    "Depósito Central",
		"address":         "Av. Industrial, 1200",
		"selectedFormIds": []string{"no-such-form"},
	})
	req := httptest.NewRequest("PATCH", "/api/inspections/"+inspectionID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "user-1")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 400)

	// The stored selection is untouched.
	var insp models.Inspection
	if err := db.Where("id = ?", inspectionID).First(&insp).Error; err != nil {
		t.Fatalf("Inspection not found: %v", err)
	}
	var selected []string
	if err := insp.SelectedFormIDs.Decode(&selected); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(selected) != 1 || selected[0] != schema.FormSprinkler {
		t.Errorf("Selection must survive a rejected patch, got %v", selected)
	}
}

// TestArchiveValidationRejection tests the 422 validation outcome of the
// archive endpoint: one blank required field plus the signature rule.
func TestArchiveValidationRejection(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	body := sprinklerWeeklyBody()
	values := body["values"].(map[string]interface{})
	values["gauges_condition"] = "" // blank required field
	delete(body, "inspectorSignature")

	payload, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", "/api/reports/archived", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "user-1")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 422)

	env := helpers.ParseEnvelope(t, resp)
	if env.Type != "validation" {
		t.Errorf("Expected validation type, got %s", env.Type)
	}
	if len(env.Errors) == 0 {
		t.Fatal("Expected a populated error list")
	}
	foundField := false
	foundCustom := false
	for _, e := range env.Errors {
		if e == "Manômetros em boas condições é obrigatório" {
			foundField = true
		}
		if e == "Assinatura do Inspetor é obrigatória" {
			foundCustom = true
		}
	}
	if !foundField || !foundCustom {
		t.Errorf("Error list must carry field and custom failures together: %v", env.Errors)
	}

	// Nothing was persisted.
	var count int64
	db.Model(&models.ArchivedReport{}).Count(&count)
	if count != 0 {
		t.Errorf("Validation failure must not persist a report, found %d", count)
	}
}

// TestArchiveAndListReports tests the full archive happy path plus listing
func TestArchiveAndListReports(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	payload, _ := json.Marshal(sprinklerWeeklyBody())
	req := httptest.NewRequest("POST", "/api/reports/archived", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "user-1")
	resp, err := app.Test(req, int(10*time.Second/time.Millisecond))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var archived struct {
		OK      bool                  `json:"ok"`
		Already bool                  `json:"already"`
		Record  models.ArchivedReport `json:"record"`
	}
	helpers.ParseJSON(t, resp, &archived)
	if !archived.OK || archived.Already {
		t.Fatalf("Expected fresh archive, got %+v", archived)
	}
	if archived.Record.PDFData == "" {
		t.Error("Record must carry the rendered document payload")
	}
	if archived.Record.InspectionDate != "2024-03-15" {
		t.Errorf("Expected canonical date, got %s", archived.Record.InspectionDate)
	}

	// The report shows up in the caller's listing.
	req = httptest.NewRequest("GET", "/api/reports/archived", nil)
	req.Header.Set("X-User-Id", "user-1")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	var reports []models.ArchivedReport
	helpers.ParseJSON(t, resp, &reports)
	if len(reports) != 1 {
		t.Fatalf("Expected 1 report, got %d", len(reports))
	}

	// Another user sees nothing.
	req = httptest.NewRequest("GET", "/api/reports/archived", nil)
	req.Header.Set("X-User-Id", "user-2")
	resp, _ = app.Test(req)
	helpers.ParseJSON(t, resp, &reports)
	if len(reports) != 0 {
		t.Errorf("Reports must be scoped per user, got %d", len(reports))
	}

	// Single-report fetch round-trips.
	req = httptest.NewRequest("GET", "/api/reports/archived/"+archived.Record.ID, nil)
	req.Header.Set("X-User-Id", "user-1")
	resp, _ = app.Test(req)
	helpers.AssertStatus(t, resp, 200)
}

// TestArchiveInspectionReplay tests archive idempotence over HTTP
func TestArchiveInspectionReplay(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(db)

	companyID := helpers.CreateTestCompany(t, db, "FireSafe Ltda")
	inspectionID := helpers.CreateTestInspection(t, db, "user-1", companyID, []string{schema.FormSprinkler})

	payload, _ := json.Marshal(sprinklerWeeklyBody())

	submit := func() (int, bool) {
		req := httptest.NewRequest("POST", "/api/inspections/"+inspectionID+"/archive", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "user-1")
		resp, err := app.Test(req, int(10*time.Second/time.Millisecond))
		if err != nil {
			t.Fatalf("Failed to execute request: %v", err)
		}
		var out struct {
			Already bool `json:"already"`
		}
		helpers.ParseJSON(t, resp, &out)
		return resp.StatusCode, out.Already
	}

	status, already := submit()
	if status != 200 || already {
		t.Fatalf("First submit: status=%d already=%v", status, already)
	}

	status, already = submit()
	if status != 200 || !already {
		t.Fatalf("Replay submit: status=%d already=%v", status, already)
	}

	var count int64
	db.Model(&models.ArchivedReport{}).Count(&count)
	if count != 1 {
		t.Errorf("Replay must not duplicate the record, found %d", count)
	}

	var insp models.Inspection
	db.Where("id = ?", inspectionID).First(&insp)
	if insp.Status != "archived" {
		t.Errorf("Parent inspection should be archived, got %s", insp.Status)
	}
}

// TestDraftLifecycle tests PUT/GET/DELETE /api/drafts/:key
func TestDraftLifecycle(t *testing.T) {
	app := setupApp(setupTestDB(t))

	payload := []byte(`{"pump_leaks":"pass"}`)
	req := httptest.NewRequest("PUT", "/api/drafts/form:fire-pump", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Key", "sess-1")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	// Missing session key is rejected.
	req = httptest.NewRequest("PUT", "/api/drafts/form:fire-pump", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, _ = app.Test(req)
	helpers.AssertStatus(t, resp, 400)

	// Read back.
	req = httptest.NewRequest("GET", "/api/drafts/form:fire-pump", nil)
	req.Header.Set("X-Session-Key", "sess-1")
	resp, _ = app.Test(req)
	helpers.AssertStatus(t, resp, 200)
	var value map[string]interface{}
	helpers.ParseJSON(t, resp, &value)
	if value["pump_leaks"] != "pass" {
		t.Errorf("Unexpected draft value: %v", value)
	}

	// Another session does not see it.
	req = httptest.NewRequest("GET", "/api/drafts/form:fire-pump", nil)
	req.Header.Set("X-Session-Key", "sess-2")
	resp, _ = app.Test(req)
	helpers.AssertStatus(t, resp, 404)

	// Delete, then the read misses.
	req = httptest.NewRequest("DELETE", "/api/drafts/form:fire-pump", nil)
	req.Header.Set("X-Session-Key", "sess-1")
	resp, _ = app.Test(req)
	helpers.AssertStatus(t, resp, 200)

	req = httptest.NewRequest("GET", "/api/drafts/form:fire-pump", nil)
	req.Header.Set("X-Session-Key", "sess-1")
	resp, _ = app.Test(req)
	helpers.AssertStatus(t, resp, 404)
}
