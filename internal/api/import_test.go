package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"skyward/qualmatrix/internal/auth"
	"skyward/qualmatrix/internal/constants"
	"skyward/qualmatrix/internal/db/repositories"
	"skyward/qualmatrix/internal/metrics"
	"skyward/qualmatrix/internal/models/dtos"
	"skyward/qualmatrix/internal/models/entities"
	"skyward/qualmatrix/internal/services"
)

// promauto registers against the default registry, so the registry is
// shared across all tests in the package.
var (
	testMetricsOnce sync.Once
	testMetricsReg  *metrics.MetricsRegistry
)

func testMetrics() *metrics.MetricsRegistry {
	testMetricsOnce.Do(func() {
		testMetricsReg = metrics.NewMetricsRegistry()
	})
	return testMetricsReg
}

// In-memory store backing the import service in handler tests.
type memQualStore struct {
	pilots []entities.Pilot
	skills []entities.Skill
	quals  map[string]constants.QualStatus
}

func (s *memQualStore) RunInTx(ctx context.Context, fn func(repositories.QualificationTx) error) error {
	snapshot := make(map[string]constants.QualStatus, len(s.quals))
	for k, v := range s.quals {
		snapshot[k] = v
	}
	if err := fn(&memQualTx{s}); err != nil {
		s.quals = snapshot
		return err
	}
	return nil
}

func (s *memQualStore) BackfillMissing(ctx context.Context, updatedBy string) (int64, error) {
	return 0, nil
}

type memQualTx struct {
	store *memQualStore
}

func (t *memQualTx) FindPilotsByCallsign(ctx context.Context, callsign string, limit int) ([]entities.Pilot, error) {
	var out []entities.Pilot
	for _, p := range t.store.pilots {
		if p.IsActive && strings.EqualFold(p.Callsign, callsign) {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (t *memQualTx) FindSkillsByName(ctx context.Context, name string, limit int) ([]entities.Skill, error) {
	var out []entities.Skill
	for _, s := range t.store.skills {
		if strings.EqualFold(s.Name, name) {
			out = append(out, s)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (t *memQualTx) UpsertQualification(ctx context.Context, pilotID, skillID string, status constants.QualStatus, updatedBy string) error {
	t.store.quals[pilotID+"|"+skillID] = status
	return nil
}

type memWingLister struct{}

func (memWingLister) ListWings(ctx context.Context) ([]entities.Wing, error) {
	return nil, nil
}

type memCache struct {
	entries map[string]interface{}
}

func newMemCache() *memCache { return &memCache{entries: map[string]interface{}{}} }

func (c *memCache) Set(key string, value interface{}, duration time.Duration) {
	c.entries[key] = value
}

func (c *memCache) Get(key string) (interface{}, bool) {
	v, ok := c.entries[key]
	return v, ok
}

func (c *memCache) Delete(key string) { delete(c.entries, key) }

func (c *memCache) GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error) {
	if v, ok := c.entries[key]; ok {
		return v, nil
	}
	v, err := loader()
	if err != nil {
		return nil, err
	}
	c.entries[key] = v
	return v, nil
}

func (c *memCache) Close() error { return nil }

func newImportTestHandlers(store *memQualStore) *Handlers {
	deps := &Dependencies{
		Services: &Services{
			Import: services.NewImportService(store, memWingLister{}, newMemCache()),
		},
		Metrics: testMetrics(),
	}
	return NewHandlers(deps)
}

func seedImportStore() *memQualStore {
	return &memQualStore{
		pilots: []entities.Pilot{
			{ID: "p-viper", Callsign: "Viper", WingID: "wing-1", IsActive: true},
			{ID: "p-hawk", Callsign: "Hawk", WingID: "wing-1", IsActive: true},
		},
		skills: []entities.Skill{
			{ID: "s-startup", WingID: "wing-1", Name: "Startup"},
		},
		quals: map[string]constants.QualStatus{},
	}
}

func withInstructor(req *http.Request) *http.Request {
	claims := &auth.JWTClaims{UserUUID: "u-1", RoleValue: constants.RoleInstructor, WingUUID: "wing-1"}
	return req.WithContext(auth.SetUserClaims(req.Context(), claims))
}

func TestImportQualificationsHandler_JSON(t *testing.T) {
	store := seedImportStore()
	handler := newImportTestHandlers(store).ImportQualifications()

	body := `{"records":[
		{"callsign":"viper","skill_name":"STARTUP","status":"fmq"},
		{"callsign":"Ghost","skill_name":"Startup","status":"FMQ"}
	]}`
	req := httptest.NewRequest("POST", "/api/v1/qualifications/import", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = withInstructor(req)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp dtos.APIResponse[dtos.ImportReport]
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("Expected status success, got %s", resp.Status)
	}
	if resp.Data.Imported != 1 || resp.Data.Skipped != 1 {
		t.Errorf("Expected 1 imported / 1 skipped, got %d/%d", resp.Data.Imported, resp.Data.Skipped)
	}
	if resp.Data.Errors[0] != "row 2: pilot not found" {
		t.Errorf("Unexpected skip message: %q", resp.Data.Errors[0])
	}
	if store.quals["p-viper|s-startup"] != constants.StatusFMQ {
		t.Errorf("Expected FMQ committed, got %q", store.quals["p-viper|s-startup"])
	}
}

func TestImportQualificationsHandler_CSV(t *testing.T) {
	store := seedImportStore()
	handler := newImportTestHandlers(store).ImportQualifications()

	body := "Callsign,Skill,Status\nViper,Startup,FMQ\nHawk,Startup,MQT\n"
	req := httptest.NewRequest("POST", "/api/v1/qualifications/import", strings.NewReader(body))
	req.Header.Set("Content-Type", "text/csv")
	req = withInstructor(req)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp dtos.APIResponse[dtos.ImportReport]
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Data.Imported != 2 || resp.Data.Skipped != 0 {
		t.Errorf("Expected 2 imported / 0 skipped, got %d/%d", resp.Data.Imported, resp.Data.Skipped)
	}
	if store.quals["p-hawk|s-startup"] != constants.StatusMQT {
		t.Errorf("Expected MQT for Hawk, got %q", store.quals["p-hawk|s-startup"])
	}
}

func TestImportQualificationsHandler_CSVWithoutHeader(t *testing.T) {
	store := seedImportStore()
	handler := newImportTestHandlers(store).ImportQualifications()

	body := "Viper,Startup,FMQ\n"
	req := httptest.NewRequest("POST", "/api/v1/qualifications/import", strings.NewReader(body))
	req.Header.Set("Content-Type", "text/csv")
	req = withInstructor(req)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var resp dtos.APIResponse[dtos.ImportReport]
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Data.Imported != 1 {
		t.Errorf("Expected headerless CSV row imported, got %d", resp.Data.Imported)
	}
}

func TestImportQualificationsHandler_MissingClaims(t *testing.T) {
	handler := newImportTestHandlers(seedImportStore()).ImportQualifications()

	req := httptest.NewRequest("POST", "/api/v1/qualifications/import", strings.NewReader(`{"records":[]}`))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rr.Code)
	}
}

func TestImportQualificationsHandler_InvalidBody(t *testing.T) {
	handler := newImportTestHandlers(seedImportStore()).ImportQualifications()

	req := httptest.NewRequest("POST", "/api/v1/qualifications/import", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req = withInstructor(req)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestImportQualificationsHandler_BatchTooLarge(t *testing.T) {
	store := seedImportStore()
	handler := newImportTestHandlers(store).ImportQualifications()

	var sb strings.Builder
	sb.WriteString(`{"records":[`)
	for i := 0; i <= constants.MaxImportBatch; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(`{"callsign":"Viper","skill_name":"Startup","status":"FMQ"}`)
	}
	sb.WriteString(`]}`)

	req := httptest.NewRequest("POST", "/api/v1/qualifications/import", strings.NewReader(sb.String()))
	req.Header.Set("Content-Type", "application/json")
	req = withInstructor(req)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
	if len(store.quals) != 0 {
		t.Errorf("Expected no writes on oversized batch, got %d", len(store.quals))
	}
}

func TestBackfillQualificationsHandler_Forbidden(t *testing.T) {
	handler := newImportTestHandlers(seedImportStore()).BackfillQualifications()

	req := httptest.NewRequest("POST", "/api/v1/qualifications/backfill", nil)
	req = withInstructor(req)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", rr.Code)
	}
}
