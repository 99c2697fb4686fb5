package services

import (
	"context"
	"testing"

	"skyward/qualmatrix/internal/models/entities"
)

type fakeReadinessStore struct {
	counts      map[string][]entities.PilotQualCount
	skillCounts map[string]int

	countCalls      int
	skillCountCalls int
}

func (f *fakeReadinessStore) PilotQualificationCounts(ctx context.Context, wingID string) ([]entities.PilotQualCount, error) {
	f.countCalls++
	return f.counts[wingID], nil
}

func (f *fakeReadinessStore) CountSkills(ctx context.Context, wingID string) (int, error) {
	f.skillCountCalls++
	return f.skillCounts[wingID], nil
}

func TestReadinessService_WingReadiness_CombatReadyThreshold(t *testing.T) {
	store := &fakeReadinessStore{
		counts: map[string][]entities.PilotQualCount{
			"wing-1": {
				{PilotID: "p-1", Callsign: "Viper", Total: 4, Qualified: 3},
				{PilotID: "p-2", Callsign: "Hawk", Total: 4, Qualified: 2},
			},
		},
	}
	svc := NewReadinessService(store, &fakeWingLister{}, newFakeCache())

	report, err := svc.WingReadiness(context.Background(), "wing-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if report.TotalPilots != 2 {
		t.Fatalf("Expected 2 pilots, got %d", report.TotalPilots)
	}
	if !report.Pilots[0].CombatReady {
		t.Error("Expected pilot with 3 qualified skills to be combat ready")
	}
	if report.Pilots[1].CombatReady {
		t.Error("Expected pilot with 2 qualified skills to not be combat ready")
	}
	if report.CombatReadyPilots != 1 {
		t.Errorf("Expected 1 combat ready pilot, got %d", report.CombatReadyPilots)
	}
	if report.OverallReadinessPercentage != 50 {
		t.Errorf("Expected 50%% overall readiness, got %v", report.OverallReadinessPercentage)
	}
	// (3/4 + 2/4) / 2 = 62.5
	if report.AverageCompletionPercentage != 62.5 {
		t.Errorf("Expected 62.5%% average completion, got %v", report.AverageCompletionPercentage)
	}
}

func TestReadinessService_WingReadiness_EmptyWing(t *testing.T) {
	store := &fakeReadinessStore{counts: map[string][]entities.PilotQualCount{}}
	svc := NewReadinessService(store, &fakeWingLister{}, newFakeCache())

	report, err := svc.WingReadiness(context.Background(), "wing-empty")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if report.TotalPilots != 0 || report.OverallReadinessPercentage != 0 || report.AverageCompletionPercentage != 0 {
		t.Errorf("Expected zeroed report for empty wing, got %+v", report)
	}
}

func TestReadinessService_WingReadiness_SkillCountFallback(t *testing.T) {
	store := &fakeReadinessStore{
		counts: map[string][]entities.PilotQualCount{
			"wing-1": {
				{PilotID: "p-1", Callsign: "Viper", Total: 0, Qualified: 0},
				{PilotID: "p-2", Callsign: "Hawk", Total: 0, Qualified: 0},
			},
		},
		skillCounts: map[string]int{"wing-1": 5},
	}
	svc := NewReadinessService(store, &fakeWingLister{}, newFakeCache())

	report, err := svc.WingReadiness(context.Background(), "wing-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if report.Pilots[0].TotalTracked != 5 {
		t.Errorf("Expected skill count as denominator, got %d", report.Pilots[0].TotalTracked)
	}
	if store.skillCountCalls != 1 {
		t.Errorf("Expected skill count fetched once, got %d calls", store.skillCountCalls)
	}
}

func TestReadinessService_WingReadiness_ServesFromCache(t *testing.T) {
	store := &fakeReadinessStore{
		counts: map[string][]entities.PilotQualCount{
			"wing-1": {{PilotID: "p-1", Callsign: "Viper", Total: 3, Qualified: 3}},
		},
	}
	svc := NewReadinessService(store, &fakeWingLister{}, newFakeCache())

	if _, err := svc.WingReadiness(context.Background(), "wing-1"); err != nil {
		t.Fatalf("First call: %v", err)
	}
	if _, err := svc.WingReadiness(context.Background(), "wing-1"); err != nil {
		t.Fatalf("Second call: %v", err)
	}
	if store.countCalls != 1 {
		t.Errorf("Expected the second call to hit the cache, store queried %d times", store.countCalls)
	}
}

func TestReadinessService_GlobalReadiness_RollsUpAndSorts(t *testing.T) {
	store := &fakeReadinessStore{
		counts: map[string][]entities.PilotQualCount{
			"wing-b": {
				{PilotID: "p-1", Callsign: "Viper", Total: 3, Qualified: 3},
				{PilotID: "p-2", Callsign: "Hawk", Total: 3, Qualified: 1},
			},
			"wing-a": {
				{PilotID: "p-3", Callsign: "Raven", Total: 3, Qualified: 3},
			},
		},
	}
	wings := &fakeWingLister{wings: []entities.Wing{{ID: "wing-b"}, {ID: "wing-a"}}}
	svc := NewReadinessService(store, wings, newFakeCache())

	global, err := svc.GlobalReadiness(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if global.TotalPilots != 3 || global.CombatReadyPilots != 2 {
		t.Fatalf("Expected 3 pilots, 2 ready; got %d/%d", global.TotalPilots, global.CombatReadyPilots)
	}
	want := float64(2) / 3 * 100
	if global.OverallReadinessPercentage != want {
		t.Errorf("Expected %v%% overall readiness, got %v", want, global.OverallReadinessPercentage)
	}
	if global.Wings[0].WingID != "wing-a" || global.Wings[1].WingID != "wing-b" {
		t.Errorf("Expected wings sorted by ID, got %q, %q", global.Wings[0].WingID, global.Wings[1].WingID)
	}
}
