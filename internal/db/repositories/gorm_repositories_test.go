package repositories

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"skyward/qualmatrix/internal/constants"
	gormModels "skyward/qualmatrix/internal/models/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&gormModels.User{}, &gormModels.CategoryColor{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func TestUserRepositoryGORM_CreateAndFetch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepositoryGORM(db)
	ctx := context.Background()

	wingID := "wing-1"
	user := &gormModels.User{
		Username: "viper",
		Role:     constants.RoleInstructor,
		WingID:   &wingID,
		IsActive: true,
	}
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.ID == "" {
		t.Fatal("Expected BeforeCreate to mint an ID")
	}

	got, err := repo.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if got.Username != "viper" || got.Role != constants.RoleInstructor {
		t.Errorf("Unexpected user: %+v", got)
	}

	byName, err := repo.GetUserByUsername(ctx, "viper")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if byName.ID != user.ID {
		t.Errorf("Expected same user by username, got %s", byName.ID)
	}
}

func TestUserRepositoryGORM_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepositoryGORM(db)
	ctx := context.Background()

	if err := repo.CreateUser(ctx, &gormModels.User{Username: "viper", Role: constants.RolePilot, IsActive: true}); err != nil {
		t.Fatalf("First create: %v", err)
	}
	if err := repo.CreateUser(ctx, &gormModels.User{Username: "viper", Role: constants.RolePilot, IsActive: true}); err == nil {
		t.Error("Expected unique index violation on duplicate username")
	}
}

func TestUserRepositoryGORM_Deactivate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepositoryGORM(db)
	ctx := context.Background()

	user := &gormModels.User{Username: "hawk", Role: constants.RolePilot, IsActive: true}
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if err := repo.DeactivateUser(ctx, user.ID); err != nil {
		t.Fatalf("DeactivateUser: %v", err)
	}

	got, err := repo.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if got.IsActive {
		t.Error("Expected user to be inactive")
	}

	if err := repo.DeactivateUser(ctx, "no-such-id"); err == nil {
		t.Error("Expected error deactivating a missing user")
	}
}

func TestCategoryColorRepository_UpsertReplacesPerPair(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryColorRepository(db)
	ctx := context.Background()

	initial := []gormModels.CategoryColor{
		{WingID: "wing-1", Category: "Ground Ops", Color: "#ff0000", SortOrder: 1},
		{WingID: "wing-1", Category: "Air-to-Air", Color: "#00ff00", SortOrder: 2},
	}
	if err := repo.UpsertColors(ctx, initial); err != nil {
		t.Fatalf("First upsert: %v", err)
	}

	update := []gormModels.CategoryColor{
		{WingID: "wing-1", Category: "Ground Ops", Color: "#0000ff", SortOrder: 3},
	}
	if err := repo.UpsertColors(ctx, update); err != nil {
		t.Fatalf("Second upsert: %v", err)
	}

	colors, err := repo.ListByWing(ctx, "wing-1")
	if err != nil {
		t.Fatalf("ListByWing: %v", err)
	}
	if len(colors) != 2 {
		t.Fatalf("Expected 2 rows after upsert, got %d", len(colors))
	}

	byCategory := map[string]gormModels.CategoryColor{}
	for _, c := range colors {
		byCategory[c.Category] = c
	}
	if got := byCategory["Ground Ops"]; got.Color != "#0000ff" || got.SortOrder != 3 {
		t.Errorf("Expected updated color/sort for Ground Ops, got %+v", got)
	}
	if got := byCategory["Air-to-Air"]; got.Color != "#00ff00" {
		t.Errorf("Expected untouched row to keep its color, got %+v", got)
	}
}

func TestCategoryColorRepository_ScopedByWing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryColorRepository(db)
	ctx := context.Background()

	rows := []gormModels.CategoryColor{
		{WingID: "wing-1", Category: "Ground Ops", Color: "#ff0000"},
		{WingID: "wing-2", Category: "Ground Ops", Color: "#00ff00"},
	}
	if err := repo.UpsertColors(ctx, rows); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	colors, err := repo.ListByWing(ctx, "wing-2")
	if err != nil {
		t.Fatalf("ListByWing: %v", err)
	}
	if len(colors) != 1 || colors[0].Color != "#00ff00" {
		t.Errorf("Expected only wing-2's row, got %+v", colors)
	}
}
