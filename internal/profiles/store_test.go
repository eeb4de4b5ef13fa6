package profiles_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"subscore/internal/profiles"
	"subscore/internal/testsupport"
)

func blurayProfile() profiles.Profile {
	return profiles.Profile{
		Name:      "bluray",
		Score:     25,
		MediaType: "movie",
		Conditions: []profiles.Condition{
			{Type: profiles.ConditionRegex, Value: `blu-?ray`},
			{Type: profiles.ConditionProvider, Value: "opensubtitles", Required: true},
			{Type: profiles.ConditionUploader, Value: "spammer", Negate: true, Required: true},
		},
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	created := testsupport.NewProfile(t, store, blurayProfile())
	if created.ID == "" {
		t.Fatal("expected profile ID to be assigned")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected creation time to be assigned")
	}

	byID, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if byID.Name != "bluray" || byID.Score != 25 || byID.MediaType != "movie" {
		t.Fatalf("unexpected profile: %#v", byID)
	}
	if len(byID.Conditions) != 3 {
		t.Fatalf("expected 3 conditions, got %d", len(byID.Conditions))
	}
	if byID.Conditions[0].Type != profiles.ConditionRegex || byID.Conditions[0].Required {
		t.Fatalf("unexpected first condition: %#v", byID.Conditions[0])
	}
	if !byID.Conditions[2].Negate || !byID.Conditions[2].Required {
		t.Fatalf("unexpected third condition: %#v", byID.Conditions[2])
	}

	byName, err := store.GetByName(ctx, "bluray")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if byName.ID != created.ID {
		t.Fatalf("GetByName returned %s, want %s", byName.ID, created.ID)
	}
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	testsupport.NewProfile(t, store, blurayProfile())
	_, err := store.Create(context.Background(), blurayProfile())
	if !errors.Is(err, profiles.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestCreateRejectsInvalidProfiles(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	cases := map[string]profiles.Profile{
		"missing name":  {Score: 1, Conditions: []profiles.Condition{{Type: profiles.ConditionProvider, Value: "x"}}},
		"no conditions": {Name: "empty", Score: 1},
		"negative":      {Name: "neg", Score: -1, Conditions: []profiles.Condition{{Type: profiles.ConditionProvider, Value: "x"}}},
		"bad regex":     {Name: "re", Score: 1, Conditions: []profiles.Condition{{Type: profiles.ConditionRegex, Value: "("}}},
		"bad media":     {Name: "media", Score: 1, MediaType: "short", Conditions: []profiles.Condition{{Type: profiles.ConditionProvider, Value: "x"}}},
		"empty value":   {Name: "blank", Score: 1, Conditions: []profiles.Condition{{Type: profiles.ConditionUploader, Value: "  "}}},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := store.Create(context.Background(), p); !errors.Is(err, profiles.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestListAndDelete(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	testsupport.NewProfile(t, store, blurayProfile())
	testsupport.NewProfile(t, store, profiles.Profile{
		Name:       "addic7ed",
		Score:      5,
		Conditions: []profiles.Condition{{Type: profiles.ConditionProvider, Value: "addic7ed"}},
	})

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 || list[0].Name != "addic7ed" || list[1].Name != "bluray" {
		t.Fatalf("unexpected list order: %#v", list)
	}
	if len(list[0].Conditions) != 1 || len(list[1].Conditions) != 3 {
		t.Fatalf("expected conditions grouped per profile, got %d and %d",
			len(list[0].Conditions), len(list[1].Conditions))
	}

	single, err := store.GetByName(ctx, "addic7ed")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if len(single.Conditions) != 1 || single.Conditions[0].Value != "addic7ed" {
		t.Fatalf("expected only the profile's own condition, got %#v", single.Conditions)
	}

	if err := store.Delete(ctx, "bluray"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.GetByName(ctx, "bluray"); !errors.Is(err, profiles.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.Delete(ctx, "bluray"); !errors.Is(err, profiles.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for second delete, got %v", err)
	}
}

func TestOpenReusesExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.db")
	ctx := context.Background()

	first, err := profiles.Open(ctx, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := first.Create(ctx, blurayProfile()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	second, err := profiles.Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer second.Close()
	list, err := second.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected persisted profile, got %d", len(list))
	}
}

func TestOpenRejectsSchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.db")
	ctx := context.Background()

	store, err := profiles.Open(ctx, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open failed: %v", err)
	}
	if _, err := db.ExecContext(ctx, "UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump schema version: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	reopened, err := profiles.Open(ctx, path)
	if err == nil {
		reopened.Close()
		t.Fatal("expected schema mismatch error")
	}
	if !errors.Is(err, profiles.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}
