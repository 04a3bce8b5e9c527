package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shoptalk-ai/shoptalk/internal/bot"
	"github.com/shoptalk-ai/shoptalk/internal/store"
	"github.com/shoptalk-ai/shoptalk/internal/testutil"
)

func sampleRecord(id string, order int) *bot.TemplateRecord {
	return &bot.TemplateRecord{
		TemplateID:   id,
		Name:         "Sample",
		Description:  "A sample template.",
		BotType:      "receptionist",
		Icon:         "star",
		IsActive:     true,
		DisplayOrder: order,
		DefaultConfig: &bot.TemplateConfig{
			BusinessProfile: bot.BusinessProfile{Type: "barbershop"},
			SystemPrompt:    "You are a helpful assistant.",
			FAQs:            []bot.FAQ{{Question: "Hours?", Answer: "9-5."}},
			BookingProfile:  bot.BookingProfile{Mode: bot.BookingInternal, PrimaryCTA: "Book", FailsafeEnabled: true},
			Rules:           bot.Rules{CrisisHandling: bot.CrisisHandling{Keywords: []string{"suicide"}}},
		},
	}
}

func TestTemplateStore_InsertGetRoundTrip(t *testing.T) {
	ts := store.NewTemplateStore(testutil.NewTestDB(t))
	ctx := context.Background()

	if err := ts.Insert(ctx, sampleRecord("sample_template", 0)); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := ts.GetByID(ctx, "sample_template")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Sample" {
		t.Errorf("name = %q, want %q", got.Name, "Sample")
	}
	if got.DefaultConfig == nil {
		t.Fatal("defaultConfig did not round-trip")
	}
	if got.DefaultConfig.BookingProfile.Mode != bot.BookingInternal {
		t.Errorf("booking mode = %q, want internal", got.DefaultConfig.BookingProfile.Mode)
	}
	if !got.DefaultConfig.BookingProfile.FailsafeEnabled {
		t.Error("failsafeEnabled lost in round-trip")
	}
}

func TestTemplateStore_GetMissing(t *testing.T) {
	ts := store.NewTemplateStore(testutil.NewTestDB(t))
	_, err := ts.GetByID(context.Background(), "nope")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestTemplateStore_DuplicateInsert(t *testing.T) {
	ts := store.NewTemplateStore(testutil.NewTestDB(t))
	ctx := context.Background()

	if err := ts.Insert(ctx, sampleRecord("dup_template", 0)); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	err := ts.Insert(ctx, sampleRecord("dup_template", 1))
	if !errors.Is(err, store.ErrDuplicateTemplate) {
		t.Errorf("err = %v, want ErrDuplicateTemplate", err)
	}
}

func TestTemplateStore_Update(t *testing.T) {
	ts := store.NewTemplateStore(testutil.NewTestDB(t))
	ctx := context.Background()

	if err := ts.Insert(ctx, sampleRecord("upd_template", 3)); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	rec := sampleRecord("upd_template", 9)
	rec.Name = "Renamed"
	if err := ts.Update(ctx, rec); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := ts.GetByID(ctx, "upd_template")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Renamed" {
		t.Errorf("name = %q, want %q", got.Name, "Renamed")
	}
	// display_order is set at insert time only.
	if got.DisplayOrder != 3 {
		t.Errorf("displayOrder = %d, want insert-time 3", got.DisplayOrder)
	}
}

func TestTemplateStore_UpdateMissing(t *testing.T) {
	ts := store.NewTemplateStore(testutil.NewTestDB(t))
	err := ts.Update(context.Background(), sampleRecord("ghost_template", 0))
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestTemplateStore_ListActiveAndCount(t *testing.T) {
	ts := store.NewTemplateStore(testutil.NewTestDB(t))
	ctx := context.Background()

	a := sampleRecord("a_template", 1)
	b := sampleRecord("b_template", 0)
	inactive := sampleRecord("c_template", 2)
	inactive.IsActive = false

	for _, rec := range []*bot.TemplateRecord{a, b, inactive} {
		if err := ts.Insert(ctx, rec); err != nil {
			t.Fatalf("Insert %s: %v", rec.TemplateID, err)
		}
	}

	recs, err := ts.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("active = %d, want 2", len(recs))
	}
	if recs[0].TemplateID != "b_template" || recs[1].TemplateID != "a_template" {
		t.Errorf("order = %s, %s; want display order", recs[0].TemplateID, recs[1].TemplateID)
	}

	n, err := ts.CountActive(ctx)
	if err != nil {
		t.Fatalf("CountActive: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}

func TestTemplateStore_MalformedConfigDecodesToNil(t *testing.T) {
	db := testutil.NewTestDB(t)
	ts := store.NewTemplateStore(db)
	ctx := context.Background()

	if err := ts.Insert(ctx, sampleRecord("bad_template", 0)); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := db.ExecContext(ctx, `UPDATE industry_templates SET default_config = 'not json' WHERE template_id = ?`, "bad_template"); err != nil {
		t.Fatalf("corrupt row: %v", err)
	}

	got, err := ts.GetByID(ctx, "bad_template")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.DefaultConfig != nil {
		t.Error("malformed config should decode to nil, not error")
	}
}
