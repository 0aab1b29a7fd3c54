package services

import (
	"testing"

	"finboard/internal/models"
	"finboard/internal/testutil"
)

func TestGetSettings(t *testing.T) {
	t.Run("creates_default_on_first_read", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSettingsService(db, "")

		settings, err := svc.Get()
		testutil.AssertNoError(t, err)

		if settings.UserID != models.DefaultUserID {
			t.Errorf("expected user ID %s, got %s", models.DefaultUserID, settings.UserID)
		}
		if settings.TotalBalance != 0 || settings.MonthlyIncome != 0 || settings.MonthlyExpenses != 0 {
			t.Errorf("expected zeroed defaults, got %+v", settings)
		}
		if settings.Currency != "USD" {
			t.Errorf("expected default currency USD, got %s", settings.Currency)
		}

		var count int64
		db.Model(&models.UserSettings{}).Count(&count)
		if count != 1 {
			t.Errorf("expected 1 settings row, got %d", count)
		}
	})

	t.Run("returns_existing_record", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSettingsService(db, "")

		testutil.CreateTestSettings(t, db, 1000, 5000, 3000)

		settings, err := svc.Get()
		testutil.AssertNoError(t, err)

		if settings.TotalBalance != 1000 {
			t.Errorf("expected total balance 1000, got %f", settings.TotalBalance)
		}

		// Repeated reads never create a second record.
		_, err = svc.Get()
		testutil.AssertNoError(t, err)

		var count int64
		db.Model(&models.UserSettings{}).Count(&count)
		if count != 1 {
			t.Errorf("expected 1 settings row, got %d", count)
		}
	})
}

func TestUpdateSettings(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSettingsService(db, "")

		testutil.CreateTestSettings(t, db, 1000, 5000, 3000)

		updated, err := svc.Update(SettingsUpdate{MonthlyIncome: floatPtr(6000)})
		testutil.AssertNoError(t, err)

		if updated.MonthlyIncome != 6000 {
			t.Errorf("expected monthly income 6000, got %f", updated.MonthlyIncome)
		}
		if updated.TotalBalance != 1000 {
			t.Errorf("expected total balance unchanged at 1000, got %f", updated.TotalBalance)
		}
		if updated.MonthlyExpenses != 3000 {
			t.Errorf("expected monthly expenses unchanged at 3000, got %f", updated.MonthlyExpenses)
		}
	})

	t.Run("upserts_when_missing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSettingsService(db, "")

		updated, err := svc.Update(SettingsUpdate{TotalBalance: floatPtr(2500)})
		testutil.AssertNoError(t, err)

		if updated.TotalBalance != 2500 {
			t.Errorf("expected total balance 2500, got %f", updated.TotalBalance)
		}
	})

	t.Run("negative_balance_allowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSettingsService(db, "")

		updated, err := svc.Update(SettingsUpdate{TotalBalance: floatPtr(-500)})
		testutil.AssertNoError(t, err)

		if updated.TotalBalance != -500 {
			t.Errorf("expected total balance -500, got %f", updated.TotalBalance)
		}
	})

	t.Run("negative_targets_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSettingsService(db, "")

		_, err := svc.Update(SettingsUpdate{MonthlyIncome: floatPtr(-1)})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")

		_, err = svc.Update(SettingsUpdate{MonthlyExpenses: floatPtr(-1)})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("currency_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSettingsService(db, "")

		updated, err := svc.Update(SettingsUpdate{Currency: strPtr("EUR")})
		testutil.AssertNoError(t, err)

		if updated.Currency != "EUR" {
			t.Errorf("expected currency EUR, got %s", updated.Currency)
		}
	})

	t.Run("empty_update_is_noop", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSettingsService(db, "")

		testutil.CreateTestSettings(t, db, 1000, 5000, 3000)

		updated, err := svc.Update(SettingsUpdate{})
		testutil.AssertNoError(t, err)

		if updated.TotalBalance != 1000 || updated.MonthlyIncome != 5000 {
			t.Errorf("expected settings unchanged, got %+v", updated)
		}
	})
}
