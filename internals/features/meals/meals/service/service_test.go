package service

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	congregationModel "missionmeals_backend/internals/features/congregations/congregations/model"
	missionaryModel "missionmeals_backend/internals/features/congregations/missionaries/model"
	mealDTO "missionmeals_backend/internals/features/meals/meals/dto"
	mealModel "missionmeals_backend/internals/features/meals/meals/model"
)

// The production schema relies on gen_random_uuid() defaults, so tests create
// the three tables the services touch by hand on in-memory sqlite.
const testSchema = `
CREATE TABLE congregations (
	congregation_id TEXT PRIMARY KEY,
	congregation_stake_id TEXT,
	congregation_name TEXT NOT NULL,
	congregation_description TEXT,
	congregation_access_code TEXT NOT NULL UNIQUE,
	congregation_is_active BOOLEAN NOT NULL DEFAULT TRUE,
	congregation_allow_combined_bookings BOOLEAN NOT NULL DEFAULT FALSE,
	congregation_max_bookings_per_address INTEGER NOT NULL DEFAULT 0,
	congregation_max_bookings_per_phone INTEGER NOT NULL DEFAULT 0,
	congregation_max_bookings_per_period INTEGER NOT NULL DEFAULT 0,
	congregation_booking_period_days INTEGER NOT NULL DEFAULT 30,
	congregation_created_at DATETIME,
	congregation_updated_at DATETIME,
	congregation_deleted_at DATETIME
);
CREATE TABLE missionaries (
	missionary_id TEXT PRIMARY KEY,
	missionary_congregation_id TEXT NOT NULL,
	missionary_name TEXT NOT NULL,
	missionary_type TEXT NOT NULL,
	missionary_is_trio BOOLEAN NOT NULL DEFAULT FALSE,
	missionary_phone_number TEXT NOT NULL,
	missionary_email_address TEXT,
	missionary_whatsapp_number TEXT,
	missionary_messenger_account TEXT,
	missionary_preferred_notification TEXT NOT NULL DEFAULT 'email',
	missionary_notification_schedule_type TEXT NOT NULL DEFAULT 'before_each_meal',
	missionary_is_active BOOLEAN NOT NULL DEFAULT TRUE,
	missionary_consent_status TEXT NOT NULL DEFAULT 'pending',
	missionary_transfer_date DATETIME,
	missionary_verification_code TEXT,
	missionary_created_at DATETIME,
	missionary_updated_at DATETIME,
	missionary_deleted_at DATETIME
);
CREATE TABLE meals (
	meal_id TEXT PRIMARY KEY,
	meal_missionary_id TEXT NOT NULL,
	meal_congregation_id TEXT NOT NULL,
	meal_date TEXT NOT NULL,
	meal_start_time TEXT NOT NULL,
	meal_host_name TEXT NOT NULL,
	meal_host_phone TEXT NOT NULL,
	meal_host_email TEXT,
	meal_host_address TEXT,
	meal_description TEXT,
	meal_special_notes TEXT,
	meal_cancelled BOOLEAN NOT NULL DEFAULT FALSE,
	meal_cancellation_reason TEXT,
	meal_created_at DATETIME,
	meal_updated_at DATETIME
);
CREATE UNIQUE INDEX uq_meals_missionary_date_active
	ON meals (meal_missionary_id, meal_date)
	WHERE meal_cancelled = FALSE;
`

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Exec(testSchema).Error; err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return db
}

func seedCongregation(t *testing.T, db *gorm.DB, mutate func(*congregationModel.CongregationModel)) *congregationModel.CongregationModel {
	t.Helper()
	c := &congregationModel.CongregationModel{
		CongregationID:                uuid.New(),
		CongregationName:              "Riverside Ward",
		CongregationAccessCode:        uuid.NewString(),
		CongregationIsActive:          true,
		CongregationBookingPeriodDays: 30,
	}
	if mutate != nil {
		mutate(c)
	}
	// Create back-fills CongregationIsActive from the column default, so the
	// requested state has to be remembered and applied as an explicit update.
	wantActive := c.CongregationIsActive
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed congregation: %v", err)
	}
	if !wantActive {
		if err := db.Model(c).Update("congregation_is_active", false).Error; err != nil {
			t.Fatalf("deactivate congregation: %v", err)
		}
		c.CongregationIsActive = false
	}
	return c
}

func seedMissionary(t *testing.T, db *gorm.DB, congregationID uuid.UUID, mt missionaryModel.MissionaryType, active bool) *missionaryModel.MissionaryModel {
	t.Helper()
	m := &missionaryModel.MissionaryModel{
		MissionaryID:                    uuid.New(),
		MissionaryCongregationID:        congregationID,
		MissionaryName:                  "Companionship " + uuid.NewString()[:8],
		MissionaryType:                  mt,
		MissionaryPhoneNumber:           "+15550001111",
		MissionaryPreferredNotification: missionaryModel.ChannelEmail,
		MissionaryIsActive:              true,
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("seed missionary: %v", err)
	}
	if !active {
		if err := db.Model(m).Update("missionary_is_active", false).Error; err != nil {
			t.Fatalf("deactivate missionary: %v", err)
		}
		m.MissionaryIsActive = false
	}
	return m
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	}
}

func newService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db, Now: fixedClock()}
}

func bookCmd(c *congregationModel.CongregationModel, m *missionaryModel.MissionaryModel, date string) BookMealCommand {
	return BookMealCommand{
		MissionaryID:   m.MissionaryID,
		CongregationID: c.CongregationID,
		Date:           date,
		StartTime:      "18:00",
		HostName:       "The Halversons",
		HostPhone:      "+15559990000",
	}
}

func fiberStatus(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected fiber error, got %v", err)
	}
	return fe.Code
}

/* ===================== BOOKING ===================== */

func TestBookMealConflictNamesMissionaryType(t *testing.T) {
	db := newTestDB(t)
	c := seedCongregation(t, db, nil)
	sisters := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeSisters, true)
	svc := newService(db)

	if _, err := svc.BookMeal(bookCmd(c, sisters, "2026-01-15")); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	_, err := svc.BookMeal(bookCmd(c, sisters, "2026-01-15"))
	if code := fiberStatus(t, err); code != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", code)
	}
	if want := "The Sisters already have a meal scheduled for this date"; err.Error() != want {
		t.Fatalf("conflict message = %q, want %q", err.Error(), want)
	}
}

func TestBookMealSameMissionaryDifferentDates(t *testing.T) {
	db := newTestDB(t)
	c := seedCongregation(t, db, nil)
	m := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeElders, true)
	svc := newService(db)

	for _, date := range []string{"2026-01-15", "2026-01-16", "2026-01-17"} {
		if _, err := svc.BookMeal(bookCmd(c, m, date)); err != nil {
			t.Fatalf("booking %s: %v", date, err)
		}
	}
}

func TestBookMealAfterCancelFreesDate(t *testing.T) {
	db := newTestDB(t)
	c := seedCongregation(t, db, nil)
	m := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeElders, true)
	svc := newService(db)

	meal, err := svc.BookMeal(bookCmd(c, m, "2026-01-15"))
	if err != nil {
		t.Fatalf("booking: %v", err)
	}
	if _, _, err := svc.CancelMeal(meal.MealID, nil); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if _, err := svc.BookMeal(bookCmd(c, m, "2026-01-15")); err != nil {
		t.Fatalf("rebooking a cancelled slot should succeed: %v", err)
	}
}

func TestBookMealRejectsPastDate(t *testing.T) {
	db := newTestDB(t)
	c := seedCongregation(t, db, nil)
	m := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeElders, true)
	svc := newService(db)

	_, err := svc.BookMeal(bookCmd(c, m, "2026-01-09"))
	if code := fiberStatus(t, err); code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for past date, got %d", code)
	}
}

func TestBookMealRejectsInactiveMissionary(t *testing.T) {
	db := newTestDB(t)
	c := seedCongregation(t, db, nil)
	m := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeElders, false)
	svc := newService(db)

	_, err := svc.BookMeal(bookCmd(c, m, "2026-01-15"))
	if code := fiberStatus(t, err); code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for inactive missionary, got %d", code)
	}
}

func TestBookMealRejectsInactiveCongregation(t *testing.T) {
	db := newTestDB(t)
	c := seedCongregation(t, db, func(c *congregationModel.CongregationModel) {
		c.CongregationIsActive = false
	})
	m := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeElders, true)
	svc := newService(db)

	_, err := svc.BookMeal(bookCmd(c, m, "2026-01-15"))
	if code := fiberStatus(t, err); code != fiber.StatusNotFound {
		t.Fatalf("expected 404 for inactive congregation, got %d", code)
	}
}

func TestBookMealRejectsForeignMissionary(t *testing.T) {
	db := newTestDB(t)
	c1 := seedCongregation(t, db, nil)
	c2 := seedCongregation(t, db, nil)
	m := seedMissionary(t, db, c2.CongregationID, missionaryModel.MissionaryTypeElders, true)
	svc := newService(db)

	_, err := svc.BookMeal(bookCmd(c1, m, "2026-01-15"))
	if code := fiberStatus(t, err); code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 when missionary belongs elsewhere, got %d", code)
	}
}

func TestBookingCapPerPhone(t *testing.T) {
	db := newTestDB(t)
	c := seedCongregation(t, db, func(c *congregationModel.CongregationModel) {
		c.CongregationMaxBookingsPerPhone = 2
	})
	m1 := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeElders, true)
	m2 := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeSisters, true)
	m3 := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeElders, true)
	svc := newService(db)

	if _, err := svc.BookMeal(bookCmd(c, m1, "2026-01-15")); err != nil {
		t.Fatalf("booking 1: %v", err)
	}
	if _, err := svc.BookMeal(bookCmd(c, m2, "2026-01-16")); err != nil {
		t.Fatalf("booking 2: %v", err)
	}

	_, err := svc.BookMeal(bookCmd(c, m3, "2026-01-17"))
	if code := fiberStatus(t, err); code != fiber.StatusConflict {
		t.Fatalf("expected 409 once the phone cap is hit, got %d", code)
	}
}

func TestBookingCapPerAddressIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	c := seedCongregation(t, db, func(c *congregationModel.CongregationModel) {
		c.CongregationMaxBookingsPerAddress = 1
	})
	m1 := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeElders, true)
	m2 := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeSisters, true)
	svc := newService(db)

	addr1 := "12 Maple Street"
	addr2 := "12 MAPLE STREET"

	cmd := bookCmd(c, m1, "2026-01-15")
	cmd.HostAddress = &addr1
	if _, err := svc.BookMeal(cmd); err != nil {
		t.Fatalf("booking 1: %v", err)
	}

	cmd2 := bookCmd(c, m2, "2026-01-16")
	cmd2.HostPhone = "+15551112222"
	cmd2.HostAddress = &addr2
	_, err := svc.BookMeal(cmd2)
	if code := fiberStatus(t, err); code != fiber.StatusConflict {
		t.Fatalf("expected 409 for same address in different case, got %d", code)
	}
}

func TestBookingCapIgnoresBookingsOutsideWindow(t *testing.T) {
	db := newTestDB(t)
	c := seedCongregation(t, db, func(c *congregationModel.CongregationModel) {
		c.CongregationMaxBookingsPerPhone = 1
		c.CongregationBookingPeriodDays = 7
	})
	m1 := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeElders, true)
	m2 := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeSisters, true)
	svc := newService(db)

	if _, err := svc.BookMeal(bookCmd(c, m1, "2026-01-12")); err != nil {
		t.Fatalf("booking 1: %v", err)
	}

	// 2026-02-10 is far outside the 7-day window ending that date.
	if _, err := svc.BookMeal(bookCmd(c, m2, "2026-02-10")); err != nil {
		t.Fatalf("booking outside the window should not count against the cap: %v", err)
	}
}

func TestBookingCapPerPhoneIgnoresFormatting(t *testing.T) {
	db := newTestDB(t)
	c := seedCongregation(t, db, func(c *congregationModel.CongregationModel) {
		c.CongregationMaxBookingsPerPhone = 1
	})
	m1 := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeElders, true)
	m2 := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeSisters, true)
	svc := newService(db)

	cmd := bookCmd(c, m1, "2026-01-15")
	cmd.HostPhone = "+1 (555) 999-0000"
	if _, err := svc.BookMeal(cmd); err != nil {
		t.Fatalf("booking 1: %v", err)
	}

	cmd2 := bookCmd(c, m2, "2026-01-16")
	cmd2.HostPhone = "+15559990000"
	_, err := svc.BookMeal(cmd2)
	if code := fiberStatus(t, err); code != fiber.StatusConflict {
		t.Fatalf("expected 409 for the same phone in different formatting, got %d", code)
	}
}

/* ===================== UPDATE ===================== */

func TestUpdateMealRevalidatesOnDateChange(t *testing.T) {
	db := newTestDB(t)
	c := seedCongregation(t, db, nil)
	m := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeElders, true)
	svc := newService(db)

	if _, err := svc.BookMeal(bookCmd(c, m, "2026-01-15")); err != nil {
		t.Fatalf("booking A: %v", err)
	}
	mealB, err := svc.BookMeal(bookCmd(c, m, "2026-01-16"))
	if err != nil {
		t.Fatalf("booking B: %v", err)
	}

	newDate := "2026-01-15"
	_, err = svc.UpdateMeal(mealB.MealID, mealDTO.UpdateMealRequest{Date: &newDate})
	if code := fiberStatus(t, err); code != fiber.StatusConflict {
		t.Fatalf("expected 409 moving onto a taken date, got %d", code)
	}
}

func TestUpdateMealTimeOnlySkipsConflictCheck(t *testing.T) {
	db := newTestDB(t)
	c := seedCongregation(t, db, nil)
	m := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeElders, true)
	svc := newService(db)

	meal, err := svc.BookMeal(bookCmd(c, m, "2026-01-15"))
	if err != nil {
		t.Fatalf("booking: %v", err)
	}

	newTime := "12:30"
	updated, err := svc.UpdateMeal(meal.MealID, mealDTO.UpdateMealRequest{StartTime: &newTime})
	if err != nil {
		t.Fatalf("time-only update: %v", err)
	}
	if updated.MealStartTime != "12:30" {
		t.Fatalf("start time = %q, want 12:30", updated.MealStartTime)
	}
}

func TestUpdateMealRejectsCrossWardReassignment(t *testing.T) {
	db := newTestDB(t)
	c1 := seedCongregation(t, db, nil)
	c2 := seedCongregation(t, db, nil)
	m1 := seedMissionary(t, db, c1.CongregationID, missionaryModel.MissionaryTypeElders, true)
	m2 := seedMissionary(t, db, c2.CongregationID, missionaryModel.MissionaryTypeSisters, true)
	svc := newService(db)

	meal, err := svc.BookMeal(bookCmd(c1, m1, "2026-01-15"))
	if err != nil {
		t.Fatalf("booking: %v", err)
	}

	_, err = svc.UpdateMeal(meal.MealID, mealDTO.UpdateMealRequest{MissionaryID: &m2.MissionaryID})
	if code := fiberStatus(t, err); code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 moving a meal to another ward's missionary, got %d", code)
	}

	var unchanged mealModel.MealModel
	if err := db.First(&unchanged, "meal_id = ?", meal.MealID).Error; err != nil {
		t.Fatalf("reload meal: %v", err)
	}
	if unchanged.MealMissionaryID != m1.MissionaryID || unchanged.MealCongregationID != c1.CongregationID {
		t.Fatalf("rejected update must leave the meal untouched: %+v", unchanged)
	}
}

func TestUpdateMealRejectsInactiveMissionary(t *testing.T) {
	db := newTestDB(t)
	c := seedCongregation(t, db, nil)
	m1 := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeElders, true)
	m2 := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeSisters, false)
	svc := newService(db)

	meal, err := svc.BookMeal(bookCmd(c, m1, "2026-01-15"))
	if err != nil {
		t.Fatalf("booking: %v", err)
	}

	_, err = svc.UpdateMeal(meal.MealID, mealDTO.UpdateMealRequest{MissionaryID: &m2.MissionaryID})
	if code := fiberStatus(t, err); code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 moving a meal to an inactive missionary, got %d", code)
	}
}

func TestUpdateCancelledMealRejected(t *testing.T) {
	db := newTestDB(t)
	c := seedCongregation(t, db, nil)
	m := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeElders, true)
	svc := newService(db)

	meal, err := svc.BookMeal(bookCmd(c, m, "2026-01-15"))
	if err != nil {
		t.Fatalf("booking: %v", err)
	}
	if _, _, err := svc.CancelMeal(meal.MealID, nil); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	name := "New Host"
	_, err = svc.UpdateMeal(meal.MealID, mealDTO.UpdateMealRequest{HostName: &name})
	if code := fiberStatus(t, err); code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 updating a cancelled meal, got %d", code)
	}
}

/* ===================== CANCEL ===================== */

func TestCancelMealIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	c := seedCongregation(t, db, nil)
	m := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeElders, true)
	svc := newService(db)

	meal, err := svc.BookMeal(bookCmd(c, m, "2026-01-15"))
	if err != nil {
		t.Fatalf("booking: %v", err)
	}

	reason := "Family emergency"
	first, already, err := svc.CancelMeal(meal.MealID, &reason)
	if err != nil || already {
		t.Fatalf("first cancel: already=%v err=%v", already, err)
	}
	if !first.MealCancelled || first.MealCancellationReason == nil || *first.MealCancellationReason != reason {
		t.Fatalf("cancel did not persist reason: %+v", first)
	}

	second, already, err := svc.CancelMeal(meal.MealID, nil)
	if err != nil {
		t.Fatalf("second cancel: %v", err)
	}
	if !already {
		t.Fatal("second cancel should report alreadyCancelled")
	}
	if second.MealCancellationReason == nil || *second.MealCancellationReason != reason {
		t.Fatal("re-cancel must not clear the original reason")
	}
}

func TestCancelMissingMeal(t *testing.T) {
	db := newTestDB(t)
	svc := newService(db)

	_, _, err := svc.CancelMeal(uuid.New(), nil)
	if code := fiberStatus(t, err); code != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}

/* ===================== UNIQUE INDEX ===================== */

func TestPartialIndexBlocksDirectDuplicateInsert(t *testing.T) {
	db := newTestDB(t)
	c := seedCongregation(t, db, nil)
	m := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeElders, true)

	row := func() *mealModel.MealModel {
		return &mealModel.MealModel{
			MealID:             uuid.New(),
			MealMissionaryID:   m.MissionaryID,
			MealCongregationID: c.CongregationID,
			MealDate:           "2026-01-15",
			MealStartTime:      "18:00",
			MealHostName:       "Host",
			MealHostPhone:      "+15550000000",
		}
	}

	if err := db.Create(row()).Error; err != nil {
		t.Fatalf("first insert: %v", err)
	}
	err := db.Create(row()).Error
	if err == nil {
		t.Fatal("duplicate insert should hit the partial unique index")
	}
	if !isUniqueViolation(err) {
		t.Fatalf("isUniqueViolation(%v) = false", err)
	}
}

/* ===================== AVAILABILITY ===================== */

func TestIsAvailableFailsClosedOnEmptyRoster(t *testing.T) {
	db := newTestDB(t)
	c := seedCongregation(t, db, nil)

	ok, err := IsAvailable(db, c.CongregationID, "2026-01-15",
		Selector{MissionaryType: missionaryModel.MissionaryTypeSisters})
	if err != nil {
		t.Fatalf("IsAvailable: %v", err)
	}
	if ok {
		t.Fatal("a ward with no sisters must report sisters unavailable")
	}
}

func TestIsAvailableTypeLevelAnyNotAll(t *testing.T) {
	db := newTestDB(t)
	c := seedCongregation(t, db, nil)
	e1 := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeElders, true)
	e2 := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeElders, true)
	svc := newService(db)

	sel := Selector{MissionaryType: missionaryModel.MissionaryTypeElders}

	if _, err := svc.BookMeal(bookCmd(c, e1, "2026-01-15")); err != nil {
		t.Fatalf("booking e1: %v", err)
	}
	ok, err := IsAvailable(db, c.CongregationID, "2026-01-15", sel)
	if err != nil || !ok {
		t.Fatalf("one of two companionships booked: ok=%v err=%v, want available", ok, err)
	}

	if _, err := svc.BookMeal(bookCmd(c, e2, "2026-01-15")); err != nil {
		t.Fatalf("booking e2: %v", err)
	}
	ok, err = IsAvailable(db, c.CongregationID, "2026-01-15", sel)
	if err != nil {
		t.Fatalf("IsAvailable: %v", err)
	}
	if ok {
		t.Fatal("both companionships booked: type must be unavailable")
	}
}

func TestIsAvailableIgnoresCancelledMeals(t *testing.T) {
	db := newTestDB(t)
	c := seedCongregation(t, db, nil)
	m := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeElders, true)
	svc := newService(db)

	meal, err := svc.BookMeal(bookCmd(c, m, "2026-01-15"))
	if err != nil {
		t.Fatalf("booking: %v", err)
	}

	sel := Selector{MissionaryID: &m.MissionaryID}
	ok, _ := IsAvailable(db, c.CongregationID, "2026-01-15", sel)
	if ok {
		t.Fatal("booked missionary should be unavailable")
	}

	if _, _, err := svc.CancelMeal(meal.MealID, nil); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	ok, err = IsAvailable(db, c.CongregationID, "2026-01-15", sel)
	if err != nil || !ok {
		t.Fatalf("cancelled meal must free the slot: ok=%v err=%v", ok, err)
	}
}

func TestIsAvailableInactiveMissionary(t *testing.T) {
	db := newTestDB(t)
	c := seedCongregation(t, db, nil)
	m := seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeElders, false)

	ok, err := IsAvailable(db, c.CongregationID, "2026-01-15", Selector{MissionaryID: &m.MissionaryID})
	if err != nil {
		t.Fatalf("IsAvailable: %v", err)
	}
	if ok {
		t.Fatal("inactive missionary must be unavailable")
	}
}

func TestIsAvailableInactiveCongregation(t *testing.T) {
	db := newTestDB(t)
	c := seedCongregation(t, db, func(c *congregationModel.CongregationModel) {
		c.CongregationIsActive = false
	})
	seedMissionary(t, db, c.CongregationID, missionaryModel.MissionaryTypeElders, true)

	ok, err := IsAvailable(db, c.CongregationID, "2026-01-15",
		Selector{MissionaryType: missionaryModel.MissionaryTypeElders})
	if err != nil {
		t.Fatalf("IsAvailable: %v", err)
	}
	if ok {
		t.Fatal("inactive congregation must be unavailable")
	}
}
