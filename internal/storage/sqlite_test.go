package storage

import (
	"fmt"
	"testing"
	"time"

	"github.com/imfiit/fitcoach/internal/profile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testStoreProfile(t *testing.T, userID string) profile.Profile {
	t.Helper()
	p, err := profile.New(profile.Input{
		UserID: userID,
		Age:    30, Weight: 80, Height: 180,
		Gender: "male",
		Goals:  []string{"weight_loss"},
	})
	if err != nil {
		t.Fatalf("profile.New: %v", err)
	}
	return p
}

// TestMigrationsIdempotent runs Open twice on the same database and verifies
// the schema_version count stays correct (migration not re-applied).
func TestMigrationsIdempotent(t *testing.T) {
	dir := t.TempDir()

	s1, err := Open(dir)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}

	v1, err := s1.AppliedMigrations()
	if err != nil {
		t.Fatalf("AppliedMigrations: %v", err)
	}
	s1.Close()

	s2, err := Open(dir)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer s2.Close()

	v2, err := s2.AppliedMigrations()
	if err != nil {
		t.Fatalf("AppliedMigrations: %v", err)
	}

	if len(v1) != len(v2) {
		t.Errorf("migration count changed: %d -> %d", len(v1), len(v2))
	}
}

// TestMigrationsOrdered verifies migrations are applied in ascending numeric order.
func TestMigrationsOrdered(t *testing.T) {
	s := openTestStore(t)

	versions, err := s.AppliedMigrations()
	if err != nil {
		t.Fatalf("AppliedMigrations: %v", err)
	}

	if len(versions) == 0 {
		t.Fatal("expected at least one applied migration")
	}

	for i := 1; i < len(versions); i++ {
		if versions[i] <= versions[i-1] {
			t.Errorf("migrations not in ascending order: %v", versions)
			break
		}
	}
}

// TestIndexesExist verifies the message lookup index is created by the migration.
func TestIndexesExist(t *testing.T) {
	s := openTestStore(t)

	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='index' AND name=?", "idx_messages_user_created").Scan(&count)
	if err != nil {
		t.Fatalf("querying sqlite_master: %v", err)
	}
	if count != 1 {
		t.Error("index idx_messages_user_created not found in sqlite_master")
	}
}

// TestSaveAndGetProfile saves a profile and retrieves it by user ID.
func TestSaveAndGetProfile(t *testing.T) {
	s := openTestStore(t)

	want := testStoreProfile(t, "user-1")
	if err := s.SaveProfile(want); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	got, err := s.GetProfile("user-1")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}

	if got.UserID != want.UserID {
		t.Errorf("UserID = %q, want %q", got.UserID, want.UserID)
	}
	if got.BMI != want.BMI {
		t.Errorf("BMI = %v, want %v", got.BMI, want.BMI)
	}
	if got.BMICategory != want.BMICategory {
		t.Errorf("BMICategory = %q, want %q", got.BMICategory, want.BMICategory)
	}
	if len(got.Goals) != 1 || got.Goals[0] != profile.GoalWeightLoss {
		t.Errorf("Goals = %v, want [weight_loss]", got.Goals)
	}
}

// TestGetProfileNotFound verifies that an unknown user ID returns ErrNotFound.
func TestGetProfileNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetProfile("does-not-exist")
	if err != ErrNotFound {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

// TestSaveProfile_Upsert re-saves a profile and verifies the stored copy
// is replaced while history is untouched.
func TestSaveProfile_Upsert(t *testing.T) {
	s := openTestStore(t)

	p := testStoreProfile(t, "user-up")
	if err := s.SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	if _, err := s.AppendMessage(Message{UserID: "user-up", Body: "hi", Intent: "greeting", Response: "hello"}); err != nil {
		t.Fatalf("AppendMessage: %v", err)
	}

	p.Weight = 75
	if err := s.SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile (overwrite): %v", err)
	}

	got, err := s.GetProfile("user-up")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.Weight != 75 {
		t.Errorf("Weight = %v, want 75", got.Weight)
	}

	n, err := s.CountMessages("user-up")
	if err != nil {
		t.Fatalf("CountMessages: %v", err)
	}
	if n != 1 {
		t.Errorf("message count after re-save = %d, want 1", n)
	}
}

// TestAppendMessage_AssignsID verifies a zero-value ID and timestamp get filled in.
func TestAppendMessage_AssignsID(t *testing.T) {
	s := openTestStore(t)

	got, err := s.AppendMessage(Message{UserID: "u", Body: "hi", Intent: "greeting", Response: "hello"})
	if err != nil {
		t.Fatalf("AppendMessage: %v", err)
	}
	if got.ID == "" {
		t.Error("ID not assigned")
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not assigned")
	}
}

// TestHistory_ChronologicalOrder appends 10 messages and verifies History
// returns them oldest first with the limit applied.
func TestHistory_ChronologicalOrder(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for j := 0; j < 10; j++ {
		m := Message{
			UserID:    "user-h",
			CreatedAt: base.Add(time.Duration(j) * time.Minute),
			Body:      fmt.Sprintf("message %d", j),
			Intent:    "general",
			Response:  fmt.Sprintf("reply %d", j),
		}
		if _, err := s.AppendMessage(m); err != nil {
			t.Fatalf("AppendMessage %d: %v", j, err)
		}
	}

	got, err := s.History("user-h", 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("got %d messages, want 10", len(got))
	}
	for k := 1; k < len(got); k++ {
		if got[k].CreatedAt.Before(got[k-1].CreatedAt) {
			t.Errorf("not in ascending order: [%d]=%v < [%d]=%v", k, got[k].CreatedAt, k-1, got[k-1].CreatedAt)
		}
	}
	if got[0].Body != "message 0" {
		t.Errorf("first message = %q, want %q", got[0].Body, "message 0")
	}

	limited, err := s.History("user-h", 5)
	if err != nil {
		t.Fatalf("History(limit 5): %v", err)
	}
	if len(limited) != 5 {
		t.Fatalf("got %d messages, want 5", len(limited))
	}
	if limited[0].Body != "message 0" {
		t.Errorf("limited history should start from the oldest, got %q", limited[0].Body)
	}
}

// TestHistory_IsolatedPerUser verifies one user's messages never leak into another's.
func TestHistory_IsolatedPerUser(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.AppendMessage(Message{UserID: "alice", Body: "hi", Intent: "greeting", Response: "hello"}); err != nil {
		t.Fatalf("AppendMessage: %v", err)
	}
	if _, err := s.AppendMessage(Message{UserID: "bob", Body: "hey", Intent: "greeting", Response: "hello"}); err != nil {
		t.Fatalf("AppendMessage: %v", err)
	}

	got, err := s.History("alice", 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(got) != 1 || got[0].UserID != "alice" {
		t.Errorf("history for alice = %+v", got)
	}
}

// TestCountMessages verifies the count for a user with and without history.
func TestCountMessages(t *testing.T) {
	s := openTestStore(t)

	n, err := s.CountMessages("nobody")
	if err != nil {
		t.Fatalf("CountMessages: %v", err)
	}
	if n != 0 {
		t.Errorf("count = %d, want 0", n)
	}

	for j := 0; j < 3; j++ {
		if _, err := s.AppendMessage(Message{UserID: "counter", Body: "m", Intent: "general", Response: "r"}); err != nil {
			t.Fatalf("AppendMessage %d: %v", j, err)
		}
	}
	n, err = s.CountMessages("counter")
	if err != nil {
		t.Fatalf("CountMessages: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
}

// TestMessageIDsAreSortable appends messages back to back and verifies the
// minted IDs sort in insertion order.
func TestMessageIDsAreSortable(t *testing.T) {
	s := openTestStore(t)

	var prev string
	for j := 0; j < 5; j++ {
		m, err := s.AppendMessage(Message{UserID: "sorted", Body: "m", Intent: "general", Response: "r"})
		if err != nil {
			t.Fatalf("AppendMessage %d: %v", j, err)
		}
		if prev != "" && m.ID <= prev {
			t.Errorf("ID %q not greater than previous %q", m.ID, prev)
		}
		prev = m.ID
	}
}
