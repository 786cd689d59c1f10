package domain

import (
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestUser_DeleteAndRestore(t *testing.T) {
	u := &User{Account: "bob"}
	if !u.IsLive() {
		t.Fatalf("new user should be live")
	}

	if err := u.Delete(ReasonWithdrawn); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if u.IsLive() || u.DeletedReason != ReasonWithdrawn {
		t.Fatalf("expected deleted state, got %d", u.DeletedReason)
	}

	if err := u.Delete(DeletedReason(7)); !errors.Is(err, ErrUserAlreadyDeleted) {
		t.Fatalf("expected ErrUserAlreadyDeleted, got %v", err)
	}
	if u.DeletedReason != ReasonWithdrawn {
		t.Fatalf("second delete must keep first reason, got %d", u.DeletedReason)
	}

	u.Restore()
	if !u.IsLive() {
		t.Fatalf("expected live user after restore")
	}
	u.Restore()
	if !u.IsLive() {
		t.Fatalf("restore of a live user must stay live")
	}
}

func TestUser_DeleteRejectsActiveReason(t *testing.T) {
	u := &User{Account: "bob"}
	if err := u.Delete(Active); !errors.Is(err, ErrInvalidDeleteReason) {
		t.Fatalf("expected ErrInvalidDeleteReason, got %v", err)
	}
	if !u.IsLive() {
		t.Fatalf("user must remain live")
	}
}

func TestUserPatch_ApplyOnlyTouchesSetFields(t *testing.T) {
	u := &User{
		Account:     "bob",
		Password:    "hash",
		Nickname:    "Bob",
		Email:       "b@x.com",
		PhoneNumber: "1",
		Area:        "Seoul",
		Height:      180,
		Weight:      70,
	}
	before := *u

	UserPatch{Nickname: strPtr("Bobby")}.Apply(u)

	want := before
	want.Nickname = "Bobby"
	if *u != want {
		t.Fatalf("unexpected result:\n got  %+v\n want %+v", *u, want)
	}
}

func TestUserPatch_ExplicitZeroOverwrites(t *testing.T) {
	u := &User{Account: "bob", Area: "Seoul", Height: 180}

	UserPatch{Area: strPtr(""), Height: intPtr(0)}.Apply(u)

	if u.Area != "" || u.Height != 0 {
		t.Fatalf("expected cleared fields, got %+v", u)
	}
}

func TestClothesPart_Valid(t *testing.T) {
	for _, p := range []ClothesPart{PartTop, PartBottom, PartOuter, PartShoes} {
		if !p.Valid() {
			t.Fatalf("%s should be valid", p)
		}
	}
	if ClothesPart("HAT").Valid() {
		t.Fatalf("HAT should not be valid")
	}
}
