package domain

import (
	"testing"
	"time"
)

func TestHandlerForDepartment(t *testing.T) {
	cases := []struct {
		department string
		want       string
	}{
		{"Hostel", "Chief Warden"},
		{"Mess", "Chief Mess Coordinator"},
		{"Academic", "Dean Academics"},
		{"Hospital", "Chief Medical Officer"},
		{"Sports/Gym", "Chief Sports Coordinator"},
		{"Ragging", "DIRECTOR"},
		{"Others", "AO"},
		{"Administration", "AO"},
		{"Parking", "AO"}, // unknown department falls through
		{"", "AO"},
	}

	for _, tc := range cases {
		if got := HandlerForDepartment(tc.department); got != tc.want {
			t.Errorf("HandlerForDepartment(%q) = %q, want %q", tc.department, got, tc.want)
		}
	}
}

func TestDepartmentFromCategory(t *testing.T) {
	cases := []struct {
		category string
		want     string
	}{
		{"Hostel - I1 - Electrical", "Hostel"},
		{"Mess - Block A - Food quality", "Mess"},
		{"Ragging", "Ragging"},
		{"Sports/Gym - Equipment - Broken treadmill", "Sports/Gym"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := DepartmentFromCategory(tc.category); got != tc.want {
			t.Errorf("DepartmentFromCategory(%q) = %q, want %q", tc.category, got, tc.want)
		}
	}
}

func TestGrievance_DeletableAt(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g := &Grievance{CreatedAt: created}

	if !g.DeletableAt(created.Add(299 * time.Second)) {
		t.Fatalf("expected deletable before the window closes")
	}
	if !g.DeletableAt(created.Add(300 * time.Second)) {
		t.Fatalf("expected deletable at exactly 300s (inclusive boundary)")
	}
	if g.DeletableAt(created.Add(301 * time.Second)) {
		t.Fatalf("expected not deletable past 300s")
	}
}

func TestUser_EffectiveRole(t *testing.T) {
	if got := (&User{Role: "", IsSuperuser: false}).EffectiveRole(); got != RoleStudent {
		t.Fatalf("empty role = %q, want student", got)
	}
	if got := (&User{Role: RoleAuthority}).EffectiveRole(); got != RoleAuthority {
		t.Fatalf("authority role = %q, want authority", got)
	}
	if got := (&User{Role: RoleStudent, IsSuperuser: true}).EffectiveRole(); got != RoleAdmin {
		t.Fatalf("superuser = %q, want admin override", got)
	}
}
