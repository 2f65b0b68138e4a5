package schedule

import (
	"reflect"
	"testing"

	"barbershop-app-server/internal/models"
)

var (
	owner = models.User{BaseModel: models.BaseModel{ID: "1"}, Name: "Owner Admin", Role: models.RoleOwner}
	john  = models.User{BaseModel: models.BaseModel{ID: "2"}, Name: "Barber John", Role: models.RoleBarber, Color: "#22c55e"}
	jane  = models.User{BaseModel: models.BaseModel{ID: "3"}, Name: "Barber Jane", Role: models.RoleBarber}
)

func testAppointments() []models.Appointment {
	return []models.Appointment{
		{BaseModel: models.BaseModel{ID: "a1"}, Title: "Haircut - Mike", BarberID: "2", ClientName: "Mike"},
		{BaseModel: models.BaseModel{ID: "a2"}, Title: "Beard Trim - Alex", BarberID: "3", ClientName: "Alex"},
		{BaseModel: models.BaseModel{ID: "a3"}, Title: "Haircut - Sam", BarberID: "2", ClientName: "Sam"},
	}
}

func TestVisibleAppointmentsOwnerSeesAll(t *testing.T) {
	all := testAppointments()
	got := VisibleAppointments(all, owner)
	if !reflect.DeepEqual(got, all) {
		t.Fatalf("owner should see the full list unchanged, got %+v", got)
	}
}

func TestVisibleAppointmentsBarberSeesOwn(t *testing.T) {
	got := VisibleAppointments(testAppointments(), john)
	if len(got) != 2 {
		t.Fatalf("expected 2 appointments for barber 2, got %d", len(got))
	}
	for _, a := range got {
		if a.BarberID != john.ID {
			t.Fatalf("barber must only see own appointments, got %+v", a)
		}
	}
}

func TestVisibleAppointmentsUnknownRole(t *testing.T) {
	stranger := models.User{BaseModel: models.BaseModel{ID: "9"}, Role: models.Role("ghost")}
	if got := VisibleAppointments(testAppointments(), stranger); len(got) != 0 {
		t.Fatalf("unknown role should see nothing, got %+v", got)
	}
}

func TestVisibleBarbers(t *testing.T) {
	staff := []models.User{owner, john, jane}

	forOwner := VisibleBarbers(staff, owner)
	if len(forOwner) != 2 {
		t.Fatalf("owner should see both barbers, got %+v", forOwner)
	}
	for _, u := range forOwner {
		if u.Role != models.RoleBarber {
			t.Fatalf("the owner itself is not assignable, got %+v", u)
		}
	}

	forJane := VisibleBarbers(staff, jane)
	if len(forJane) != 1 || forJane[0].ID != jane.ID {
		t.Fatalf("a barber should see only itself, got %+v", forJane)
	}
}
