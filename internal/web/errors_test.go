package web

import (
	"testing"

	"factorypro-backend/internal/engine"

	"github.com/gofiber/fiber/v2"
)

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&engine.ValidationError{Fields: []string{"Date"}}, fiber.StatusBadRequest},
		{&engine.NotFoundError{Kind: "silo", ID: "12"}, fiber.StatusNotFound},
		{&engine.InUseError{Name: "PS Beads"}, fiber.StatusConflict},
		{&engine.InsufficientStockError{Source: "Silo 5", Available: 30, Requested: 40, Unit: "kg"}, fiber.StatusConflict},
		{&engine.CapacityExceededError{SiloID: 5, Current: 580, Requested: 30}, fiber.StatusConflict},
		{&engine.AlreadyInitializedError{Pool: "silo"}, fiber.StatusConflict},
	}
	for _, c := range cases {
		fe, ok := Error(c.err).(*fiber.Error)
		if !ok {
			t.Fatalf("Error(%T) did not return a fiber error", c.err)
		}
		if fe.Code != c.want {
			t.Errorf("Error(%T) status = %d, want %d", c.err, fe.Code, c.want)
		}
		if fe.Message != c.err.Error() {
			t.Errorf("Error(%T) message = %q, want the engine message verbatim", c.err, fe.Message)
		}
	}
}

func TestUnknownErrorHidesDetail(t *testing.T) {
	fe, ok := Error(fiber.ErrTeapot).(*fiber.Error)
	if !ok {
		t.Fatal("Error did not return a fiber error")
	}
	if fe.Code != fiber.StatusInternalServerError {
		t.Errorf("status = %d, want 500", fe.Code)
	}
	if fe.Message != "Unexpected server error" {
		t.Errorf("message = %q, want generic", fe.Message)
	}
}
