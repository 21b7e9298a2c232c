package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tutorly/lesson-booking/internal/models"
	"github.com/tutorly/lesson-booking/internal/service"
	"github.com/tutorly/lesson-booking/pkg/logger"
)

var errTest = errors.New("store down")

func newOrderHandler(lessons *fakeLessonRepo, orders *fakeOrderRepo) *OrderHandler {
	svc := service.NewOrderService(lessons, orders)
	return NewOrderHandler(svc, logger.New("error"))
}

func postOrder(t *testing.T, handler *OrderHandler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(raw))
	w := httptest.NewRecorder()
	handler.CreateOrder(w, req)
	return w
}

func TestCreateOrder_Created(t *testing.T) {
	orders := &fakeOrderRepo{}
	handler := newOrderHandler(&fakeLessonRepo{}, orders)

	w := postOrder(t, handler, models.OrderRequest{
		Name:      "Jane Doe",
		Phone:     "020 7946 0958",
		LessonIDs: []string{primitive.NewObjectID().Hex()},
		Spaces:    1,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["_id"] != orders.insertID.Hex() {
		t.Errorf("expected the inserted id %s, got %s", orders.insertID.Hex(), response["_id"])
	}
}

func TestCreateOrder_ValidationMessages(t *testing.T) {
	known := primitive.NewObjectID()

	tests := []struct {
		name    string
		request models.OrderRequest
		message string
	}{
		{
			name: "name too short beats bad phone",
			request: models.OrderRequest{
				Name:      "A",
				Phone:     "nope",
				LessonIDs: []string{known.Hex()},
				Spaces:    1,
			},
			message: "Name is required",
		},
		{
			name: "invalid phone",
			request: models.OrderRequest{
				Name:      "Jane Doe",
				Phone:     "nope",
				LessonIDs: []string{known.Hex()},
				Spaces:    1,
			},
			message: "Invalid phone number",
		},
		{
			name: "empty lesson ids",
			request: models.OrderRequest{
				Name:      "Jane Doe",
				Phone:     "020 7946 0958",
				LessonIDs: []string{},
				Spaces:    1,
			},
			message: "Invalid order payload",
		},
		{
			name: "non-positive spaces",
			request: models.OrderRequest{
				Name:      "Jane Doe",
				Phone:     "020 7946 0958",
				LessonIDs: []string{known.Hex()},
				Spaces:    0,
			},
			message: "Invalid order payload",
		},
		{
			name: "one real and one missing lesson",
			request: models.OrderRequest{
				Name:      "Jane Doe",
				Phone:     "020 7946 0958",
				LessonIDs: []string{known.Hex(), primitive.NewObjectID().Hex()},
				Spaces:    1,
			},
			message: "One or more lessons not found",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lessons := &fakeLessonRepo{existing: map[primitive.ObjectID]bool{known: true}}
			orders := &fakeOrderRepo{}
			handler := newOrderHandler(lessons, orders)

			w := postOrder(t, handler, tc.request)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}
			if got := decodeError(t, w); got != tc.message {
				t.Errorf("expected error %q, got %q", tc.message, got)
			}
			// A rejected order must never be partially inserted
			if orders.insertID != primitive.NilObjectID {
				t.Error("expected no order to be inserted")
			}
		})
	}
}

func TestCreateOrder_InvalidBody(t *testing.T) {
	handler := newOrderHandler(&fakeLessonRepo{}, &fakeOrderRepo{})

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"name": `))
	w := httptest.NewRecorder()
	handler.CreateOrder(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
	if got := decodeError(t, w); got != "Invalid request body" {
		t.Errorf("expected 'Invalid request body', got %q", got)
	}
}

func TestCreateOrder_StoreFailure(t *testing.T) {
	lessons := &fakeLessonRepo{}
	orders := &fakeOrderRepo{err: errTest}
	handler := newOrderHandler(lessons, orders)

	w := postOrder(t, handler, models.OrderRequest{
		Name:      "Jane Doe",
		Phone:     "020 7946 0958",
		LessonIDs: []string{primitive.NewObjectID().Hex()},
		Spaces:    1,
	})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
	if got := decodeError(t, w); got != "Internal Server Error" {
		t.Errorf("expected generic 500 message, got %q", got)
	}
}
