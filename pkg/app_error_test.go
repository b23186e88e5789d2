package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPError(t *testing.T) {
	cause := errors.New("dynamodb timeout")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected wrapped cause to be reachable")
	}
	if !appErr.IsServerError() {
		t.Fatalf("expected server error")
	}

	body := appErr.ToHTTPError()
	if body.Success || body.Code != "INTERNAL_ERROR" || body.Error != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Details != nil {
		t.Fatalf("expected no details, got %v", body.Details)
	}
}

func TestAppError_WithDetails(t *testing.T) {
	base := NewDomainErrorSimple("VALIDATION_FAILED", "Validação falhou", http.StatusBadRequest)
	withDetails := base.WithDetails(map[string][]string{"ordem_niveis": {"required"}})

	if base.Details != nil {
		t.Fatalf("base error must not be mutated")
	}
	if got := withDetails.ToHTTPError().Details["ordem_niveis"]; len(got) != 1 || got[0] != "required" {
		t.Fatalf("unexpected details: %v", got)
	}
	if withDetails.IsServerError() {
		t.Fatalf("400 is not a server error")
	}
	if withDetails.Error() != "Validação falhou" {
		t.Fatalf("unexpected message %q", withDetails.Error())
	}
}
