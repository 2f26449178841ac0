package permissionchecker

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"

	jwthandling "github.com/recuerda-health/recall-backend/pkg/jwt-handling"
)

func claimsFor(role string, uid string, linked []string) *jwthandling.PatientUserClaims {
	return &jwthandling.PatientUserClaims{
		Role:             role,
		LinkedPatientIDs: linked,
		RegisteredClaims: jwt.RegisteredClaims{Subject: uid},
	}
}

func TestHasPatientAccess(t *testing.T) {
	t.Run("patient on own id", func(t *testing.T) {
		if !HasPatientAccess(claimsFor(jwthandling.ROLE_PATIENT, "p1", nil), "p1") {
			t.Error("patient should access own id")
		}
	})

	t.Run("patient on other id", func(t *testing.T) {
		if HasPatientAccess(claimsFor(jwthandling.ROLE_PATIENT, "p1", nil), "p2") {
			t.Error("patient should not access other patients")
		}
	})

	t.Run("caregiver on linked patient", func(t *testing.T) {
		if !HasPatientAccess(claimsFor(jwthandling.ROLE_CAREGIVER, "c1", []string{"p1", "p2"}), "p2") {
			t.Error("caregiver should access linked patient")
		}
	})

	t.Run("doctor on unlinked patient", func(t *testing.T) {
		if HasPatientAccess(claimsFor(jwthandling.ROLE_DOCTOR, "d1", []string{"p1"}), "p3") {
			t.Error("doctor should not access unlinked patient")
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		if HasPatientAccess(claimsFor("admin", "a1", []string{"p1"}), "p1") {
			t.Error("unknown role should be denied")
		}
	})

	t.Run("nil claims", func(t *testing.T) {
		if HasPatientAccess(nil, "p1") {
			t.Error("nil claims should be denied")
		}
	})
}
