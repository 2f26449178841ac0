package jwthandling

import (
	"testing"
	"time"
)

func TestPatientUserTokenRoundTrip(t *testing.T) {
	secretKey := "test-sign-key"

	t.Run("valid token", func(t *testing.T) {
		tokenString, err := GenerateNewPatientUserToken(
			time.Minute,
			"user-1",
			"default-instance",
			ROLE_CAREGIVER,
			[]string{"patient-1", "patient-2"},
			secretKey,
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, valid, err := ValidatePatientUserToken(tokenString, secretKey)
		if err != nil || !valid {
			t.Fatalf("token should be valid, got valid=%t err=%v", valid, err)
		}
		if claims.Subject != "user-1" {
			t.Errorf("unexpected subject: %s", claims.Subject)
		}
		if claims.InstanceID != "default-instance" {
			t.Errorf("unexpected instanceID: %s", claims.InstanceID)
		}
		if claims.Role != ROLE_CAREGIVER {
			t.Errorf("unexpected role: %s", claims.Role)
		}
		if len(claims.LinkedPatientIDs) != 2 {
			t.Errorf("unexpected linked patients: %v", claims.LinkedPatientIDs)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		tokenString, err := GenerateNewPatientUserToken(
			time.Minute,
			"user-1",
			"default-instance",
			ROLE_PATIENT,
			nil,
			secretKey,
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, valid, err := ValidatePatientUserToken(tokenString, "other-key")
		if err == nil || valid {
			t.Error("token signed with other key should not validate")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		tokenString, err := GenerateNewPatientUserToken(
			-time.Minute,
			"user-1",
			"default-instance",
			ROLE_PATIENT,
			nil,
			secretKey,
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, valid, err := ValidatePatientUserToken(tokenString, secretKey)
		if err == nil || valid {
			t.Error("expired token should not validate")
		}
	})
}
