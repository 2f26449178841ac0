package permissionchecker

import (
	jwthandling "github.com/recuerda-health/recall-backend/pkg/jwt-handling"
)

// HasPatientAccess decides if the token holder may act on the given
// patient: patients only on themselves, caregivers and doctors only on
// patients they are linked with.
func HasPatientAccess(claims *jwthandling.PatientUserClaims, patientID string) bool {
	if claims == nil || patientID == "" {
		return false
	}

	switch claims.Role {
	case jwthandling.ROLE_PATIENT:
		return claims.Subject == patientID
	case jwthandling.ROLE_CAREGIVER, jwthandling.ROLE_DOCTOR:
		for _, linkedID := range claims.LinkedPatientIDs {
			if linkedID == patientID {
				return true
			}
		}
	}
	return false
}
