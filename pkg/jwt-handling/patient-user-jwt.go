package jwthandling

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// user roles encoded in tokens
const (
	ROLE_PATIENT   = "patient"
	ROLE_CAREGIVER = "caregiver"
	ROLE_DOCTOR    = "doctor"
)

// Information a token encodes. Subject is the user id; for caregivers
// and doctors, LinkedPatientIDs lists the patients they may act on.
type PatientUserClaims struct {
	InstanceID       string   `json:"instance_id,omitempty"`
	Role             string   `json:"role,omitempty"`
	LinkedPatientIDs []string `json:"linked_patient_ids,omitempty"`
	jwt.RegisteredClaims
}

func GenerateNewPatientUserToken(
	expiresIn time.Duration,
	id string,
	instanceID string,
	role string,
	linkedPatientIDs []string,
	secretKey string,
) (tokenString string, err error) {
	claims := PatientUserClaims{
		instanceID,
		role,
		linkedPatientIDs,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   id,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err = token.SignedString([]byte(secretKey))
	return
}

func ValidatePatientUserToken(tokenString string, secretKey string) (claims *PatientUserClaims, valid bool, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &PatientUserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if token == nil {
		return
	}
	claims, valid = token.Claims.(*PatientUserClaims)
	valid = valid && token.Valid
	return
}
