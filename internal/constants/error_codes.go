package constants

// Service Error Codes
// These constants classify service-layer failures so the API layer can map
// them to HTTP statuses without string matching.

// Lookup errors
const (
	ErrCodeWingNotFound          = "WING_NOT_FOUND"
	ErrCodePilotNotFound         = "PILOT_NOT_FOUND"
	ErrCodeSkillNotFound         = "SKILL_NOT_FOUND"
	ErrCodeQualificationNotFound = "QUALIFICATION_NOT_FOUND"
)

// Authorization errors
const (
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeWrongWing    = "WRONG_WING"
	ErrCodeUnauthorized = "UNAUTHORIZED"
)

// Request validation errors
const (
	ErrCodeBatchTooLarge = "BATCH_TOO_LARGE"
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeInvalidStatus = "INVALID_STATUS"
)

// Conflict / infrastructure errors
const (
	ErrCodeDuplicateName = "DUPLICATE_NAME"
	ErrCodeStoreFailure  = "STORE_FAILURE"
)

// Human-readable messages corresponding to error codes

var ServiceErrorMessages = map[string]string{
	ErrCodeWingNotFound:          "Wing not found",
	ErrCodePilotNotFound:         "Pilot not found",
	ErrCodeSkillNotFound:         "Skill not found",
	ErrCodeQualificationNotFound: "Qualification not found",

	ErrCodeForbidden:    "You do not have permission to perform this action",
	ErrCodeWrongWing:    "Resource does not belong to your wing",
	ErrCodeUnauthorized: "Authentication required",

	ErrCodeBatchTooLarge: "Import batch exceeds the maximum of 1000 records",
	ErrCodeBadRequest:    "Malformed request",
	ErrCodeInvalidStatus: "Invalid qualification status",

	ErrCodeDuplicateName: "A record with that name already exists",
	ErrCodeStoreFailure:  "Database operation failed, nothing was committed",
}

// GetErrorMessage returns the canonical message for a code, or the code
// itself when no mapping exists.
func GetErrorMessage(code string) string {
	if msg, ok := ServiceErrorMessages[code]; ok {
		return msg
	}
	return code
}
