package constvars

// Validation messages for clients, mapped by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"numeric":  "must be a number",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"url":      "must be a valid URL",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientBlockGone                     = "this recommendation is no longer available, please reload"
	ErrClientCommitPending                 = "a previous submission is still being processed"
	ErrClientInvalidBloodPressure          = "blood pressure must look like 120/80"
	ErrClientInvalidReadingTime            = "reading time must look like 7:05 pm"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevValidationFailed       = "validation failed"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotParseForm        = "cannot parse form body"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerProcess          = "internal server error"
	ErrDevMissingRequestID       = "request ID not found in context"

	// Parse messages
	ErrDevParseBloodPressure = "blood pressure string does not match {systolic}/{diastolic}"
	ErrDevParseClockTime     = "clock string does not match h:mm am|pm"

	// Block state messages
	ErrDevBlockNotFound        = "block not found in state store"
	ErrDevBlockStaleGeneration = "block belongs to a replaced render generation"
	ErrDevBlockWrongKind       = "block kind does not support this operation"
	ErrDevBlockCommitPending   = "another commit is already in flight for this block"
	ErrDevBlockNoSuchChoice    = "selection index out of range"
	ErrDevBlockNoSuchAction    = "action index out of range"

	// COACH backend messages
	ErrDevCoachCreateResource = "COACH backend rejected %s create"
	ErrDevCoachUpdateResource = "COACH backend rejected %s update"
	ErrDevCoachGetResource    = "failed to get %s from COACH backend"
	ErrDevCoachDecodeResponse = "failed to decode %s response from COACH backend"

	// Redis messages
	ErrDevRedisGetNoData      = "no data found in redis for key %s"
	ErrDevRedisGetData        = "failed to get data from redis"
	ErrDevRedisSetData        = "failed to set data into redis"
	ErrDevRedisDeleteData     = "failed to delete data from redis"
	ErrDevRedisSAdd           = "failed to add member to redis set"
	ErrDevRedisSMembers       = "failed to read redis set members"
)
