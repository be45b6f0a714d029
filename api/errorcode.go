package api

import "github.com/placeloop/placeloop-api/store"

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "this email has been registered or has been taken",
		1101: "account not found",
		1102: "invalid email or password",

		1200: store.ErrLocationNotFound.Error(),
		1201: "invalid location id",

		1300: store.ErrReviewNotFound.Error(),
		1301: "invalid review id",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorEmailTaken         = errorJSON(1100)
	errorAccountNotFound    = errorJSON(1101)
	errorInvalidCredentials = errorJSON(1102)

	errorLocationNotFound  = errorJSON(1200)
	errorInvalidLocationID = errorJSON(1201)

	errorReviewNotFound  = errorJSON(1300)
	errorInvalidReviewID = errorJSON(1301)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
