package api

import "github.com/gutsafe/gutsafe-api/store"

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1101: "account not found",

		1400: "symptom log not found",
		1401: store.ErrInvalidDataFormat.Error(),
		1402: store.ErrEmptySymptom.Error(),
		1403: "unknown report period",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountNotFound = errorJSON(1101)

	errorSymptomLogNotFound = errorJSON(1400)
	errorInvalidDataFormat  = errorJSON(1401)
	errorEmptySymptom       = errorJSON(1402)
	errorUnknownPeriod      = errorJSON(1403)
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
