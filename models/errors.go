package models

// Typed errors returned by the service layer. The HTTP helper maps each type
// to a status code; Message is what the client sees.

type ErrorInvalidInput struct{ Message string }

func (e ErrorInvalidInput) Error() string { return e.Message }

type ErrorUnauthorized struct{ Message string }

func (e ErrorUnauthorized) Error() string { return e.Message }

type ErrorForbidden struct{ Message string }

func (e ErrorForbidden) Error() string { return e.Message }

type ErrorNotFound struct{ Message string }

func (e ErrorNotFound) Error() string { return e.Message }

type ErrorConflict struct{ Message string }

func (e ErrorConflict) Error() string { return e.Message }

// ErrorInternalServer carries a client-safe message and the underlying cause,
// which is only logged.
type ErrorInternalServer struct {
	Message string
	Err     error
}

func (e ErrorInternalServer) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e ErrorInternalServer) Unwrap() error { return e.Err }

const (
	MsgInvalidBody        = "Invalid Body Request"
	MsgInvalidItemID      = "Invalid Item id Provided"
	MsgInvalidUserID      = "Invalid User id Provided"
	MsgInvalidStatus      = "Invalid User status Provided"
	MsgItemNotFound       = "Item not Found!"
	MsgUserNotFound       = "User not Found!"
	MsgAccountNotFound    = "User not Found"
	MsgPasswordTooLong    = "Password must be at most 72 bytes"
	MsgAuthorNotFound     = "Post author not Found!"
	MsgForbidden          = "Forbidden Request"
	MsgAuthFailed         = "Authentication failed!"
	MsgInvalidCredentials = "Invalid Credentials"
	MsgUserExists         = "User already exists!"
	MsgInactiveUser       = "User account is inactive"
	MsgNothingUpdated     = "Nothing Updated"
	MsgDeleteFailed       = "Failed to Delete post"
	MsgServerError        = "Server side error occurred"
	MsgTooManyRequests    = "Too many requests, try again later"
)
