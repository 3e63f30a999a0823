package errors

import "fmt"

var (
	ErrWorkerPanic          = fmt.Errorf("worker panic")
	ErrNameTooShort         = fmt.Errorf("display name must contain at least 2 characters")
	ErrNameInvalid          = fmt.Errorf("display name contains control characters")
	ErrNameTaken            = fmt.Errorf("display name already in use")
	ErrAlreadyAuthenticated = fmt.Errorf("connection already bound to a display name")
	ErrNotAuthenticated     = fmt.Errorf("connection is not authenticated")
	ErrNotAuthor            = fmt.Errorf("only the original sender may modify a message")
	ErrMessageNotFound      = fmt.Errorf("message not found")
	ErrUnsupportedMedia     = fmt.Errorf("unsupported media payload")
	ErrEmptyWords           = fmt.Errorf("no words have been found")
)
