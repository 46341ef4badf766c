package errs

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FromFirestore maps a Firestore failure onto the error taxonomy. notFound is used
// as the message when the document does not exist.
func FromFirestore(operation, message, notFound string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return NewExternalServiceError("firestore", message, true, err)
	}

	switch status.Code(err) {
	case codes.NotFound:
		return NewNotFoundError(notFound)
	case codes.PermissionDenied:
		return NewPermissionDeniedError("permission denied")
	case codes.Unauthenticated:
		return NewNotAuthenticatedError("not authenticated")
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted, codes.Aborted:
		return NewExternalServiceError("firestore", message, true, err)
	default:
		return NewDatabaseError(operation, message, err)
	}
}
