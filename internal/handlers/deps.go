package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/GregMSThompson/ledger-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	UserSvc         UserService
	BookSvc         bookService
	EntrySvc        entryService
	TagSvc          tagService
	Firebase        *auth.Client
	MaxUploadBytes  int64
}
