package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/ledger-backend/internal/bootstrap"
	"github.com/GregMSThompson/ledger-backend/internal/config"
	"github.com/GregMSThompson/ledger-backend/internal/handlers"
	"github.com/GregMSThompson/ledger-backend/internal/response"
	"github.com/GregMSThompson/ledger-backend/internal/router"
	"github.com/GregMSThompson/ledger-backend/internal/services"
	"github.com/GregMSThompson/ledger-backend/internal/store"
	"github.com/GregMSThompson/ledger-backend/internal/validation"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// amounts go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	ustore := store.NewUserStore(bs.Firestore)
	bkstore := store.NewBookStore(bs.Firestore)
	enstore := store.NewEntryStore(bs.Firestore)
	tgstore := store.NewTagStore(bs.Firestore)
	atstore := store.NewAttachmentStore(bs.Bucket)

	// services
	v := validation.New()
	userv := services.NewUserService(ustore, v)
	bkserv := services.NewBookService(bkstore, enstore, tgstore, atstore, v, cfg.Location)
	enserv := services.NewEntryService(bkstore, enstore, tgstore, atstore, v)
	tgserv := services.NewTagService(tgstore)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.UserSvc = userv
	deps.BookSvc = bkserv
	deps.EntrySvc = enserv
	deps.TagSvc = tgserv
	deps.MaxUploadBytes = cfg.MaxUploadBytes

	// router
	r := router.NewRouter(deps, cfg.AllowedOrigins)
	bs.Log.Info("server starting", "port", cfg.Port)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
