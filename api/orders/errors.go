package orders

import (
	"errors"
	"net/http"
	"ordertrack_server/lib"

	"github.com/MonkyMars/gecho"
)

// writeServiceError translates the error taxonomy into the wire contract:
// invalid input 400, no match 404, everything else (storage included) 500.
// Callers only ever see a short summary string, never engine internals.
func (orm *OrderRoutesManager) writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, lib.ErrInvalidInput):
		gecho.BadRequest(w,
			gecho.WithMessage(err.Error()),
			gecho.Send(),
		)
	case errors.Is(err, lib.ErrNotFound):
		gecho.NotFound(w,
			gecho.WithMessage("No matching order found"),
			gecho.Send(),
		)
	default:
		orm.logger.Error(fallback, gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage(fallback),
			gecho.Send(),
		)
	}
}
