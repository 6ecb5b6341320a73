package orders

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

func (orm *OrderRoutesManager) DateSummary(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if date == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("Date path parameter is required."),
			gecho.Send(),
		)
		return
	}

	summary, err := orm.orderService.DateSummary(r.Context(), date)
	if err != nil {
		orm.writeServiceError(w, err, "Failed to build date summary")
		return
	}

	gecho.Success(w,
		gecho.WithData(summary),
		gecho.Send(),
	)
}
