package orders

import (
	"net/http"
	"ordertrack_server/lib"
	"ordertrack_server/structs"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) CreateOrders(w http.ResponseWriter, r *http.Request) {
	drafts, err := lib.ExtractAndValidateBody[[]structs.OrderDraft](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid or empty orders array."),
			gecho.Send(),
		)
		return
	}

	count, err := orm.orderService.CreateOrders(r.Context(), *drafts)
	if err != nil {
		orm.writeServiceError(w, err, "Failed to insert orders")
		return
	}

	gecho.Created(w,
		gecho.WithMessage("Orders inserted successfully!"),
		gecho.WithData(map[string]any{"inserted_count": count}),
		gecho.Send(),
	)
}
