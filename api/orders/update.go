package orders

import (
	"net/http"
	"ordertrack_server/lib"
	"ordertrack_server/structs"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	req, err := lib.ExtractAndValidateBody[structs.UpdateOrderRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid update request body."),
			gecho.Send(),
		)
		return
	}

	if err := orm.orderService.UpdateOrder(r.Context(), req); err != nil {
		orm.writeServiceError(w, err, "Failed to update order")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order updated successfully!"),
		gecho.Send(),
	)
}
