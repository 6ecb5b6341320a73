package orders

import (
	"net/http"
	"ordertrack_server/lib"
	"ordertrack_server/structs"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	req, err := lib.ExtractAndValidateBody[structs.DeleteOrderRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid delete request body."),
			gecho.Send(),
		)
		return
	}

	if err := orm.orderService.DeleteOrder(r.Context(), req); err != nil {
		orm.writeServiceError(w, err, "Failed to delete order")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order deleted successfully!"),
		gecho.Send(),
	)
}
