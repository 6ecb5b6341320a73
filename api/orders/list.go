package orders

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) ListOrders(w http.ResponseWriter, r *http.Request) {
	ordersList, err := orm.orderService.ListOrders(r.Context())
	if err != nil {
		orm.writeServiceError(w, err, "Failed to fetch orders")
		return
	}

	gecho.Success(w,
		gecho.WithData(ordersList),
		gecho.Send(),
	)
}
