package orders

import (
	"net/http"
	"time"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := orm.orderService.Dashboard(r.Context(), time.Now())
	if err != nil {
		orm.writeServiceError(w, err, "Failed to build dashboard")
		return
	}

	gecho.Success(w,
		gecho.WithData(dashboard),
		gecho.Send(),
	)
}
