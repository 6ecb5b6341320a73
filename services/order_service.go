package services

import (
	"context"
	"fmt"
	"ordertrack_server/aggregate"
	"ordertrack_server/lib"
	"ordertrack_server/storage"
	"ordertrack_server/structs"
	"ordertrack_server/structs/tables"
	"sort"
	"strconv"
	"time"

	"github.com/MonkyMars/gecho"
)

// OrderService orchestrates validation, the storage backend and the
// aggregation engine. It owns no state beyond its collaborators.
type OrderService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	store  storage.OrderStorage
}

func NewOrderService(logger *gecho.Logger, cfg *structs.Config, store storage.OrderStorage) *OrderService {
	return &OrderService{
		logger: logger,
		cfg:    cfg,
		store:  store,
	}
}

// CreateOrders validates and inserts a batch of order drafts. Same-key
// drafts within the batch are merged before insertion; the returned
// count is what actually reached storage.
func (os *OrderService) CreateOrders(ctx context.Context, drafts []structs.OrderDraft) (int, error) {
	if len(drafts) == 0 {
		return 0, fmt.Errorf("%w: empty order batch", lib.ErrInvalidInput)
	}
	for i, d := range drafts {
		if d.Client == "" || d.Product == "" || d.Date == "" {
			return 0, fmt.Errorf("%w: draft %d is missing client, product or date", lib.ErrInvalidInput, i)
		}
	}

	orders := MergeDrafts(drafts)

	count, err := os.store.InsertMany(ctx, orders)
	if err != nil {
		return 0, err
	}

	os.logger.Info("Orders inserted",
		gecho.Field("submitted", len(drafts)),
		gecho.Field("inserted", count))
	return count, nil
}

// MergeDrafts collapses drafts sharing an identity triple: quantities
// accumulate, the last non-empty price wins, and a draft without any
// price materializes as unpriced. Input order of first appearance is
// preserved.
func MergeDrafts(drafts []structs.OrderDraft) []tables.Order {
	merged := make([]tables.Order, 0, len(drafts))
	index := make(map[structs.OrderKey]int, len(drafts))

	for _, d := range drafts {
		key := structs.OrderKey{Client: d.Client, Product: d.Product, Date: d.Date}

		if i, ok := index[key]; ok {
			quantity := structs.ParseQuantity(merged[i].Quantity) + structs.ParseQuantity(d.Quantity)
			merged[i].Quantity = strconv.Itoa(quantity)
			if d.Price != "" {
				merged[i].Price = d.Price
			}
			continue
		}

		price := d.Price
		if price == "" {
			price = structs.UnpricedSentinel
		}

		index[key] = len(merged)
		merged = append(merged, tables.Order{
			Client:   d.Client,
			Product:  d.Product,
			Quantity: d.Quantity,
			Price:    price,
			Date:     d.Date,
		})
	}

	return merged
}

// ListOrders returns the raw record set; grouping is the caller's choice.
func (os *OrderService) ListOrders(ctx context.Context) ([]tables.Order, error) {
	return os.store.FindAll(ctx)
}

// UpdateOrder patches quantity/price on every record matching the
// identity triple. Zero matches maps to not found.
func (os *OrderService) UpdateOrder(ctx context.Context, req *structs.UpdateOrderRequest) error {
	if req.Client == "" || req.Product == "" || req.Date == "" {
		return fmt.Errorf("%w: missing required fields (client, product, date)", lib.ErrInvalidInput)
	}

	key := structs.OrderKey{Client: req.Client, Product: req.Product, Date: req.Date}
	patch := structs.OrderPatch{Quantity: req.Quantity, Price: req.Price}

	matched, err := os.store.UpdateByKey(ctx, key, patch)
	if err != nil {
		return err
	}
	if matched == 0 {
		return fmt.Errorf("%w: no order matches client %q, product %q, date %q", lib.ErrNotFound, req.Client, req.Product, req.Date)
	}

	os.logger.Info("Order updated",
		gecho.Field("client", req.Client),
		gecho.Field("product", req.Product),
		gecho.Field("date", req.Date),
		gecho.Field("matched", matched))
	return nil
}

// DeleteOrder removes every record matching the identity triple. Zero
// deletions maps to not found.
func (os *OrderService) DeleteOrder(ctx context.Context, req *structs.DeleteOrderRequest) error {
	if req.Client == "" || req.Product == "" || req.Date == "" {
		return fmt.Errorf("%w: missing required fields (client, product, date)", lib.ErrInvalidInput)
	}

	key := structs.OrderKey{Client: req.Client, Product: req.Product, Date: req.Date}

	deleted, err := os.store.DeleteByKey(ctx, key)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: no order matches client %q, product %q, date %q", lib.ErrNotFound, req.Client, req.Product, req.Date)
	}

	os.logger.Info("Order deleted",
		gecho.Field("client", req.Client),
		gecho.Field("product", req.Product),
		gecho.Field("date", req.Date),
		gecho.Field("deleted", deleted))
	return nil
}

// DateSummary builds the receipt view for one business date: per-client
// line items with poisoning totals, plus the grand total over all
// clients on that date.
func (os *OrderService) DateSummary(ctx context.Context, date string) (*structs.DateSummaryResponse, error) {
	if date == "" {
		return nil, fmt.Errorf("%w: missing date", lib.ErrInvalidInput)
	}

	orders, err := os.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := orders[:0:0]
	for _, o := range orders {
		if o.Date == date {
			filtered = append(filtered, o)
		}
	}

	groups := aggregate.GroupByClientAndDate(filtered)

	clients := make([]structs.ClientSummaryView, 0, len(groups))
	totals := make([]aggregate.Total, 0, len(groups))
	for key, items := range groups {
		total := aggregate.ClientTotal(items)
		totals = append(totals, total)

		views := make([]structs.OrderLineView, len(items))
		for i, item := range items {
			views[i] = structs.OrderLineView{
				Product:  item.Product,
				Quantity: item.Quantity,
				Price:    item.Price.String(),
			}
		}
		clients = append(clients, structs.ClientSummaryView{
			Client: key.Client,
			Items:  views,
			Total:  total.String(),
		})
	}

	// Map iteration order is random; keep the response stable.
	sort.Slice(clients, func(i, j int) bool { return clients[i].Client < clients[j].Client })

	return &structs.DateSummaryResponse{
		Date:       date,
		Clients:    clients,
		GrandTotal: aggregate.GrandTotal(totals).String(),
	}, nil
}

// Dashboard computes the rollup figures and the per-date totals index.
func (os *OrderService) Dashboard(ctx context.Context, now time.Time) (*structs.DashboardResponse, error) {
	orders, err := os.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rollup := aggregate.Rollups(orders, now)

	index := aggregate.DateIndex(orders)
	dateTotals := make(map[string]string, len(index))
	for date, total := range index {
		dateTotals[date] = total.String()
	}

	return &structs.DashboardResponse{
		MonthTotal: rollup.MonthTotal,
		WeekTotal:  rollup.WeekTotal,
		DateTotals: dateTotals,
	}, nil
}
