package domain

// ItemStats aggregates orders placed against a single menu item.
type ItemStats struct {
	Name    string `json:"name"`
	Orders  int    `json:"orders"`
	Revenue int64  `json:"revenue"`
}

// Stats is the summary returned by GET /api/stats. OrdersByStatus always
// carries all six statuses, zero when no order holds that status.
type Stats struct {
	TotalOrders    int                 `json:"totalOrders"`
	TotalRevenue   int64               `json:"totalRevenue"`
	OrdersByStatus map[OrderStatus]int `json:"ordersByStatus"`
	PopularItems   []ItemStats         `json:"popularItems"`
}
