package dto

// DashboardStatsDTO считается с нуля на каждый запрос полным сканом коллекций.
type DashboardStatsDTO struct {
	ActiveOrders   int     `json:"active_orders"`
	Revenue        float64 `json:"revenue"`
	LowStock       int     `json:"low_stock"`
	CompletedToday int     `json:"completed_today"`
}
