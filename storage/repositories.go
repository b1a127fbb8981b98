package storage

// Repositories bundles every repository over one Store. Built once at startup
// and handed to the controllers.
type Repositories struct {
	Store       Store
	Orders      *OrderRepository
	Markets     *MarketRepository
	MarketSales *MarketSaleRepository
	Expenses    *ExpenseRepository
	Profile     *ProfileRepository
	Settings    *SettingsRepository
	Counter     *InvoiceCounter
}

func NewRepositories(store Store) *Repositories {
	counter := NewInvoiceCounter(store)
	return &Repositories{
		Store:       store,
		Orders:      NewOrderRepository(store, counter),
		Markets:     NewMarketRepository(store),
		MarketSales: NewMarketSaleRepository(store),
		Expenses:    NewExpenseRepository(store),
		Profile:     NewProfileRepository(store),
		Settings:    NewSettingsRepository(store),
		Counter:     counter,
	}
}
