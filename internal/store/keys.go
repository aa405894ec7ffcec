package store

// Storage keys, one JSON document each.
const (
	KeyClients      = "autoprime_clients"
	KeyVehicles     = "autoprime_vehicles"
	KeyInventory    = "autoprime_inventory"
	KeyOrders       = "autoprime_serviceOrders"
	KeyRules        = "autoprime_maintenanceRules"
	KeyTransactions = "autoprime_transactions"
	KeyLogs         = "autoprime_logs"
	KeyCurrentView  = "autoprime_currentView"
)

// Keys returns every key the store reads and writes.
func Keys() []string {
	return []string{
		KeyClients, KeyVehicles, KeyInventory, KeyOrders,
		KeyRules, KeyTransactions, KeyLogs, KeyCurrentView,
	}
}
