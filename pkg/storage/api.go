package storage

// ApiStore defines the read operations needed by the admin API.
// Every write goes through the settlement service instead.
type ApiStore interface {
	WalletReader
	TransactionReader
}
