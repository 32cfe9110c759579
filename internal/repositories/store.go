package repositories

import "context"

// Ключи коллекций в блоб-хранилище. Под каждым ключом лежит
// JSON-массив записей целиком, частичных записей не бывает.
const (
	CollectionClients = "rf_clients"
	CollectionParts   = "rf_parts"
	CollectionOrders  = "rf_orders"
)

// BlobStoreInterface - плоское key-value хранилище трёх коллекций.
// Get отдаёт сырой JSON-массив; отсутствующая коллекция засевается
// стартовыми данными. Set перезаписывает коллекцию целиком.
type BlobStoreInterface interface {
	Get(ctx context.Context, collection string) ([]byte, error)
	Set(ctx context.Context, collection string, data []byte) error
}
