package orderbook

import "context"

// ReferenceList identifies one of the externally owned name lists used
// to populate selection inputs and validate order submissions.
type ReferenceList string

const (
	ReferenceListProducts  ReferenceList = "products"
	ReferenceListCompanies ReferenceList = "companies"
	ReferenceListBrands    ReferenceList = "brands"
)

// IsValid checks if the list name is a known ReferenceList
func (l ReferenceList) IsValid() bool {
	switch l {
	case ReferenceListProducts, ReferenceListCompanies, ReferenceListBrands:
		return true
	}
	return false
}

// OrderRepository is the narrow interface to the append-only order log.
// Append assigns the next monotonic order number atomically with the
// insert; the store serializes concurrent appends. Reads return full
// snapshots in insertion order and never block writers.
type OrderRepository interface {
	Append(ctx context.Context, order *Order) error
	FindAll(ctx context.Context) ([]Order, error)
	FindRecent(ctx context.Context, limit int) ([]Order, error)
	FindByNumber(ctx context.Context, number int64) (*Order, error)
	FindByProduct(ctx context.Context, product string) ([]Order, error)
	FindByCompany(ctx context.Context, company string) ([]Order, error)
	ExistsByNumber(ctx context.Context, number int64) (bool, error)
}

// DispatchRepository is the narrow interface to the append-only
// dispatch log.
type DispatchRepository interface {
	Append(ctx context.Context, dispatch *Dispatch) error
	FindAll(ctx context.Context) ([]Dispatch, error)
	FindByOrderNumber(ctx context.Context, orderNumber int64) ([]Dispatch, error)
}

// ReferenceListRepository reads the externally owned name lists.
type ReferenceListRepository interface {
	Names(ctx context.Context, list ReferenceList) ([]string, error)
}
