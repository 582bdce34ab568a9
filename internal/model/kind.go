package model

import "fmt"

// Kind names an entity set managed by the immo service
type Kind string

const (
	KindBroker           Kind = "broker"
	KindCustomer         Kind = "customer"
	KindHouse            Kind = "house"
	KindApartment        Kind = "apartment"
	KindRentalContract   Kind = "rental_contract"
	KindPurchaseContract Kind = "purchase_contract"
)

// Kinds returns every entity kind in a stable order
func Kinds() []Kind {
	return []Kind{
		KindBroker,
		KindCustomer,
		KindHouse,
		KindApartment,
		KindRentalContract,
		KindPurchaseContract,
	}
}

// ParseKind maps a kind name to its Kind
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown entity kind %q", name)
}

// ModelTypeRegistry maps each kind to a zero value of its model
var ModelTypeRegistry = map[Kind]any{
	KindBroker:           Broker{},
	KindCustomer:         Customer{},
	KindHouse:            House{},
	KindApartment:        Apartment{},
	KindRentalContract:   RentalContract{},
	KindPurchaseContract: PurchaseContract{},
}
