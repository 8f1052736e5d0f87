package models

// All lists every model managed by the schema, in dependency order.
func All() []any {
	return []any{
		&District{},
		&Organization{},
		&Buyer{},
		&Building{},
		&Auction{},
		&BuildingAuction{},
		&BuyerAuction{},
		&Privatized{},
	}
}
