package slots

import "github.com/SergeyBogomolovv/fulfillment-service/internal/entities"

// Occupancy backs the manual slot picker.
type Occupancy struct {
	Drawer    entities.StorageDrawer
	Used      int
	FreeSlots []string
}

func DrawerOccupancy(orders []entities.Order, drawers []entities.StorageDrawer) []Occupancy {
	occupied := OccupiedSlots(orders)

	res := make([]Occupancy, 0, len(drawers))
	for _, d := range drawers {
		occ := Occupancy{Drawer: d, Used: len(storedIn(d.Name, orders)), FreeSlots: []string{}}
		for i := 1; i <= d.Capacity; i++ {
			addr := entities.SlotAddress(d.Name, i)
			if _, ok := occupied[addr]; !ok {
				occ.FreeSlots = append(occ.FreeSlots, addr)
			}
		}
		res = append(res, occ)
	}
	return res
}
