package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/lixenwraith/void-shooter/shop"
	"github.com/lixenwraith/void-shooter/store"
)

// listAbilities prints the catalog with ownership and the coin balance
func listAbilities(w io.Writer, catalog *shop.Catalog, st *store.Store) error {
	owned := st.Purchases()
	fmt.Fprintf(w, "Coins: %d\n\n", st.Coins())

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tSTATUS")
	for _, a := range catalog.Abilities() {
		status := fmt.Sprintf("%d COINS", a.Price)
		if owned[a.ID] {
			status = "OWNED"
		}
		name := a.Name
		if !a.Implemented {
			name += " (inactive)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", a.ID, name, a.Price, status)
	}
	return tw.Flush()
}

// buyAbility purchases id and persists coins and purchases
func buyAbility(w io.Writer, catalog *shop.Catalog, st *store.Store, id string) error {
	purchases := st.Purchases()
	before := st.Coins()
	wasOwned := purchases[id]

	coins, err := catalog.Buy(id, before, purchases)
	if err != nil {
		return err
	}
	if wasOwned {
		fmt.Fprintf(w, "%s already owned\n", id)
		return nil
	}

	if coins != before {
		if err := st.SetCoins(coins); err != nil {
			return err
		}
	}
	if err := st.SavePurchases(purchases); err != nil {
		return err
	}
	fmt.Fprintf(w, "Bought %s, %d coins left\n", id, coins)
	return nil
}
