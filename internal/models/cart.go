package models

// Cart and wishlist mutations operate on the slices embedded in a User
// document. They never mutate their input; callers persist the returned
// slice with a single update. Both arrays keep at most one entry per
// product id.

// AddCartItem increments the quantity of an existing entry or appends a new
// one at the end.
func AddCartItem(items []CartItem, productID string, quantity int) []CartItem {
	out := make([]CartItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ProductID == productID {
			out[i].Quantity += quantity
			return out
		}
	}
	return append(out, CartItem{ProductID: productID, Quantity: quantity})
}

// SetCartQuantity overwrites the quantity of an existing entry. The second
// return is false when the product is not in the cart.
func SetCartQuantity(items []CartItem, productID string, quantity int) ([]CartItem, bool) {
	out := make([]CartItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ProductID == productID {
			out[i].Quantity = quantity
			return out, true
		}
	}
	return items, false
}

// RemoveCartItem deletes the entry for productID, preserving the order of
// the rest. The second return is false when the product is not in the cart.
func RemoveCartItem(items []CartItem, productID string) ([]CartItem, bool) {
	for i := range items {
		if items[i].ProductID == productID {
			out := make([]CartItem, 0, len(items)-1)
			out = append(out, items[:i]...)
			out = append(out, items[i+1:]...)
			return out, true
		}
	}
	return items, false
}

// AddWishListItem appends productID unless it is already present; the second
// return is false on a duplicate and the input is returned unchanged.
func AddWishListItem(list []string, productID string) ([]string, bool) {
	for _, id := range list {
		if id == productID {
			return list, false
		}
	}
	out := make([]string, 0, len(list)+1)
	out = append(out, list...)
	return append(out, productID), true
}

// RemoveWishListItem deletes productID from the list; the second return is
// false when it was not present.
func RemoveWishListItem(list []string, productID string) ([]string, bool) {
	for i, id := range list {
		if id == productID {
			out := make([]string, 0, len(list)-1)
			out = append(out, list[:i]...)
			out = append(out, list[i+1:]...)
			return out, true
		}
	}
	return list, false
}
