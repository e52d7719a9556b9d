// Package delivery matches food orders to farms by XOR distance.
//
// Farms and customer positions live in the same unsigned integer space, and
// an order is served by the farms closest to the customer. The reverse query
// takes a leaked closest-farm ranking and recovers a customer position
// consistent with it, which is what makes handing out such rankings a
// privacy decision rather than a cosmetic one.
package delivery
