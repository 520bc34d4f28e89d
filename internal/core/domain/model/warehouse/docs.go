// Package warehouse models storage sites and the boxes couriers can rent
// for a delivery. Warehouse is the aggregate root; a StorageBox is only
// reached through its warehouse.
package warehouse
