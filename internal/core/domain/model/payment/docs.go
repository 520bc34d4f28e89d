// Package payment provides payments and the invoices issued for them.
//
// A payment entering Succeeded for the first time yields exactly one Invoice
// and one wallet credit of the beneficiary. Later transitions only update
// the invoice status mirror.
package payment
