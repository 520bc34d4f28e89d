// Package profile provides the role specific records attached 1:1 to a User.
//
// The package includes:
//   - CourierProfile: verification flag, rating, vehicle, documents, delivery counter
//   - MerchantProfile: company identity and contract flag
//   - ProviderProfile: specialties, hourly rate and rating of a service provider
//
// Profiles share the identifier of their user and are deleted with it.
package profile
