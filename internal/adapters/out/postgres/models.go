package postgres

import (
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/announcementrepo"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/catalogrepo"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/deliveryrepo"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/membershiprepo"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/messagerepo"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/notificationrepo"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/paymentrepo"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/profilerepo"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/userrepo"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/validationrepo"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/warehouserepo"
)

// Models lists every persisted DTO in dependency order. Production schemas
// come from the SQL migrations; tests AutoMigrate these instead.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&validationrepo.RequestDTO{},
		&validationrepo.DocumentDTO{},
		&profilerepo.CourierProfileDTO{},
		&profilerepo.MerchantProfileDTO{},
		&profilerepo.ProviderProfileDTO{},
		&notificationrepo.NotificationDTO{},
		&announcementrepo.AnnouncementDTO{},
		&deliveryrepo.DeliveryDTO{},
		&warehouserepo.WarehouseDTO{},
		&warehouserepo.StorageBoxDTO{},
		&catalogrepo.ServiceDTO{},
		&paymentrepo.PaymentDTO{},
		&paymentrepo.InvoiceDTO{},
		&membershiprepo.ContractDTO{},
		&membershiprepo.SubscriptionDTO{},
		&membershiprepo.EvaluationDTO{},
		&messagerepo.MessageDTO{},
		&messagerepo.LoginRecordDTO{},
	}
}

// Tables lists the table names of Models, children first, for TRUNCATE in tests.
func Tables() []string {
	return []string{
		"login_records", "messages", "evaluations", "subscriptions", "contracts", "invoices", "payments", "services",
		"storage_boxes", "warehouses", "deliveries", "announcements", "notifications",
		"provider_profiles", "merchant_profiles", "courier_profiles",
		"justification_documents", "validation_requests", "users",
	}
}
