package notification

// Template names a localizable notification. Title and Body are message
// catalog keys; Args fill the body format.
type Template struct {
	Kind  Kind
	Title string
	Body  string
	Args  []any
}

// Catalog keys. Each key is also the fallback English format.
const (
	KeyDocumentValidatedTitle   = "Document validated"
	KeyDocumentValidatedBody    = "Your %s document has been validated."
	KeyDocumentRejectedTitle    = "Document rejected"
	KeyDocumentRejectedBody     = "Your %s document has been rejected: %s"
	KeyRequestReadyTitle        = "Validation request ready"
	KeyRequestReadyBody         = "All mandatory documents of %s are validated. The request is awaiting review."
	KeyRequestUnderReviewTitle  = "Validation in progress"
	KeyRequestUnderReviewBody   = "Your validation request is being reviewed."
	KeyRequestApprovedTitle     = "Account validated"
	KeyRequestApprovedBody      = "Your courier account is validated. You can now propose deliveries."
	KeyRequestRejectedTitle     = "Validation refused"
	KeyRequestRejectedBody      = "Your validation request has been refused: %s"
	KeyRequestReopenedTitle     = "Validation reopened"
	KeyRequestReopenedBody      = "Your validation request has been reopened for review."
	KeyProposalReceivedTitle    = "New delivery proposal"
	KeyProposalReceivedBody     = "A courier proposed delivery %s for your announcement %q."
	KeyDeliveryAcceptedTitle    = "Proposal accepted"
	KeyDeliveryAcceptedBody     = "Your proposal %s has been accepted."
	KeyProposalDeclinedTitle    = "Proposal declined"
	KeyProposalDeclinedBody     = "Another courier was chosen for delivery %s."
	KeyDeliveryStartedTitle     = "Delivery started"
	KeyDeliveryStartedBody      = "Delivery %s is in progress. Validation code: %s"
	KeyDeliveryCompletedTitle   = "Delivery completed"
	KeyDeliveryCompletedBody    = "Delivery %s has been delivered."
	KeyDeliveryLateTitle        = "Delivery late"
	KeyDeliveryLateBody         = "Delivery %s has passed its scheduled time."
	KeyPaymentSucceededTitle    = "Payment confirmed"
	KeyPaymentSucceededBody     = "Payment %s of %s EUR succeeded. Invoice %s is available."
	KeyPaymentReceivedTitle     = "Payment received"
	KeyPaymentReceivedBody      = "%s EUR were credited to your wallet (payment %s)."
	KeyContractExpiredTitle     = "Contract expired"
	KeyContractExpiredBody      = "Contract %s has expired."
	KeySubscriptionExpiredTitle = "Subscription expired"
	KeySubscriptionExpiredBody  = "Your %s subscription has expired."
)

// Keys lists every catalog key so localizers can check their coverage.
func Keys() []string {
	return []string{
		KeyDocumentValidatedTitle, KeyDocumentValidatedBody,
		KeyDocumentRejectedTitle, KeyDocumentRejectedBody,
		KeyRequestReadyTitle, KeyRequestReadyBody,
		KeyRequestUnderReviewTitle, KeyRequestUnderReviewBody,
		KeyRequestApprovedTitle, KeyRequestApprovedBody,
		KeyRequestRejectedTitle, KeyRequestRejectedBody,
		KeyRequestReopenedTitle, KeyRequestReopenedBody,
		KeyProposalReceivedTitle, KeyProposalReceivedBody,
		KeyDeliveryAcceptedTitle, KeyDeliveryAcceptedBody,
		KeyProposalDeclinedTitle, KeyProposalDeclinedBody,
		KeyDeliveryStartedTitle, KeyDeliveryStartedBody,
		KeyDeliveryCompletedTitle, KeyDeliveryCompletedBody,
		KeyDeliveryLateTitle, KeyDeliveryLateBody,
		KeyPaymentSucceededTitle, KeyPaymentSucceededBody,
		KeyPaymentReceivedTitle, KeyPaymentReceivedBody,
		KeyContractExpiredTitle, KeyContractExpiredBody,
		KeySubscriptionExpiredTitle, KeySubscriptionExpiredBody,
	}
}

func DocumentValidated(docType string) Template {
	return Template{Kind: Validation, Title: KeyDocumentValidatedTitle, Body: KeyDocumentValidatedBody, Args: []any{docType}}
}

func DocumentRejected(docType, reason string) Template {
	return Template{Kind: Validation, Title: KeyDocumentRejectedTitle, Body: KeyDocumentRejectedBody, Args: []any{docType, reason}}
}

// RequestReady goes to every admin when a courier's mandatory documents are validated.
func RequestReady(courierName string) Template {
	return Template{Kind: Validation, Title: KeyRequestReadyTitle, Body: KeyRequestReadyBody, Args: []any{courierName}}
}

func RequestUnderReview() Template {
	return Template{Kind: Validation, Title: KeyRequestUnderReviewTitle, Body: KeyRequestUnderReviewBody}
}

func RequestApproved() Template {
	return Template{Kind: Validation, Title: KeyRequestApprovedTitle, Body: KeyRequestApprovedBody}
}

func RequestRejected(motif string) Template {
	return Template{Kind: Validation, Title: KeyRequestRejectedTitle, Body: KeyRequestRejectedBody, Args: []any{motif}}
}

func RequestReopened() Template {
	return Template{Kind: Validation, Title: KeyRequestReopenedTitle, Body: KeyRequestReopenedBody}
}

func ProposalReceived(reference, announcementTitle string) Template {
	return Template{
		Kind: Delivery, Title: KeyProposalReceivedTitle, Body: KeyProposalReceivedBody,
		Args: []any{reference, announcementTitle},
	}
}

func DeliveryAccepted(reference string) Template {
	return Template{Kind: Delivery, Title: KeyDeliveryAcceptedTitle, Body: KeyDeliveryAcceptedBody, Args: []any{reference}}
}

func ProposalDeclined(reference string) Template {
	return Template{Kind: Delivery, Title: KeyProposalDeclinedTitle, Body: KeyProposalDeclinedBody, Args: []any{reference}}
}

func DeliveryStarted(reference, code string) Template {
	return Template{Kind: Delivery, Title: KeyDeliveryStartedTitle, Body: KeyDeliveryStartedBody, Args: []any{reference, code}}
}

func DeliveryCompleted(reference string) Template {
	return Template{Kind: Delivery, Title: KeyDeliveryCompletedTitle, Body: KeyDeliveryCompletedBody, Args: []any{reference}}
}

func DeliveryLate(reference string) Template {
	return Template{Kind: Delivery, Title: KeyDeliveryLateTitle, Body: KeyDeliveryLateBody, Args: []any{reference}}
}

func PaymentSucceeded(paymentRef, amount, invoiceRef string) Template {
	return Template{
		Kind: Payment, Title: KeyPaymentSucceededTitle, Body: KeyPaymentSucceededBody,
		Args: []any{paymentRef, amount, invoiceRef},
	}
}

func PaymentReceived(amount, paymentRef string) Template {
	return Template{Kind: Payment, Title: KeyPaymentReceivedTitle, Body: KeyPaymentReceivedBody, Args: []any{amount, paymentRef}}
}

func ContractExpired(reference string) Template {
	return Template{Kind: Account, Title: KeyContractExpiredTitle, Body: KeyContractExpiredBody, Args: []any{reference}}
}

func SubscriptionExpired(plan string) Template {
	return Template{Kind: Account, Title: KeySubscriptionExpiredTitle, Body: KeySubscriptionExpiredBody, Args: []any{plan}}
}
