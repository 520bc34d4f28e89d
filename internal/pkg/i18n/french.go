package i18n

import "github.com/Keloce-2005/Back-office/internal/core/domain/model/notification"

var french = map[string]string{
	notification.KeyDocumentValidatedTitle:   "Document validé",
	notification.KeyDocumentValidatedBody:    "Votre document %s a été validé.",
	notification.KeyDocumentRejectedTitle:    "Document refusé",
	notification.KeyDocumentRejectedBody:     "Votre document %s a été refusé : %s",
	notification.KeyRequestReadyTitle:        "Demande de validation prête",
	notification.KeyRequestReadyBody:         "Tous les documents obligatoires de %s sont validés. La demande attend un examen.",
	notification.KeyRequestUnderReviewTitle:  "Validation en cours",
	notification.KeyRequestUnderReviewBody:   "Votre demande de validation est en cours d'examen.",
	notification.KeyRequestApprovedTitle:     "Compte validé",
	notification.KeyRequestApprovedBody:      "Votre compte livreur est validé. Vous pouvez maintenant proposer des livraisons.",
	notification.KeyRequestRejectedTitle:     "Validation refusée",
	notification.KeyRequestRejectedBody:      "Votre demande de validation a été refusée : %s",
	notification.KeyRequestReopenedTitle:     "Validation rouverte",
	notification.KeyRequestReopenedBody:      "Votre demande de validation a été rouverte pour examen.",
	notification.KeyProposalReceivedTitle:    "Nouvelle proposition de livraison",
	notification.KeyProposalReceivedBody:     "Un livreur a proposé la livraison %s pour votre annonce %q.",
	notification.KeyDeliveryAcceptedTitle:    "Proposition acceptée",
	notification.KeyDeliveryAcceptedBody:     "Votre proposition %s a été acceptée.",
	notification.KeyProposalDeclinedTitle:    "Proposition déclinée",
	notification.KeyProposalDeclinedBody:     "Un autre livreur a été choisi pour la livraison %s.",
	notification.KeyDeliveryStartedTitle:     "Livraison démarrée",
	notification.KeyDeliveryStartedBody:      "La livraison %s est en cours. Code de validation : %s",
	notification.KeyDeliveryCompletedTitle:   "Livraison terminée",
	notification.KeyDeliveryCompletedBody:    "La livraison %s a été livrée.",
	notification.KeyDeliveryLateTitle:        "Livraison en retard",
	notification.KeyDeliveryLateBody:         "La livraison %s a dépassé son horaire prévu.",
	notification.KeyPaymentSucceededTitle:    "Paiement confirmé",
	notification.KeyPaymentSucceededBody:     "Le paiement %s de %s EUR a réussi. La facture %s est disponible.",
	notification.KeyPaymentReceivedTitle:     "Paiement reçu",
	notification.KeyPaymentReceivedBody:      "%s EUR ont été crédités sur votre portefeuille (paiement %s).",
	notification.KeyContractExpiredTitle:     "Contrat expiré",
	notification.KeyContractExpiredBody:      "Le contrat %s a expiré.",
	notification.KeySubscriptionExpiredTitle: "Abonnement expiré",
	notification.KeySubscriptionExpiredBody:  "Votre abonnement %s a expiré.",
}
