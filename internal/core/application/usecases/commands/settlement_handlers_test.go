package commands_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/commands"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/announcement"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/delivery"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/payment"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/core/ports"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProposal(t *testing.T, a *announcement.Announcement, courierID kernel.UUID) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), a.ID(), courierID, a.AuthorID(),
		delivery.Parcel{Description: "books", Weight: decimal.NewFromInt(2)}, a.Schedule(), time.Now())
	require.NoError(t, err)
	return d
}

func TestAcceptDeliveryCommandHandler_Handle_OneWinnerLosersCancelled(t *testing.T) {
	// Arrange
	ctx := t.Context()
	client := newTestUser(t, user.Client)
	winnerCourier := newTestUser(t, user.Courier)
	loserCourier := newTestUser(t, user.Courier)
	a := newTestAnnouncement(t, client.ID())
	_, err := a.MarkInProgress()
	require.NoError(t, err)

	winner := newProposal(t, a, winnerCourier.ID())
	loser := newProposal(t, a, loserCourier.ID())
	winnerProfile := newVerifiedCourierProfile(t, winnerCourier.ID())
	loserProfile := newVerifiedCourierProfile(t, loserCourier.ID())

	cmd, err := commands.NewAcceptDeliveryCommand(winner.ID(), client.ID())
	require.NoError(t, err)

	uow := new(MockUnitOfWork)
	profiles := new(MockProfileRepository)
	announcements := new(MockAnnouncementRepository)
	deliveries := new(MockDeliveryRepository)
	notifier := new(MockNotifier)
	pusher := new(MockPusher)
	tracked := []any{"n1", "n2", "n3"}

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("ProfileRepository").Return(profiles)
	uow.On("AnnouncementRepository").Return(announcements)
	uow.On("DeliveryRepository").Return(deliveries)
	deliveries.On("Get", ctx, winner.ID()).Return(winner, nil).Once()
	announcements.On("GetForUpdate", ctx, a.ID()).Return(a, nil).Once()
	deliveries.On("ListByAnnouncement", ctx, a.ID()).Return([]*delivery.Delivery{loser, winner}, nil).Once()
	deliveries.On("Update", ctx, winner).Return(nil).Once()
	deliveries.On("Update", ctx, loser).Return(nil).Once()
	deliveries.On("CountNonCancelledByCourier", ctx, winnerCourier.ID()).Return(1, nil).Once()
	deliveries.On("CountNonCancelledByCourier", ctx, loserCourier.ID()).Return(0, nil).Once()
	profiles.On("GetCourier", ctx, winnerCourier.ID()).Return(winnerProfile, nil).Once()
	profiles.On("GetCourier", ctx, loserCourier.ID()).Return(loserProfile, nil).Once()
	profiles.On("UpdateCourier", ctx, winnerProfile).Return(nil).Once()
	announcements.On("Update", ctx, a).Return(nil).Once()
	notifier.On("Notify", ctx, uow, winnerCourier.ID(), mock.Anything, "/deliveries/"+winner.ID().String()).Return(nil).Once()
	notifier.On("Notify", ctx, uow, client.ID(), mock.Anything, "/deliveries/"+winner.ID().String()).Return(nil).Once()
	notifier.On("Notify", ctx, uow, loserCourier.ID(), mock.Anything, "/deliveries/"+loser.ID().String()).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("TrackedAggregates").Return(tracked).Once()
	pusher.On("PushTracked", ctx, tracked).Return().Once()

	handler := commands.NewAcceptDeliveryCommandHandler(deliveryUoWFactory{uow: uow}, notifier, pusher)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, delivery.InProgress, winner.Status())
	assert.Equal(t, delivery.Cancelled, loser.Status())
	assert.Equal(t, announcement.InProgress, a.Status())
	assert.Equal(t, 1, winnerProfile.DeliveryCount())
	profiles.AssertNotCalled(t, "UpdateCourier", ctx, loserProfile)
	uow.AssertNotCalled(t, "UserRepository")
	uow.AssertExpectations(t)
	deliveries.AssertExpectations(t)
	notifier.AssertExpectations(t)
	pusher.AssertExpectations(t)
}

func TestAcceptDeliveryCommandHandler_Handle_AcceptedDeliveryIsNoOp(t *testing.T) {
	// Arrange
	ctx := t.Context()
	client := newTestUser(t, user.Client)
	a := newTestAnnouncement(t, client.ID())
	_, err := a.MarkInProgress()
	require.NoError(t, err)
	winner := newProposal(t, a, kernel.NewUUID())
	_, err = winner.Accept(time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewAcceptDeliveryCommand(winner.ID(), client.ID())
	require.NoError(t, err)

	uow := new(MockUnitOfWork)
	announcements := new(MockAnnouncementRepository)
	deliveries := new(MockDeliveryRepository)
	notifier := new(MockNotifier)
	pusher := new(MockPusher)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("AnnouncementRepository").Return(announcements)
	uow.On("DeliveryRepository").Return(deliveries)
	deliveries.On("Get", ctx, winner.ID()).Return(winner, nil).Once()
	announcements.On("GetForUpdate", ctx, a.ID()).Return(a, nil).Once()
	deliveries.On("ListByAnnouncement", ctx, a.ID()).Return([]*delivery.Delivery{winner}, nil).Once()

	handler := commands.NewAcceptDeliveryCommandHandler(deliveryUoWFactory{uow: uow}, notifier, pusher)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	deliveries.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAcceptDeliveryCommandHandler_Handle_CourierIsForbidden(t *testing.T) {
	// Arrange
	ctx := t.Context()
	client := newTestUser(t, user.Client)
	courier := newTestUser(t, user.Courier)
	a := newTestAnnouncement(t, client.ID())
	proposal := newProposal(t, a, courier.ID())

	cmd, err := commands.NewAcceptDeliveryCommand(proposal.ID(), courier.ID())
	require.NoError(t, err)

	uow := new(MockUnitOfWork)
	users := new(MockUserRepository)
	announcements := new(MockAnnouncementRepository)
	deliveries := new(MockDeliveryRepository)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users)
	uow.On("AnnouncementRepository").Return(announcements)
	uow.On("DeliveryRepository").Return(deliveries)
	deliveries.On("Get", ctx, proposal.ID()).Return(proposal, nil).Once()
	announcements.On("GetForUpdate", ctx, a.ID()).Return(a, nil).Once()
	users.On("Get", ctx, courier.ID()).Return(courier, nil).Once()

	handler := commands.NewAcceptDeliveryCommandHandler(deliveryUoWFactory{uow: uow}, new(MockNotifier), new(MockPusher))

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, delivery.Pending, proposal.Status())
	deliveries.AssertNotCalled(t, "ListByAnnouncement", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func newPendingPayment(t *testing.T, payerID, beneficiaryID kernel.UUID) *payment.Payment {
	t.Helper()
	amount, err := kernel.MoneyFromString("49.90")
	require.NoError(t, err)
	p, err := payment.NewPayment(kernel.NewUUID(), "", payerID, beneficiaryID, payment.Subject{},
		amount, payment.Card, payment.Pending, time.Now())
	require.NoError(t, err)
	return p
}

func TestUpdatePaymentStatusCommandHandler_Handle_SucceededTwiceIssuesOneInvoice(t *testing.T) {
	// Arrange
	ctx := t.Context()
	admin := newTestUser(t, user.Admin)
	client := newTestUser(t, user.Client)
	courier := newTestUser(t, user.Courier)
	p := newPendingPayment(t, client.ID(), courier.ID())

	cmd, err := commands.NewUpdatePaymentStatusCommand(p.ID(), admin.ID(), payment.Succeeded, "ch_42")
	require.NoError(t, err)

	uow := new(MockUnitOfWork)
	users := new(MockUserRepository)
	payments := new(MockPaymentRepository)
	notifier := new(MockNotifier)
	pusher := new(MockPusher)
	renderer := new(MockInvoiceRenderer)
	storage := new(MockDocumentStorage)
	tracked := []any{"n1", "n2"}

	var issued *payment.Invoice
	uow.On("Begin", ctx).Return(nil).Times(3)
	uow.On("Rollback", ctx).Return(nil).Times(3)
	uow.On("UserRepository").Return(users)
	uow.On("PaymentRepository").Return(payments)
	users.On("Get", ctx, admin.ID()).Return(admin, nil).Twice()
	payments.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Twice()
	payments.On("Update", ctx, p).Return(nil).Once()
	payments.On("FindInvoiceByPayment", ctx, p.ID()).Return(func() *payment.Invoice { return issued }, nil).Twice()
	users.On("GetForUpdate", ctx, courier.ID()).Return(courier, nil).Once()
	payments.On("AddInvoice", ctx, mock.AnythingOfType("*payment.Invoice")).
		Run(func(args mock.Arguments) { issued = args.Get(1).(*payment.Invoice) }).
		Return(nil).Once()
	users.On("Update", ctx, courier).Return(nil).Once()
	notifier.On("Notify", ctx, uow, client.ID(), mock.Anything, "/payments").Return(nil).Once()
	notifier.On("Notify", ctx, uow, courier.ID(), mock.Anything, "/payments").Return(nil).Once()
	users.On("Get", ctx, client.ID()).Return(client, nil).Once()
	uow.On("Commit", ctx).Return(nil).Twice()
	uow.On("TrackedAggregates").Return(tracked).Once()
	pusher.On("PushTracked", ctx, tracked).Return().Once()
	renderer.On("Render", ctx, mock.MatchedBy(func(doc ports.InvoiceDocument) bool {
		return doc.PaymentReference == p.Reference() && doc.Total == "49.90" && doc.PayerEmail == client.Email()
	})).Return([]byte("%PDF-1.4"), nil).Once()
	storage.On("Store", ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "invoices/") && strings.HasSuffix(key, ".pdf")
	}), "application/pdf", mock.Anything).Return("invoices/invoice.pdf", nil).Once()
	payments.On("UpdateInvoice", ctx, mock.MatchedBy(func(i *payment.Invoice) bool {
		return i.PDFRef() == "invoices/invoice.pdf"
	})).Return(nil).Once()

	handler := commands.NewUpdatePaymentStatusCommandHandler(
		paymentUoWFactory{uow: uow}, notifier, pusher, renderer, storage, zap.NewNop(),
	)

	// Act
	firstErr := handler.Handle(ctx, cmd)
	secondErr := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, firstErr)
	require.NoError(t, secondErr)
	require.NotNil(t, issued)
	assert.Equal(t, payment.Succeeded, p.Status())
	assert.True(t, issued.Total().Equal(p.Amount()))
	assert.Equal(t, "49.90", courier.Wallet().String())
	payments.AssertNumberOfCalls(t, "AddInvoice", 1)
	payments.AssertNumberOfCalls(t, "Update", 1)
	users.AssertNumberOfCalls(t, "Update", 1)
	notifier.AssertNumberOfCalls(t, "Notify", 2)
	storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
	payments.AssertExpectations(t)
	renderer.AssertExpectations(t)
	pusher.AssertExpectations(t)
}

func TestUpdatePaymentStatusCommandHandler_Handle_NonAdminIsForbidden(t *testing.T) {
	// Arrange
	ctx := t.Context()
	client := newTestUser(t, user.Client)
	p := newPendingPayment(t, client.ID(), kernel.NewUUID())

	cmd, err := commands.NewUpdatePaymentStatusCommand(p.ID(), client.ID(), payment.Succeeded, "")
	require.NoError(t, err)

	uow := new(MockUnitOfWork)
	users := new(MockUserRepository)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users)
	users.On("Get", ctx, client.ID()).Return(client, nil).Once()

	handler := commands.NewUpdatePaymentStatusCommandHandler(
		paymentUoWFactory{uow: uow}, new(MockNotifier), new(MockPusher),
		new(MockInvoiceRenderer), new(MockDocumentStorage), zap.NewNop(),
	)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, payment.Pending, p.Status())
	uow.AssertNotCalled(t, "PaymentRepository")
}

func TestRecordPaymentCommandHandler_Handle_SucceededPaymentRunsCascade(t *testing.T) {
	// Arrange
	ctx := t.Context()
	client := newTestUser(t, user.Client)
	provider := newTestUser(t, user.ServiceProvider)
	amount, err := kernel.MoneyFromString("49.90")
	require.NoError(t, err)

	cmd, err := commands.NewRecordPaymentCommand(kernel.NewUUID(), client.ID(), commands.PaymentDraft{
		PayerID:       client.ID(),
		BeneficiaryID: provider.ID(),
		Amount:        amount,
		Mode:          payment.Wallet,
		Status:        payment.Succeeded,
	})
	require.NoError(t, err)

	uow := new(MockUnitOfWork)
	users := new(MockUserRepository)
	payments := new(MockPaymentRepository)
	notifier := new(MockNotifier)
	pusher := new(MockPusher)
	renderer := new(MockInvoiceRenderer)
	storage := new(MockDocumentStorage)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users)
	uow.On("PaymentRepository").Return(payments)
	users.On("Get", ctx, client.ID()).Return(client, nil).Twice()
	payments.On("Add", ctx, mock.MatchedBy(func(p *payment.Payment) bool {
		return p.ID().IsEqual(cmd.PaymentID()) && p.Status() == payment.Succeeded
	})).Return(nil).Once()
	payments.On("FindInvoiceByPayment", ctx, cmd.PaymentID()).Return(nil, nil).Once()
	users.On("GetForUpdate", ctx, provider.ID()).Return(provider, nil).Once()
	payments.On("AddInvoice", ctx, mock.MatchedBy(func(i *payment.Invoice) bool {
		return i.PaymentID().IsEqual(cmd.PaymentID()) && i.PaymentStatus() == payment.Succeeded
	})).Return(nil).Once()
	users.On("Update", ctx, provider).Return(nil).Once()
	notifier.On("Notify", ctx, uow, client.ID(), mock.Anything, "/payments").Return(nil).Once()
	notifier.On("Notify", ctx, uow, provider.ID(), mock.Anything, "/payments").Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("TrackedAggregates").Return([]any{}).Once()
	pusher.On("PushTracked", ctx, []any{}).Return().Once()
	renderer.On("Render", ctx, mock.Anything).Return(nil, errors.New("browser unavailable")).Once()

	handler := commands.NewRecordPaymentCommandHandler(
		paymentUoWFactory{uow: uow}, notifier, pusher, renderer, storage, zap.NewNop(),
	)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, provider.Wallet().Equal(amount))
	storage.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
	users.AssertExpectations(t)
	payments.AssertExpectations(t)
	notifier.AssertExpectations(t)
	renderer.AssertExpectations(t)
}

func TestRecordPaymentCommandHandler_Handle_PendingPaymentSkipsCascade(t *testing.T) {
	// Arrange
	ctx := t.Context()
	admin := newTestUser(t, user.Admin)
	client := newTestUser(t, user.Client)
	courier := newTestUser(t, user.Courier)
	amount, err := kernel.MoneyFromString("12.00")
	require.NoError(t, err)

	cmd, err := commands.NewRecordPaymentCommand(kernel.NewUUID(), admin.ID(), commands.PaymentDraft{
		PayerID:       client.ID(),
		BeneficiaryID: courier.ID(),
		Amount:        amount,
		Mode:          payment.Transfer,
	})
	require.NoError(t, err)

	uow := new(MockUnitOfWork)
	users := new(MockUserRepository)
	payments := new(MockPaymentRepository)
	renderer := new(MockInvoiceRenderer)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users)
	uow.On("PaymentRepository").Return(payments)
	users.On("Get", ctx, admin.ID()).Return(admin, nil).Once()
	users.On("Get", ctx, client.ID()).Return(client, nil).Once()
	payments.On("Add", ctx, mock.MatchedBy(func(p *payment.Payment) bool {
		return p.Status() == payment.Pending
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("TrackedAggregates").Return([]any{}).Once()
	pusher := new(MockPusher)
	pusher.On("PushTracked", ctx, []any{}).Return().Once()

	handler := commands.NewRecordPaymentCommandHandler(
		paymentUoWFactory{uow: uow}, new(MockNotifier), pusher, renderer, new(MockDocumentStorage), zap.NewNop(),
	)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, courier.Wallet().Equal(kernel.ZeroMoney()))
	payments.AssertNotCalled(t, "AddInvoice", mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
	renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
}

