package ports

import (
	"context"
	"io"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
)

// DocumentStorage stores uploaded documents and rendered invoices.
type DocumentStorage interface {
	// Store writes body under key and returns the reference to persist.
	Store(ctx context.Context, key, contentType string, body io.Reader) (string, error)

	// URLFor returns a URL the client can download the document from.
	URLFor(ctx context.Context, ref string) (string, error)

	// Delete removes the document. Deleting a missing document is not an error.
	Delete(ctx context.Context, ref string) error
}

// PushMessage is what the push transport delivers to a user's devices.
type PushMessage struct {
	UserID  kernel.UUID
	Title   string
	Message string
	Link    string
}

// PushTransport delivers best-effort push notifications.
type PushTransport interface {
	Send(ctx context.Context, msg PushMessage) error
}

// InvoiceLine is one billed item.
type InvoiceLine struct {
	Label  string
	Amount string
}

// InvoiceDocument is the data printed on an invoice.
type InvoiceDocument struct {
	Reference        string
	PaymentReference string
	PayerName        string
	PayerEmail       string
	BeneficiaryName  string
	IssuedAt         time.Time
	Lines            []InvoiceLine
	Total            string
}

// InvoiceRenderer turns an invoice into a PDF.
type InvoiceRenderer interface {
	Render(ctx context.Context, doc InvoiceDocument) ([]byte, error)
}

// Localizer renders a catalog key in a language. Unknown keys are used as
// the format itself.
type Localizer interface {
	Localize(lang user.Language, key string, args ...any) string
}

// PasswordHasher hashes and checks user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues bearer tokens at login.
type TokenIssuer interface {
	Issue(userID kernel.UUID, role user.Role) (string, error)
}
