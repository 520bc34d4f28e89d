package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrServiceIsNotConstructed = errors.New("Service must be created via NewService constructor")

// Kind is the category of a provider service.
type Kind int

const (
	UnknownKind Kind = iota
	PersonTransport
	Shopping
	PurchaseAbroad
	PetSitting
	Handyman
	Other
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind:     "unknown",
		PersonTransport: "person_transport",
		Shopping:        "shopping",
		PurchaseAbroad:  "purchase_abroad",
		PetSitting:      "pet_sitting",
		Handyman:        "handyman",
		Other:           "other",
	}
}

func ParseKind(s string) (Kind, error) {
	for kind, str := range getKindStrings() {
		if kind != UnknownKind && str == s {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a valid service kind", s))
}

func (k Kind) Validate() error {
	if k < PersonTransport || k > Other {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid service kind", k))
	}
	return nil
}

func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// Service is an offering published by a service provider.
type Service struct {
	id          kernel.UUID
	providerID  kernel.UUID
	name        string
	description string
	kind        Kind
	price       kernel.Money
	available   bool
	createdAt   time.Time

	guard guard.ConstructorGuard
}

func NewService(
	id, providerID kernel.UUID, name, description string, kind Kind, price kernel.Money, now time.Time,
) (*Service, error) {
	name = strings.TrimSpace(name)

	var errList []error
	if name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	errList = append(errList, id.Validate(), providerID.Validate(), kind.Validate(), price.Validate())
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Service{
		id:          id,
		providerID:  providerID,
		name:        name,
		description: description,
		kind:        kind,
		price:       price,
		available:   true,
		createdAt:   now.UTC(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func RestoreService(
	id, providerID kernel.UUID, name, description string, kind Kind, price kernel.Money, available bool, createdAt time.Time,
) (*Service, error) {
	s, err := NewService(id, providerID, name, description, kind, price, createdAt)
	if err != nil {
		return nil, err
	}
	s.available = available
	s.createdAt = createdAt
	return s, nil
}

func (s *Service) Validate() error {
	if s == nil {
		return ErrServiceIsNotConstructed
	}
	return s.guard.Validate(ErrServiceIsNotConstructed)
}

func (s *Service) ID() kernel.UUID {
	return s.id
}

func (s *Service) ProviderID() kernel.UUID {
	return s.providerID
}

func (s *Service) Name() string {
	return s.name
}

func (s *Service) Description() string {
	return s.description
}

func (s *Service) Kind() Kind {
	return s.kind
}

func (s *Service) Price() kernel.Money {
	return s.price
}

func (s *Service) IsAvailable() bool {
	return s.available
}

func (s *Service) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Service) SetAvailability(available bool) {
	s.available = available
}

// IsOfferedBy reports whether providerID owns the service.
func (s *Service) IsOfferedBy(providerID kernel.UUID) bool {
	return s.providerID.IsEqual(providerID)
}
