package profile

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var (
	ErrMerchantProfileIsNotConstructed = errors.New("MerchantProfile must be created via NewMerchantProfile constructor")

	siretPattern = regexp.MustCompile(`^[0-9]{14}$`)
)

// MerchantProfile holds the company data of a User(role=merchant).
type MerchantProfile struct {
	userID         kernel.UUID
	companyName    string
	siret          string
	companyAddress string
	contractSigned bool

	guard guard.ConstructorGuard
}

// NewMerchantProfile validates the SIRET number (14 digits) when one is given.
func NewMerchantProfile(userID kernel.UUID, companyName, siret, companyAddress string) (*MerchantProfile, error) {
	siret = strings.ReplaceAll(siret, " ", "")

	var errList []error
	if err := userID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if strings.TrimSpace(companyName) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("company name"))
	}
	if siret != "" && !siretPattern.MatchString(siret) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("siret", fmt.Errorf("%q is not 14 digits", siret)))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &MerchantProfile{
		userID:         userID,
		companyName:    strings.TrimSpace(companyName),
		siret:          siret,
		companyAddress: strings.TrimSpace(companyAddress),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// RestoreMerchantProfile rebuilds a profile loaded from the store.
func RestoreMerchantProfile(
	userID kernel.UUID, companyName, siret, companyAddress string, contractSigned bool,
) (*MerchantProfile, error) {
	p, err := NewMerchantProfile(userID, companyName, siret, companyAddress)
	if err != nil {
		return nil, err
	}
	p.contractSigned = contractSigned
	return p, nil
}

func (p *MerchantProfile) Validate() error {
	if p == nil {
		return ErrMerchantProfileIsNotConstructed
	}
	return p.guard.Validate(ErrMerchantProfileIsNotConstructed)
}

func (p *MerchantProfile) UserID() kernel.UUID {
	return p.userID
}

func (p *MerchantProfile) CompanyName() string {
	return p.companyName
}

func (p *MerchantProfile) Siret() string {
	return p.siret
}

func (p *MerchantProfile) CompanyAddress() string {
	return p.companyAddress
}

func (p *MerchantProfile) HasSignedContract() bool {
	return p.contractSigned
}

// MarkContractSigned is set when the merchant's first contract is activated.
func (p *MerchantProfile) MarkContractSigned() {
	p.contractSigned = true
}
