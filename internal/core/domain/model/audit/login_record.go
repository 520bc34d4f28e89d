package audit

import (
	"errors"
	"net/netip"
	"strings"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

const MaxUserAgentLength = 255

var ErrLoginRecordIsNotConstructed = errors.New("LoginRecord must be created via NewLoginRecord constructor")

// LoginRecord is one successful login.
type LoginRecord struct {
	id        kernel.UUID
	userID    kernel.UUID
	ip        string
	userAgent string
	at        time.Time

	guard guard.ConstructorGuard
}

// NewLoginRecord keeps the address only when it parses; a login is never
// refused because a proxy sent a malformed header.
func NewLoginRecord(id, userID kernel.UUID, ip, userAgent string, at time.Time) (*LoginRecord, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}

	return &LoginRecord{
		id:        id,
		userID:    userID,
		ip:        normalizeIP(ip),
		userAgent: truncate(strings.TrimSpace(userAgent), MaxUserAgentLength),
		at:        at.UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func RestoreLoginRecord(id, userID kernel.UUID, ip, userAgent string, at time.Time) (*LoginRecord, error) {
	r, err := NewLoginRecord(id, userID, ip, userAgent, at)
	if err != nil {
		return nil, err
	}
	r.at = at
	return r, nil
}

func normalizeIP(ip string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return ""
	}
	return addr.Unmap().String()
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func (r *LoginRecord) Validate() error {
	if r == nil {
		return ErrLoginRecordIsNotConstructed
	}
	return r.guard.Validate(ErrLoginRecordIsNotConstructed)
}

func (r *LoginRecord) ID() kernel.UUID {
	return r.id
}

func (r *LoginRecord) UserID() kernel.UUID {
	return r.userID
}

// IP is empty when the client address could not be parsed.
func (r *LoginRecord) IP() string {
	return r.ip
}

func (r *LoginRecord) UserAgent() string {
	return r.userAgent
}

func (r *LoginRecord) At() time.Time {
	return r.at
}
