package rules

// Flag bits accepted by AllowAction.
const (
	FlagRequire2FA = 1 << iota
	FlagAdmin
	FlagReadOnly
	FlagTrial
)

// FlagMask covers every bit AllowAction understands.
const FlagMask = FlagRequire2FA | FlagAdmin | FlagReadOnly | FlagTrial

const (
	curfewEnd       = 6  // first allowed hour
	curfewStart     = 22 // last allowed hour
	maxFailedLogins = 3
)

// AccessFlags is the decoded form of the access bitmask.
type AccessFlags struct {
	Require2FA bool `json:"require_2fa"`
	Admin      bool `json:"admin"`
	ReadOnly   bool `json:"read_only"`
	Trial      bool `json:"trial"`
}

// DecodeFlags reads bit0..bit3 of mask. Higher bits are ignored.
func DecodeFlags(mask int) AccessFlags {
	return AccessFlags{
		Require2FA: mask&FlagRequire2FA != 0,
		Admin:      mask&FlagAdmin != 0,
		ReadOnly:   mask&FlagReadOnly != 0,
		Trial:      mask&FlagTrial != 0,
	}
}

// Mask re-encodes f into the bit layout DecodeFlags reads.
func (f AccessFlags) Mask() int {
	var m int
	if f.Require2FA {
		m |= FlagRequire2FA
	}
	if f.Admin {
		m |= FlagAdmin
	}
	if f.ReadOnly {
		m |= FlagReadOnly
	}
	if f.Trial {
		m |= FlagTrial
	}
	return m
}

// DenyReason names the rule that denied a request.
type DenyReason string

const (
	DenyNone         DenyReason = ""
	DenyReadOnly     DenyReason = "read_only"
	DenyCurfew       DenyReason = "curfew"
	DenyLoginsOr2FA  DenyReason = "failed_logins_or_2fa"
	DenyTrialWith2FA DenyReason = "trial_2fa"
)

// AccessRequest is the context of a single access check.
type AccessRequest struct {
	Hour24        int  `json:"hour24" yaml:"hour24"`
	FailedLogins  int  `json:"failed_logins" yaml:"failed_logins"`
	Flags         int  `json:"flags" yaml:"flags"`
	EmailVerified bool `json:"email_verified" yaml:"email_verified"`
}

// AccessDecision is the verdict plus the denying rule, if any.
type AccessDecision struct {
	Allowed bool        `json:"allowed"`
	Reason  DenyReason  `json:"reason,omitempty"`
	Flags   AccessFlags `json:"flags"`
}

// AllowAction reports whether the request is allowed.
func AllowAction(hour24, failedLogins, flags int, emailVerified bool) bool {
	return AccessRequest{
		Hour24:        hour24,
		FailedLogins:  failedLogins,
		Flags:         flags,
		EmailVerified: emailVerified,
	}.Allowed()
}

// Allowed reports whether r passes every rule.
func (r AccessRequest) Allowed() bool {
	return r.Explain().Allowed
}

// Explain applies the denial rules in order; the first one to fire wins.
// Rule 4 can only fire when rule 3 did not, which with 2FA required never
// happens. It stays in the chain as written.
func (r AccessRequest) Explain() AccessDecision {
	f := DecodeFlags(r.Flags)
	deny := func(reason DenyReason) AccessDecision {
		return AccessDecision{Reason: reason, Flags: f}
	}

	if f.ReadOnly {
		return deny(DenyReadOnly)
	}
	if (r.Hour24 < curfewEnd || r.Hour24 > curfewStart) && !f.Admin {
		return deny(DenyCurfew)
	}
	if (r.FailedLogins >= maxFailedLogins && !f.Admin) || (!r.EmailVerified && f.Require2FA) {
		return deny(DenyLoginsOr2FA)
	}
	if f.Trial && f.Require2FA && !r.EmailVerified {
		return deny(DenyTrialWith2FA)
	}
	return AccessDecision{Allowed: true, Flags: f}
}
