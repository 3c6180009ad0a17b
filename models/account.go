// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Account is a read-only snapshot of a customer record (res.partner) in the
// accounting backend.
type Account struct {
	// ID is the backend identifier of the partner.
	ID int64 `json:"id"`

	// Name is the display name of the partner.
	Name string `json:"name"`
}

// ResolutionOutcome tells the caller how a customer lookup key resolved.
type ResolutionOutcome int

const (
	// AccountUnknown means no account matched the lookup key.
	AccountUnknown ResolutionOutcome = iota
	// AccountFound means exactly one account matched.
	AccountFound
	// AccountAmbiguous means more than one account matched.
	AccountAmbiguous
)

// String implements fmt.Stringer.
func (o ResolutionOutcome) String() string {
	switch o {
	case AccountFound:
		return "found"
	case AccountAmbiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// AccountResolution is the result of resolving a customer lookup key.
// Unknown and ambiguous customers are normal outcomes, not errors.
type AccountResolution struct {
	Outcome  ResolutionOutcome
	Accounts []Account
}

// Account returns the single resolved account. The second value is false
// unless Outcome is AccountFound.
func (r AccountResolution) Account() (Account, bool) {
	if r.Outcome != AccountFound || len(r.Accounts) != 1 {
		return Account{}, false
	}
	return r.Accounts[0], true
}

// Names joins the display names of all matched accounts with ", ".
func (r AccountResolution) Names() string {
	names := make([]string, 0, len(r.Accounts))
	for _, a := range r.Accounts {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

// NewAccountResolution classifies a list of matched accounts.
func NewAccountResolution(accounts []Account) AccountResolution {
	switch len(accounts) {
	case 0:
		return AccountResolution{Outcome: AccountUnknown}
	case 1:
		return AccountResolution{Outcome: AccountFound, Accounts: accounts}
	default:
		return AccountResolution{Outcome: AccountAmbiguous, Accounts: accounts}
	}
}
