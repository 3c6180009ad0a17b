// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/MKhiriev/go-invoice-gateway/models"
	"github.com/shopspring/decimal"
)

// record is one backend row. The backend encodes empty fields as false, so
// every accessor treats false and null as absent.
type record map[string]json.RawMessage

const backendDateLayout = "2006-01-02"

func (r record) raw(field string) (json.RawMessage, bool) {
	v, ok := r[field]
	if !ok {
		return nil, false
	}
	v = bytes.TrimSpace(v)
	if len(v) == 0 || bytes.Equal(v, []byte("false")) || bytes.Equal(v, []byte("null")) {
		return nil, false
	}
	return v, true
}

func (r record) intField(field string) (int64, bool) {
	v, ok := r.raw(field)
	if !ok {
		return 0, false
	}
	var n int64
	if err := json.Unmarshal(v, &n); err != nil {
		return 0, false
	}
	return n, true
}

func (r record) stringField(field string) (string, bool) {
	v, ok := r.raw(field)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", false
	}
	return s, true
}

func (r record) decimalField(field string) decimal.NullDecimal {
	v, ok := r.raw(field)
	if !ok {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(strings.Trim(string(v), `"`))
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// many2one decodes an [id, "display name"] pair.
func (r record) many2one(field string) (int64, bool) {
	v, ok := r.raw(field)
	if !ok {
		return 0, false
	}
	var pair []json.RawMessage
	if err := json.Unmarshal(v, &pair); err != nil || len(pair) == 0 {
		return 0, false
	}
	var id int64
	if err := json.Unmarshal(pair[0], &id); err != nil {
		return 0, false
	}
	return id, true
}

func (r record) ids(field string) []int64 {
	v, ok := r.raw(field)
	if !ok {
		return nil
	}
	var ids []int64
	if err := json.Unmarshal(v, &ids); err != nil {
		return nil
	}
	return ids
}

func (r record) date(field string) time.Time {
	s, ok := r.stringField(field)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(backendDateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (r record) toInvoice() models.Invoice {
	id, _ := r.intField("id")
	partnerID, _ := r.many2one("partner_id")
	state, _ := r.stringField("state")
	moveType, _ := r.stringField("move_type")

	return models.Invoice{
		ID:             id,
		AccountID:      partnerID,
		AmountTotal:    r.decimalField("amount_total"),
		AmountResidual: r.decimalField("amount_residual"),
		State:          state,
		MoveType:       moveType,
		Date:           r.date("invoice_date"),
	}
}

func (r record) toAccount() models.Account {
	id, _ := r.intField("id")
	name, _ := r.stringField("name")
	return models.Account{ID: id, Name: name}
}
