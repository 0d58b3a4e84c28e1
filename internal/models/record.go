package models

import (
	"regexp"
	"strconv"

	"centring-backend/internal/timeutil"
)

const (
	PaidStatusPending = "Pending"
	PaidStatusPaid    = "Paid"
)

// phoneRe allows the literal placeholder "0" or exactly 10 digits.
var phoneRe = regexp.MustCompile(`^(0|\d{10})$`)

// TransactionRecord is one sale entry. The external record store owns it;
// we only cache it transiently between a list and the views that read it.
type TransactionRecord struct {
	ID         string  `json:"id,omitempty"`
	Name       string  `json:"name"`
	PhoneNo    string  `json:"phoneNo"`
	Date       string  `json:"date"`
	Product    string  `json:"product"`
	PaidAmount float64 `json:"paidAmount"`
	PaidStatus string  `json:"paidStatus"`
	Returned   bool    `json:"returned"`
	Notes      string  `json:"notes,omitempty"`
}

// RecordRequest is the entry form payload for create and update.
// PaidAmount arrives as text so "must be numeric" is a real check.
type RecordRequest struct {
	Name       string `json:"name"`
	PhoneNo    string `json:"phoneNo"`
	Date       string `json:"date"`
	Product    string `json:"product"`
	PaidAmount string `json:"paidAmount"`
	PaidStatus string `json:"paidStatus"`
	Returned   bool   `json:"returned"`
	Notes      string `json:"notes"`
}

// ApplyDefaults fills the entry form's pre-filled values for fields the
// client omitted: placeholder phone "0", zero amount, today's date and
// Pending status. It runs before Validate, so an untouched form submits
// cleanly the way the pre-filled form does.
func (r *RecordRequest) ApplyDefaults() {
	if r.PhoneNo == "" {
		r.PhoneNo = "0"
	}
	if r.PaidAmount == "" {
		r.PaidAmount = "0"
	}
	if r.Date == "" {
		r.Date = timeutil.Today()
	}
	if r.PaidStatus == "" {
		r.PaidStatus = PaidStatusPending
	}
}

// Validate collects all field violations at once so the form can show
// every error simultaneously. An empty map means the request is valid.
func (r *RecordRequest) Validate() map[string]string {
	errs := make(map[string]string)

	if !phoneRe.MatchString(r.PhoneNo) {
		errs["phoneNo"] = `Please enter a valid phone number (either "0" or a 10-digit number).`
	}
	amount, err := strconv.ParseFloat(r.PaidAmount, 64)
	if err != nil || amount < 0 {
		errs["paidAmount"] = "Amount Paid must be a non-negative number."
	}
	if r.Name == "" {
		errs["name"] = "Name is required."
	}
	if r.Product == "" {
		errs["product"] = "Product is required."
	}

	return errs
}

// ToRecord converts a defaulted, validated request into a record.
func (r *RecordRequest) ToRecord() *TransactionRecord {
	amount, _ := strconv.ParseFloat(r.PaidAmount, 64)

	return &TransactionRecord{
		Name:       r.Name,
		PhoneNo:    r.PhoneNo,
		Date:       r.Date,
		Product:    r.Product,
		PaidAmount: amount,
		PaidStatus: r.PaidStatus,
		Returned:   r.Returned,
		Notes:      r.Notes,
	}
}
