package domain

import "fmt"

type Payment struct {
	ID           int64  `csv:"id"            db:"id"            json:"id"`
	RecordNumber string `csv:"record_number" db:"record_number" json:"record_number"`
	PaymentID    string `csv:"payment_id"    db:"payment_id"    json:"payment_id"`
	CompanyName  string `csv:"company_name"  db:"company_name"  json:"company_name"`
	PayerTaxID   string `csv:"payer_tax_id"  db:"payer_tax_id"  json:"payer_tax_id"`
	Amount       Amount `csv:"amount"        db:"amount"        json:"amount"`
	Status       Status `csv:"status_code"   db:"status_code"   json:"status_code"`
	FileName     string `csv:"file_name"     db:"file_name"     json:"file_name"`
}

// String renders the payment as a single report line.
func (p *Payment) String() string {
	return fmt.Sprintf(
		"Payment{id=%d, recordNumber=%q, paymentId=%q, companyName=%q, payerTaxId=%q, amount=%s, status=%d %s, fileName=%q}",
		p.ID, p.RecordNumber, p.PaymentID, p.CompanyName, p.PayerTaxID, p.Amount, int(p.Status), p.Status, p.FileName,
	)
}
