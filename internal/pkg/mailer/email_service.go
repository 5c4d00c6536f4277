package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

type QuotationLine struct {
	ProductName string
	Quantity    int
	UnitPrice   float64
	LineTotal   float64
}

type QuotationEmail struct {
	QuoteNumber string
	AccountName string
	TotalAmount float64
	ValidUntil  string
	Lines       []QuotationLine
}

type IEmailService interface {
	SendQuotation(toEmail string, quote QuotationEmail) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendQuotation(toEmail string, quote QuotationEmail) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Quotation %s", quote.QuoteNumber))

	var rows strings.Builder
	for _, line := range quote.Lines {
		rows.WriteString(fmt.Sprintf(
			`<tr><td style="padding:6px 12px;">%s</td><td style="padding:6px 12px;text-align:right;">%d</td><td style="padding:6px 12px;text-align:right;">%.2f</td><td style="padding:6px 12px;text-align:right;">%.2f</td></tr>`,
			line.ProductName, line.Quantity, line.UnitPrice, line.LineTotal,
		))
	}

	validity := ""
	if quote.ValidUntil != "" {
		validity = fmt.Sprintf("<p>This quotation is valid until <b>%s</b>.</p>", quote.ValidUntil)
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Quotation %s</h2>
			<p>Prepared for <b>%s</b>.</p>
			<table style="border-collapse:collapse;width:100%%;">
				<tr style="background:#f0f0f0;"><th style="padding:6px 12px;text-align:left;">Product</th><th style="padding:6px 12px;">Qty</th><th style="padding:6px 12px;">Unit Price</th><th style="padding:6px 12px;">Total</th></tr>
				%s
			</table>
			<h3 style="text-align:right;">Grand Total: %.2f</h3>
			%s
			<p>If you have any questions, just reply to this email.</p>
		</div>
	`, quote.QuoteNumber, quote.AccountName, rows.String(), quote.TotalAmount, validity)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send quotation %s to %s: %w", quote.QuoteNumber, toEmail, err)
	}
	return nil
}
