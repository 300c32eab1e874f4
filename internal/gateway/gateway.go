// Package gateway holds the clients for the external notification and payment
// gateways. Each gateway is consumed only through its request/response
// contract; responses are opaque JSON and success is implied by HTTP 2xx.
package gateway

import "context"

// EmailMessage is one HTML email payload for the email gateway.
type EmailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Type    string `json:"type"`
}

// WhatsAppMessage is one text payload for the WhatsApp gateway. Number must
// be in normalized +<countrycode><digits> form.
type WhatsAppMessage struct {
	Number      string `json:"number"`
	Text        string `json:"text"`
	Delay       int    `json:"delay"`
	LinkPreview bool   `json:"linkPreview"`
}

// PaymentRequest is an M-Pesa charge request. Amount is the decimal
// major-unit string the gateway expects.
type PaymentRequest struct {
	CustomerNumber string `json:"customerNumber"`
	Amount         string `json:"amount"`
	Reference      string `json:"reference"`
	Transaction    string `json:"transaction"`
}

// EmailSender delivers one HTML email.
type EmailSender interface {
	Name() string
	Send(ctx context.Context, msg EmailMessage) error
}

// WhatsAppSender delivers one WhatsApp text message.
type WhatsAppSender interface {
	Name() string
	Send(ctx context.Context, msg WhatsAppMessage) error
}

// PaymentCharger executes one synchronous mobile-money charge.
type PaymentCharger interface {
	Name() string
	Charge(ctx context.Context, req PaymentRequest) error
}
