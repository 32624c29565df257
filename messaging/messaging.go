// Package messaging composes the pickup-confirmation messages and the
// WhatsApp / SMS deep links the front desk hands to a guardian's phone.
// Links are best effort: the client's OS opens them and nothing here can
// observe whether the message was sent.
package messaging

import (
	"fmt"
	"net/url"
	"strings"
)

// DigitsOnly strips everything but digits from a phone number, which is
// the form both wa.me and sms: links expect.
func DigitsOnly(phone string) string {
	var b strings.Builder
	for _, c := range phone {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// FormatPhoneNumber renders a 10-digit number as (XXX) XXX-XXXX for
// display. Anything else is returned unchanged.
func FormatPhoneNumber(phone string) string {
	digits := DigitsOnly(phone)
	if len(digits) != 10 {
		return phone
	}
	return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
}

func WhatsAppLink(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", DigitsOnly(phone), url.QueryEscape(message))
}

func SMSLink(phone, message string) string {
	return fmt.Sprintf("sms:%s?body=%s", DigitsOnly(phone), url.QueryEscape(message))
}

// PickupMessage is the long-form WhatsApp confirmation with the QR link.
func PickupMessage(childName, code, qrURL string) string {
	return fmt.Sprintf(`🙏 %s has been checked in safely!

📋 Pickup Code: %s
📱 Show this QR code at pickup: %s

Please keep this code secure and present it when picking up your child.

- TMHT Children's Ministry`, childName, code, qrURL)
}

// SMSMessage is the short-form confirmation for plain text messages.
func SMSMessage(childName, code string) string {
	return fmt.Sprintf("TMHT Childrens Ministry: %s checked in successfully! Pickup Code: %s. Save this code to pick up your child. Questions? Contact the ministry team.", childName, code)
}
