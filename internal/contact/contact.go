// Package contact builds the tel:, mailto: and WhatsApp deep links the
// catalog offers on every product, and formats display prices for the
// configured locale.
package contact

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Info holds the fixed business contact points, externalized to
// configuration.
type Info struct {
	Phone    string
	Email    string
	WhatsApp string
}

func (i Info) PhoneLink() string {
	return "tel:" + i.Phone
}

func (i Info) EmailLink(subject string) string {
	link := "mailto:" + i.Email
	if subject != "" {
		link += "?subject=" + escapeQuery(subject)
	}
	return link
}

func (i Info) WhatsAppLink(text string) string {
	link := "https://wa.me/" + i.WhatsApp
	if text != "" {
		link += "?text=" + escapeQuery(text)
	}
	return link
}

// escapeQuery percent-encodes like the browsers' encodeURIComponent;
// url.QueryEscape alone would turn spaces into "+".
func escapeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// InquiryMessage is the pre-filled WhatsApp text for a product. The
// Tamil wording matches what the regional storefront sends.
func InquiryMessage(tag language.Tag, modelName string) string {
	if tag == language.Tamil || tag.Parent() == language.Tamil {
		return fmt.Sprintf("வணக்கம் 👋 நான் %s water purifier-ஐ வாங்க விரும்புகிறேன். இதைப் பற்றிய கூடுதல் விவரங்களைத் தர முடியுமா?", modelName)
	}
	return fmt.Sprintf("Hi 😊 I was checking your %s model.\nCan you share more details and installation information?", modelName)
}

// GeneralInquiryMessage is the pre-filled WhatsApp text for the contact
// page, with no specific product attached.
func GeneralInquiryMessage(tag language.Tag) string {
	if tag == language.Tamil || tag.Parent() == language.Tamil {
		return "வணக்கம் 👋 உங்கள் water purifier-கள் பற்றிய விவரங்களை அறிய விரும்புகிறேன்."
	}
	return "Hi 😊 I would like to know more about your water purifiers."
}

// EmailSubject is the pre-filled mailto subject for a product inquiry.
func EmailSubject(modelName string) string {
	return "Inquiry about " + modelName
}

// PriceFormatter returns a closure rendering an amount with the rupee
// sign and the locale's digit grouping ("₹12,500" for en-IN).
func PriceFormatter(tag language.Tag) func(float64) string {
	printer := message.NewPrinter(tag)
	return func(amount float64) string {
		return printer.Sprintf("₹%v", number.Decimal(amount))
	}
}

// ParseLocale maps the configured locale string to a language tag,
// defaulting to Indian English.
func ParseLocale(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.MustParse("en-IN")
	}
	return tag
}
