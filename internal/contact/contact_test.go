package contact

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestWhatsAppLinkEncodesLikeBrowsers(t *testing.T) {
	info := Info{WhatsApp: "919597794387"}

	link := info.WhatsAppLink("Hi 😊 I was checking your Aqua Grand+ model.")

	if !strings.HasPrefix(link, "https://wa.me/919597794387?text=") {
		t.Fatalf("unexpected link shape: %s", link)
	}
	if strings.Contains(link, "+") {
		t.Fatalf("spaces must encode as %%20, not +: %s", link)
	}
	if !strings.Contains(link, "%20") {
		t.Fatalf("expected percent-encoded spaces: %s", link)
	}
}

func TestEmailLinkCarriesSubject(t *testing.T) {
	info := Info{Email: "sales@example.com"}

	link := info.EmailLink(EmailSubject("Aqua Grand+"))

	if !strings.HasPrefix(link, "mailto:sales@example.com?subject=") {
		t.Fatalf("unexpected link shape: %s", link)
	}
	if !strings.Contains(link, "Inquiry%20about") {
		t.Fatalf("subject not encoded: %s", link)
	}
}

func TestPhoneLink(t *testing.T) {
	info := Info{Phone: "+919597794387"}
	if got := info.PhoneLink(); got != "tel:+919597794387" {
		t.Fatalf("PhoneLink = %s", got)
	}
}

func TestInquiryMessageFollowsLocale(t *testing.T) {
	english := InquiryMessage(language.MustParse("en-IN"), "Aqua Grand+")
	if !strings.Contains(english, "Aqua Grand+") || !strings.Contains(english, "installation") {
		t.Fatalf("english message missing expected content: %s", english)
	}

	tamil := InquiryMessage(language.MustParse("ta-IN"), "Aqua Grand+")
	if !strings.Contains(tamil, "Aqua Grand+") {
		t.Fatalf("tamil message must carry the model name: %s", tamil)
	}
	if tamil == english {
		t.Fatal("tamil locale should not fall back to the english wording")
	}
	if !strings.Contains(tamil, "வணக்கம்") {
		t.Fatalf("tamil message missing greeting: %s", tamil)
	}
}

func TestGeneralInquiryMessageFollowsLocale(t *testing.T) {
	english := GeneralInquiryMessage(language.MustParse("en-IN"))
	if !strings.Contains(english, "water purifiers") {
		t.Fatalf("unexpected english message: %s", english)
	}
	tamil := GeneralInquiryMessage(language.MustParse("ta-IN"))
	if !strings.Contains(tamil, "வணக்கம்") {
		t.Fatalf("unexpected tamil message: %s", tamil)
	}
}

func TestPriceFormatterUsesIndianGrouping(t *testing.T) {
	format := PriceFormatter(language.MustParse("en-IN"))

	if got := format(12500); got != "₹12,500" {
		t.Fatalf("format(12500) = %q", got)
	}
	if got := format(980); got != "₹980" {
		t.Fatalf("format(980) = %q", got)
	}
}

func TestParseLocaleFallsBackToIndianEnglish(t *testing.T) {
	if tag := ParseLocale("nonsense locale!!"); tag != language.MustParse("en-IN") {
		t.Fatalf("fallback tag = %v", tag)
	}
	if tag := ParseLocale("ta-IN"); tag != language.MustParse("ta-IN") {
		t.Fatalf("valid locale mangled: %v", tag)
	}
}
