// Package format holds locale-aware display helpers for the Brazilian
// market the product serves: BRL currency, pt-BR dates, and the usual
// CPF/phone/CEP masks.
package format

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Currency renders a value as Brazilian reais, e.g. "R$ 2.450,00".
func Currency(value float64) string {
	return printer.Sprintf("R$ %v", number.Decimal(value, number.Scale(2)))
}

// Date renders a time in the Brazilian DD/MM/YYYY convention. Zero
// times render empty.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

// DateForInput renders a time as YYYY-MM-DD.
func DateForInput(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// CPF masks an 11-digit CPF as 000.000.000-00. Already-masked or
// unexpected values pass through unchanged.
func CPF(cpf string) string {
	if cpf == "" || strings.ContainsAny(cpf, ".-") {
		return cpf
	}
	digits := onlyDigits(cpf)
	if len(digits) != 11 {
		return cpf
	}
	return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
}

// Phone masks 10- and 11-digit Brazilian phone numbers as
// (00) 0000-0000 and (00) 00000-0000. Anything else passes through.
func Phone(phone string) string {
	if phone == "" || strings.ContainsAny(phone, "()") {
		return phone
	}
	digits := onlyDigits(phone)
	switch len(digits) {
	case 11:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	case 10:
		return "(" + digits[:2] + ") " + digits[2:6] + "-" + digits[6:]
	}
	return phone
}

// CEP masks an 8-digit postal code as 00000-000. Anything else passes
// through.
func CEP(cep string) string {
	if cep == "" || strings.Contains(cep, "-") {
		return cep
	}
	digits := onlyDigits(cep)
	if len(digits) != 8 {
		return cep
	}
	return digits[:5] + "-" + digits[5:]
}

// ParseBRL converts a Brazilian-formatted money string ("R$ 1.234,56")
// to a float, returning 0 for blank input.
func ParseBRL(value string) float64 {
	if value == "" {
		return 0
	}
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' || r == ',' || r == '.' {
			b.WriteRune(r)
		}
	}
	clean := strings.ReplaceAll(b.String(), ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	return f
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
