package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/quote-sync/models"
)

// formatMoney renders minor units as "1234.50". Negative amounts keep their
// sign.
func formatMoney(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}

// parseMoney reads "12", "12.5" or "12.50" into minor units.
func parseMoney(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 {
		return 0, errInvalidPrice
	}

	var cents int64
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, errInvalidPrice
		}
		if len(frac) == 1 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || cents < 0 {
			return 0, errInvalidPrice
		}
	}

	return units*100 + cents, nil
}

func parseQuantity(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1, nil
	}
	q, err := strconv.ParseInt(s, 10, 64)
	if err != nil || q < 0 {
		return 0, errInvalidQuantity
	}
	return q, nil
}

// quoteSummary renders q as plain text for the clipboard.
func quoteSummary(q models.Quote) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Quote for %s", valueOrDash(q.Customer.Name))
	if q.Customer.Email != "" {
		fmt.Fprintf(&b, " <%s>", q.Customer.Email)
	}
	b.WriteString("\n")

	for i, item := range q.Items {
		fmt.Fprintf(&b, "%d. %s  %d x %s = %s\n",
			i+1, itemLabel(item), item.Quantity, formatMoney(item.UnitPrice), formatMoney(item.Subtotal()))
	}

	fmt.Fprintf(&b, "Total: %s %s", formatMoney(q.Total()), q.Currency)
	if q.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s", q.Notes)
	}

	return strings.TrimRight(b.String(), " ")
}

func itemLabel(item models.QuoteItem) string {
	switch {
	case item.Name != "" && item.SKU != "":
		return item.Name + " (" + item.SKU + ")"
	case item.Name != "":
		return item.Name
	default:
		return item.SKU
	}
}
