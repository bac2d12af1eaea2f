// Package currency formats whole-rupee amounts for display. Output follows
// the en-IN convention: the last three digits form one group, everything
// before them groups in pairs (38500 -> "₹38,500", 1234567 -> "₹12,34,567").
package currency

import "strconv"

const rupeeSign = "₹"

// FormatINR renders amount with the rupee sign and no fractional digits.
// It is a pure display helper; formatted strings are never parsed back.
func FormatINR(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	grouped := groupIndian(strconv.FormatInt(amount, 10))

	if neg {
		return "-" + rupeeSign + grouped
	}
	return rupeeSign + grouped
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var out []byte
	if len(head)%2 == 1 {
		out = append(out, head[0], ',')
		head = head[1:]
	}
	for i := 0; i < len(head); i += 2 {
		out = append(out, head[i], head[i+1], ',')
	}
	return string(append(out, tail...))
}
