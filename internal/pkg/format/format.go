// Package format holds small pure formatting helpers shared by the
// fulfillment services.
package format

import "strconv"

// ConvertTimeFormat renders an hour (0-23) and a minutes string as a
// 12-hour clock reading, e.g. (13, "30") -> "1:30 pm".
func ConvertTimeFormat(hours int, minutes string) string {
	suffix := "am"
	if hours >= 12 {
		suffix = "pm"
	}
	h := hours % 12
	if h == 0 {
		h = 12
	}
	return strconv.Itoa(h) + ":" + minutes + " " + suffix
}

// NumberWithCommas groups the digits of n in threes, e.g. 1234567 ->
// "1,234,567".
func NumberWithCommas(n int64) string {
	s := strconv.FormatInt(n, 10)
	start := 0
	if s[0] == '-' {
		start = 1
	}
	out := make([]byte, 0, len(s)+(len(s)-start-1)/3)
	out = append(out, s[:start]...)
	for i := start; i < len(s); i++ {
		if i > start && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	return string(out)
}
