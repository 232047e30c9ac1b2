package locale

import "strconv"

// EnglishOrdinal renders 1st, 2nd, 3rd, 4th with 11th-13th as exceptions.
func EnglishOrdinal(n int, _ string) string {
	s := strconv.Itoa(n)
	if n < 0 {
		n = -n
	}
	if (n%100)/10 == 1 {
		return s + "th"
	}
	switch n % 10 {
	case 1:
		return s + "st"
	case 2:
		return s + "nd"
	case 3:
		return s + "rd"
	}
	return s + "th"
}

// FrenchOrdinal renders 1er for the day of month and 1er, 2e otherwise.
// Weeks use the feminine 1re.
func FrenchOrdinal(n int, token string) string {
	s := strconv.Itoa(n)
	switch token {
	case "D":
		if n == 1 {
			return s + "er"
		}
		return s
	case "w", "W":
		if n == 1 {
			return s + "re"
		}
		return s + "e"
	}
	if n == 1 {
		return s + "er"
	}
	return s + "e"
}

// DotOrdinal renders "n." as German and Polish do.
func DotOrdinal(n int, _ string) string {
	return strconv.Itoa(n) + "."
}

// IberianOrdinal renders "nº", with the feminine "nª" for weekdays and
// weeks.
func IberianOrdinal(n int, token string) string {
	switch token {
	case "d", "w", "W":
		return strconv.Itoa(n) + "ª"
	}
	return strconv.Itoa(n) + "º"
}

// RussianOrdinal renders "n-й" for months, weekdays and days of year,
// "n-го" for days of month and "n-я" for weeks.
func RussianOrdinal(n int, token string) string {
	s := strconv.Itoa(n)
	switch token {
	case "D":
		return s + "-го"
	case "w", "W":
		return s + "-я"
	}
	return s + "-й"
}

// JapaneseOrdinal renders "n日" for day tokens and the bare number otherwise.
func JapaneseOrdinal(n int, token string) string {
	s := strconv.Itoa(n)
	switch token {
	case "d", "D", "DDD":
		return s + "日"
	}
	return s
}
