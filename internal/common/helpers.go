package common

import (
	"fmt"
	"strconv"
	"strings"
)

// AlgoDecimals is the number of decimals of the native token (1 Algo = 1_000_000 microAlgos)
const AlgoDecimals = 6

// MicroAlgosToAlgo converts microAlgos to an Algo string without float precision loss
func MicroAlgosToAlgo(micro uint64) string {
	return formatWithDecimals(micro, AlgoDecimals)
}

// AlgoToMicroAlgos converts an Algo string to microAlgos without float precision loss
func AlgoToMicroAlgos(algo string) (uint64, error) {
	return parseWithDecimals(algo, AlgoDecimals)
}

// formatWithDecimals converts integer to decimal string by inserting decimal point
// Example: formatWithDecimals(1500000, 6) = "1.500000"
func formatWithDecimals(value uint64, decimals int) string {
	s := fmt.Sprintf("%d", value)

	// Pad with leading zeros if needed
	for len(s) <= decimals {
		s = "0" + s
	}

	// Insert decimal point
	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:]
}

// parseWithDecimals converts decimal string to integer by removing decimal point
// Example: parseWithDecimals("1.5", 6) = 1500000
// Fractional digits beyond the supported precision are rejected, not truncated.
func parseWithDecimals(s string, decimals int) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty string")
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("invalid decimal format")
	}

	whole := parts[0]
	frac := ""
	if len(parts) == 2 {
		frac = parts[1]
	}
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("invalid decimal format")
	}
	if whole == "" {
		whole = "0"
	}

	if len(frac) > decimals {
		return 0, fmt.Errorf("at most %d decimal places supported", decimals)
	}
	frac += strings.Repeat("0", decimals-len(frac))

	// Combine and parse; overflow surfaces as a strconv range error
	return strconv.ParseUint(whole+frac, 10, 64)
}

// CompareAlgoAmounts compares two Algo decimal string amounts without float precision loss.
// Returns: -1 if a < b, 0 if a == b, 1 if a > b, and error if parsing fails
func CompareAlgoAmounts(a, b string) (int, error) {
	aVal, err := parseWithDecimals(a, AlgoDecimals)
	if err != nil {
		return 0, fmt.Errorf("failed to parse amount '%s': %w", a, err)
	}

	bVal, err := parseWithDecimals(b, AlgoDecimals)
	if err != nil {
		return 0, fmt.Errorf("failed to parse amount '%s': %w", b, err)
	}

	if aVal < bVal {
		return -1, nil
	}
	if aVal > bVal {
		return 1, nil
	}
	return 0, nil
}

// ShortAddress returns a truncated address suitable for logs and console output.
func ShortAddress(address string) string {
	if len(address) <= 15 {
		return address
	}
	return address[:6] + "..." + address[len(address)-6:]
}

// ShortTxID returns a truncated transaction id suitable for logs and console output.
func ShortTxID(txid string) string {
	if len(txid) <= 19 {
		return txid
	}
	return txid[:8] + "..." + txid[len(txid)-8:]
}
