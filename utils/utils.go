package utils

import "github.com/shopspring/decimal"

func StringPtr(s string) *string {
	return &s
}

func IntPtr(i int) *int {
	return &i
}

func Int64Ptr(i int64) *int64 {
	return &i
}

func BoolPtr(b bool) *bool {
	return &b
}

func DecimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
