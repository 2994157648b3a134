// export_test.go exports private functions for white-box testing.
package logger

// ExportErrorFormatting exports the private error formatting helpers.
var (
	CollectMessages  = collectMessages
	FormatErrorChain = formatErrorChain
)
