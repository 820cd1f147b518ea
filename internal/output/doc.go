// Package output provides structured output and exit-coded errors for the tm CLI.
//
// # Printer
//
// Commands write through a Printer, which switches between styled text and
// JSON based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "wrote 4 templates"})
//	printer.Error(err)
//
// In JSON mode errors are written as {"error": "message", "code": N}.
//
// # Exit Codes
//
// Each failure site of a run has its own code:
//
//	output.ExitWriteError    // 1: output file unwritable
//	output.ExitTemplateDir   // 2: template dir missing, cache dir not creatable
//	output.ExitPaletteError  // 3: palette unreadable
//	output.ExitCacheError    // 4: cache dir not removable
//	output.ExitPaletteRange  // 5: placeholder index beyond palette length
//	output.ExitTemplateError // 6: template unreadable
//	output.ExitUsageError    // 64: bad flags or arguments
//
// Errors built with NewError / NewErrorWithCause carry these codes up to
// main, which is the only place the process exits.
package output
