// Package fundcalc provides the calculation engine behind the preview
// screens of a mutual fund operations console.
//
// The engine is a set of pure functions over values already fetched from the
// backend. It never performs I/O, holds no state between calls, and is safe
// for concurrent use. Results are advisory: the backend computes the
// authoritative figures with the same rules.
//
// The core functionalities include:
//   - Charge Calculation: computing a brokerage, STT, GST or other charge from
//     one of seven calculation methods, with optional min/max clamping, and a
//     human readable formula (ComputeCharge, ChargeConfig, ChargeSheet).
//   - Investment Allocation: splitting an investment between an active,
//     time-prorated management fee and the units bought at the prevailing NAV,
//     and crediting existing investors when a newcomer joins mid-period
//     (PreviewInvestment).
//   - Withdrawal: the units, value and percentage impact of a redemption
//     (PreviewWithdrawal).
//
// All amounts are exact decimals. Invalid inputs are reported as
// ValidationErrors, and an impossible NAV as ErrUndefinedNAV; nothing panics
// on user input.
//
// This package serves as the foundational logic for the `fundcalc`
// command-line tool.
package fundcalc
