// Package rules implements the five deterministic evaluators: engagement
// scoring, risk classification, access gating, lexical scoring and the
// bounded integer transform.
//
// Every function is pure. Invalid input is reported in-band through the
// sentinel values InvalidScore and RiskInvalid, never through an error.
package rules
