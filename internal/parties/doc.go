// Package parties implements the third pipeline stage: reducing every
// reservation in the enriched document to billing, seating, and dish facts,
// written to an independent parties document.
//
// Table numbers come from the model, with the seating rules embedded in the
// prompt. When the request or the strict integer parse fails, a deterministic
// size-only fallback applies. That fallback intentionally never reaches the
// VIP band (19-20) for mid-size groups and ignores accommodations; the
// discrepancy with the model-driven path is preserved observed behavior.
package parties
