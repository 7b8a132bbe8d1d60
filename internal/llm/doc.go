// Package llm provides the OpenAI-compatible chat completion client used by
// every enrichment stage.
//
// The client is constructed once at process start and passed explicitly into
// each stage; there is no ambient singleton. Each call is a single blocking
// request with no internal retries — throttling and post-fault delays are
// owned by the stages, which degrade to documented fallbacks instead of
// aborting the batch.
//
// DecodeJSON treats model output as untrusted input: it tolerates code fences
// and prose-wrapped JSON but fails loudly when no valid payload can be
// extracted, feeding the caller's fallback policy.
package llm
